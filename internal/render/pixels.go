package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Default colours, as 0xRRGGBB.
const (
	DefaultAlive      uint32 = 0x3D85C6
	DefaultBackground uint32 = 0x000000
)

// Palette maps cell states to 32-bit RGB display values.
type Palette struct {
	Alive      uint32
	Background uint32
}

// DefaultPalette returns the standard blue-on-black palette.
func DefaultPalette() Palette {
	return Palette{Alive: DefaultAlive, Background: DefaultBackground}
}

// IsAlive reports whether a display value is the palette's alive colour.
func (p Palette) IsAlive(v uint32) bool { return v == p.Alive }

// Pixels writes one 0xRRGGBB value per cell into dst, growing it when it is
// too small, and returns the filled slice.
func Pixels(dst []uint32, cells []bool, p Palette) []uint32 {
	if cap(dst) < len(cells) {
		dst = make([]uint32, len(cells))
	}
	dst = dst[:len(cells)]
	for i, alive := range cells {
		if alive {
			dst[i] = p.Alive
			continue
		}
		dst[i] = p.Background
	}
	return dst
}

// ParseColor reads "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if len(hex) != 6 {
		return 0, errors.Errorf("colour %q: want six hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "colour %q", s)
	}
	return uint32(v), nil
}

// FormatColor renders a colour the way ParseColor reads it.
func FormatColor(v uint32) string {
	return fmt.Sprintf("#%06X", v&0xffffff)
}

// fillRGBA converts display values into RGBA pixels in buf.
func fillRGBA(buf []byte, pixels []uint32) {
	for i, v := range pixels {
		base := i * 4
		buf[base+0] = uint8(v >> 16)
		buf[base+1] = uint8(v >> 8)
		buf[base+2] = uint8(v)
		buf[base+3] = 0xff
	}
}
