package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	ansiHome  = "\x1b[H"
	ansiClear = "\x1b[2J"
	ansiReset = "\x1b[0m"

	cellBlock = "██"
)

// Terminal presents frames as 24-bit ANSI colour blocks, two columns per cell
// so cells look roughly square.
type Terminal struct {
	w       *bufio.Writer
	cleared bool
}

// NewTerminal returns a sink writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{w: bufio.NewWriter(out)}
}

// Present draws one frame, homing the cursor so frames overwrite each other.
func (t *Terminal) Present(pixels []uint32, width, height int) error {
	if len(pixels) != width*height {
		return errors.Errorf("terminal: frame has %d pixels, want %dx%d", len(pixels), width, height)
	}
	if !t.cleared {
		t.w.WriteString(ansiClear)
		t.cleared = true
	}
	t.w.WriteString(ansiHome)
	for y := 0; y < height; y++ {
		var last uint32
		for x := 0; x < width; x++ {
			v := pixels[y*width+x]
			if x == 0 || v != last {
				fmt.Fprintf(t.w, "\x1b[38;2;%d;%d;%dm", uint8(v>>16), uint8(v>>8), uint8(v))
				last = v
			}
			t.w.WriteString(cellBlock)
		}
		t.w.WriteString(ansiReset)
		t.w.WriteByte('\n')
	}
	return errors.Wrap(t.w.Flush(), "terminal: flush frame")
}
