//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single grid-sized image and redraws it from cell data.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	pixels []uint32
	buf    []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit maps the cells through the palette, uploads them and draws the image
// scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, p Palette, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	gp.pixels = Pixels(gp.pixels, cells, p)
	fillRGBA(gp.buf, gp.pixels)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
