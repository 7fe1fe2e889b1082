//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 18
)

// HUD draws the status line on a translucent strip along the top edge.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the status line onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	label := s.String()
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*hudPadding), hudHeight)
	op.ColorM.Scale(0, 0, 0, 0.6)
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, label, face, hudPadding, hudHeight-hudPadding-1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
