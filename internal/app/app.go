//go:build ebiten

package app

import (
	"conway-life/internal/core"
	"conway-life/internal/life"
	"conway-life/internal/patterns"
	"conway-life/internal/render"
	"conway-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life board to the ebiten.Game interface.
type Game struct {
	life    *life.Life
	layout  []patterns.Placement
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.Pacer
	palette render.Palette

	scale    int
	limit    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the seeded board described by s.
func New(l *life.Life, s Settings) *Game {
	size := l.Size()
	return &Game{
		life:    l,
		layout:  s.Layout,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		pacer:   core.NewPacer(s.Delay),
		palette: s.Palette,
		scale:   s.Scale,
		limit:   s.Generations,
	}
}

// Reset reseeds the board with the startup layout.
func (g *Game) Reset() {
	g.life.Seed(g.layout)
	g.tickOnce = false
}

// Update handles input and advances the board once per configured delay.
// Closing the window ends RunGame on its own.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.limit > 0 && g.life.Generation() >= g.limit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	if g.tickOnce {
		g.life.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pacer.ShouldStep() {
		g.life.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.life.Grid().Cells(), g.palette, g.scale)
	g.hud.Draw(screen, ui.Status{
		Generation: g.life.Generation(),
		Population: g.life.Population(),
		Edge:       g.life.Edge().String(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.life.Size()
	return s.W * g.scale, s.H * g.scale
}
