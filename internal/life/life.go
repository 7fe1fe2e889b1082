package life

import (
	"conway-life/internal/core"
	"conway-life/internal/patterns"
)

// Rule applies B3/S23: a live cell survives with two or three live
// neighbours, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Neighbors counts live cells among the eight cells surrounding (x, y), with
// off-grid neighbours resolved by the edge policy.
func Neighbors(g *core.Grid, x, y int, edge Edge) int {
	size := g.Size()
	cells := g.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := edge.resolve(x+dx, y+dy, size.W, size.H)
			if ok && cells[ny*size.W+nx] {
				count++
			}
		}
	}
	return count
}

// Next computes the generation after g into a freshly allocated grid. g is
// only read, so every neighbour lookup sees the previous generation.
func Next(g *core.Grid, edge Edge) *core.Grid {
	size := g.Size()
	next := core.NewGrid(size.W, size.H)
	cur, out := g.Cells(), next.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			out[idx] = Rule(cur[idx], Neighbors(g, x, y, edge))
		}
	}
	return next
}

// Life owns the current generation of a Game of Life board.
type Life struct {
	grid *core.Grid
	edge Edge
	gen  int
}

// New returns a Life board with the given dimensions, all cells dead.
func New(w, h int, edge Edge) *Life {
	return &Life{grid: core.NewGrid(w, h), edge: edge}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// Edge returns the boundary policy in use.
func (l *Life) Edge() Edge { return l.edge }

// Generation returns how many steps have run since the last Seed.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.grid.Population() }

// Seed clears the board, stamps the placements onto it and restarts the
// generation counter.
func (l *Life) Seed(placements []patterns.Placement) {
	patterns.Seed(l.grid, placements)
	l.gen = 0
}

// Step advances the board by one generation.
func (l *Life) Step() {
	l.grid = Next(l.grid, l.edge)
	l.gen++
}
