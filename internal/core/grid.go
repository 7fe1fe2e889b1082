package core

import "fmt"

// Grid stores a fixed-size 2D field of alive/dead cells in row-major order.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid allocates a grid with the given dimensions. Every cell starts dead.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so renderers can read it without copying.
func (g *Grid) Cells() []bool { return g.data }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y). It panics when
// the coordinates fall outside the grid.
func (g *Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Get returns whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool { return g.data[g.Index(x, y)] }

// Set marks the cell at (x, y) alive or dead.
func (g *Grid) Set(x, y int, alive bool) { g.data[g.Index(x, y)] = alive }

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]bool, len(g.data))
	copy(data, g.data)
	return &Grid{w: g.w, h: g.h, data: data}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Live lists the coordinates of live cells in row-major order.
func (g *Grid) Live() []Point {
	var pts []Point
	for i, v := range g.data {
		if v {
			pts = append(pts, Point{X: i % g.w, Y: i / g.w})
		}
	}
	return pts
}
