package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer cell coordinate or offset.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
