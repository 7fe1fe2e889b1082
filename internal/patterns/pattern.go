// Package patterns holds the seed data used to populate a Life board: named
// cell arrangements, where to place them, and the seeding step itself.
package patterns

import (
	"strings"

	"github.com/pkg/errors"

	"conway-life/internal/core"
)

// Pattern is an immutable arrangement of live cells relative to an anchor.
type Pattern struct {
	Name  string
	Cells []core.Point
}

// Bounds returns the width and height of the smallest box holding the
// pattern's offsets, measured from the anchor.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p.Cells {
		s.W = max(s.W, c.X+1)
		s.H = max(s.H, c.Y+1)
	}
	return s
}

// Placement anchors a pattern at an absolute grid coordinate.
type Placement struct {
	At      core.Point
	Pattern Pattern
}

// At is shorthand for building a Placement.
func At(x, y int, p Pattern) Placement {
	return Placement{At: core.Point{X: x, Y: y}, Pattern: p}
}

// Parse reads a pattern written as plaintext rows, where 'O' or '*' marks a
// live cell and '.' or ' ' a dead one. Lines starting with '!' are comments.
func Parse(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	y := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, r := range line {
			switch r {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, core.Point{X: x, Y: y})
			case '.', ' ':
			default:
				return Pattern{}, errors.Errorf("pattern %s: unexpected %q at row %d col %d", name, r, y, x)
			}
		}
		y++
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.Errorf("pattern %s: no live cells", name)
	}
	return p, nil
}

func mustParse(name string, rows ...string) Pattern {
	p, err := Parse(name, strings.Join(rows, "\n"))
	if err != nil {
		panic(err)
	}
	return p
}

// Seed clears g and marks every placed offset alive. Offsets that land
// outside the grid are skipped, so patterns near the border are clipped.
func Seed(g *core.Grid, placements []Placement) {
	g.Clear()
	for _, pl := range placements {
		for _, off := range pl.Pattern.Cells {
			c := pl.At.Add(off)
			if g.InBounds(c.X, c.Y) {
				g.Set(c.X, c.Y, true)
			}
		}
	}
}
