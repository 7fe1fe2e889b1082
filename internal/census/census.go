// Package census classifies patterns by running them in isolation and
// watching for their shape to recur.
package census

import (
	"fmt"
	"slices"

	"conway-life/internal/core"
	"conway-life/internal/life"
	"conway-life/internal/patterns"
)

// Fate summarises how a pattern behaved.
type Fate int

const (
	// Unknown means no recurrence was seen within the generation budget.
	Unknown Fate = iota
	// Still means the pattern never changes.
	Still
	// Oscillator means the pattern recurs in place.
	Oscillator
	// Spaceship means the pattern recurs displaced.
	Spaceship
	// Extinct means every cell died.
	Extinct
)

func (f Fate) String() string {
	switch f {
	case Still:
		return "still life"
	case Oscillator:
		return "oscillator"
	case Spaceship:
		return "spaceship"
	case Extinct:
		return "extinct"
	default:
		return "unknown"
	}
}

// MaxGenerations bounds the generation budget of Analyze. The padded board
// grows with the budget, so larger values would need gigabytes per pattern.
const MaxGenerations = 1024

// Report is the outcome of analysing one pattern.
type Report struct {
	Name       string
	Fate       Fate
	Period     int
	Shift      core.Point
	Population int
	// Generations is how many steps were simulated.
	Generations int
}

func (r Report) String() string {
	switch r.Fate {
	case Spaceship:
		return fmt.Sprintf("%s: %s, period %d, shift (%+d,%+d)", r.Name, r.Fate, r.Period, r.Shift.X, r.Shift.Y)
	case Oscillator:
		return fmt.Sprintf("%s: %s, period %d", r.Name, r.Fate, r.Period)
	case Extinct:
		return fmt.Sprintf("%s: %s after %d generations", r.Name, r.Fate, r.Generations)
	default:
		return fmt.Sprintf("%s: %s", r.Name, r.Fate)
	}
}

// Analyze runs p alone on a dead-border board large enough that the border
// cannot be reached within maxGen generations, and reports the first
// generation whose shape matches the seed. Budgets above MaxGenerations are
// clamped to it.
func Analyze(p patterns.Pattern, maxGen int) Report {
	maxGen = min(maxGen, MaxGenerations)
	margin := maxGen + 2
	b := p.Bounds()
	l := life.New(b.W+2*margin, b.H+2*margin, life.DeadBorder)
	l.Seed([]patterns.Placement{patterns.At(margin, margin, p)})

	origin, shape := normalize(l.Grid().Live())
	r := Report{Name: p.Name, Population: len(shape)}
	for gen := 1; gen <= maxGen; gen++ {
		l.Step()
		r.Generations = gen
		live := l.Grid().Live()
		if len(live) == 0 {
			r.Fate = Extinct
			return r
		}
		at, cur := normalize(live)
		if !slices.Equal(cur, shape) {
			continue
		}
		r.Period = gen
		r.Shift = core.Point{X: at.X - origin.X, Y: at.Y - origin.Y}
		switch {
		case r.Shift != (core.Point{}):
			r.Fate = Spaceship
		case gen == 1:
			r.Fate = Still
		default:
			r.Fate = Oscillator
		}
		return r
	}
	return r
}

// normalize returns the top-left corner of the live cells' bounding box and
// the cells relative to it, in row-major order.
func normalize(live []core.Point) (core.Point, []core.Point) {
	if len(live) == 0 {
		return core.Point{}, nil
	}
	corner := live[0]
	for _, p := range live[1:] {
		if p.X < corner.X {
			corner.X = p.X
		}
		if p.Y < corner.Y {
			corner.Y = p.Y
		}
	}
	shape := make([]core.Point, len(live))
	for i, p := range live {
		shape[i] = core.Point{X: p.X - corner.X, Y: p.Y - corner.Y}
	}
	return corner, shape
}
