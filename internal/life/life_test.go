package life

import (
	"fmt"
	"slices"
	"testing"

	"conway-life/internal/core"
	"conway-life/internal/patterns"
)

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			var want bool
			if alive {
				want = n == 2 || n == 3
			} else {
				want = n == 3
			}
			name := fmt.Sprintf("alive=%v/neighbors=%d", alive, n)
			t.Run(name, func(t *testing.T) {
				if got := Rule(alive, n); got != want {
					t.Fatalf("Rule(%v, %d) = %v, want %v", alive, n, got, want)
				}
			})
		}
	}
}

// TestNeighborCountDrivesNextState builds every (state, count) pair on a real
// grid so Next is checked against the table, not just Rule.
func TestNeighborCountDrivesNextState(t *testing.T) {
	ring := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			g := core.NewGrid(5, 5)
			for _, p := range ring[:n] {
				g.Set(p.X+1, p.Y+1, true)
			}
			g.Set(2, 2, alive)

			if got := Neighbors(g, 2, 2, DeadBorder); got != n {
				t.Fatalf("Neighbors = %d, want %d", got, n)
			}
			if got, want := Next(g, DeadBorder).Get(2, 2), Rule(alive, n); got != want {
				t.Fatalf("alive=%v neighbors=%d: next = %v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestNextLeavesInputUntouched(t *testing.T) {
	g := core.NewGrid(10, 10)
	patterns.Seed(g, []patterns.Placement{
		patterns.At(1, 1, patterns.Glider),
		patterns.At(5, 5, patterns.Blinker),
	})
	before := g.Clone()

	next := Next(g, DeadBorder)

	if !g.Equal(before) {
		t.Fatal("Next modified the previous generation")
	}
	if next == g || &next.Cells()[0] == &g.Cells()[0] {
		t.Fatal("Next must allocate a new buffer")
	}
	if next.Equal(g) {
		t.Fatal("glider and blinker should change after one generation")
	}
}

func TestBlockIsStill(t *testing.T) {
	l := New(8, 8, DeadBorder)
	l.Seed([]patterns.Placement{patterns.At(3, 3, patterns.Block)})
	want := l.Grid().Clone()

	for i := 0; i < 10; i++ {
		l.Step()
		if !l.Grid().Equal(want) {
			t.Fatalf("block changed at generation %d: %v", l.Generation(), l.Grid().Live())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(9, 9, DeadBorder)
	l.Seed([]patterns.Placement{patterns.At(3, 4, patterns.Blinker)})
	start := l.Grid().Clone()

	l.Step()
	vertical := []core.Point{{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 5}}
	if got := l.Grid().Live(); !slices.Equal(got, vertical) {
		t.Fatalf("after one generation live = %v, want %v", got, vertical)
	}

	l.Step()
	if !l.Grid().Equal(start) {
		t.Fatalf("after two generations live = %v, want %v", l.Grid().Live(), start.Live())
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	l := New(12, 12, DeadBorder)
	l.Seed([]patterns.Placement{patterns.At(2, 2, patterns.Glider)})

	want := core.NewGrid(12, 12)
	patterns.Seed(want, []patterns.Placement{patterns.At(3, 3, patterns.Glider)})

	for i := 0; i < 4; i++ {
		l.Step()
	}
	if !l.Grid().Equal(want) {
		t.Fatalf("after 4 generations live = %v, want %v", l.Grid().Live(), want.Live())
	}
	if l.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", l.Generation())
	}
}

func TestGliderWrapsOnTorus(t *testing.T) {
	l := New(8, 8, Torus)
	l.Seed([]patterns.Placement{patterns.At(5, 5, patterns.Glider)})
	start := l.Grid().Clone()

	// One full lap: 8 cells diagonally at one cell per 4 generations.
	for i := 0; i < 32; i++ {
		l.Step()
		if l.Population() != 5 {
			t.Fatalf("glider broke up at generation %d: %v", l.Generation(), l.Grid().Live())
		}
	}
	if !l.Grid().Equal(start) {
		t.Fatalf("glider did not return after a lap: %v", l.Grid().Live())
	}
}

func TestCornerNeighborsPerEdgePolicy(t *testing.T) {
	full := core.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			full.Set(x, y, true)
		}
	}
	lone := core.NewGrid(3, 3)
	lone.Set(0, 0, true)
	opposite := core.NewGrid(3, 3)
	opposite.Set(2, 2, true)

	cases := []struct {
		name string
		g    *core.Grid
		edge Edge
		want int
	}{
		{"dead border full", full, DeadBorder, 3},
		{"torus full", full, Torus, 8},
		{"clamp full", full, Clamp, 8},
		{"dead border lone", lone, DeadBorder, 0},
		{"torus lone", lone, Torus, 0},
		{"clamp lone sees itself", lone, Clamp, 3},
		{"dead border opposite corner", opposite, DeadBorder, 0},
		{"torus opposite corner", opposite, Torus, 1},
		{"clamp opposite corner", opposite, Clamp, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Neighbors(tc.g, 0, 0, tc.edge); got != tc.want {
				t.Fatalf("Neighbors(0,0) = %d, want %d", got, tc.want)
			}
		})
	}
}

// The dead border is the chosen default: an edge cell never sees more than
// its on-grid neighbours, and the result is stable across runs.
func TestDeadBorderCornerDeterministic(t *testing.T) {
	g := core.NewGrid(6, 6)
	patterns.Seed(g, []patterns.Placement{patterns.At(0, 0, patterns.Block)})

	first := Next(g, DeadBorder)
	for i := 0; i < 5; i++ {
		if again := Next(g, DeadBorder); !again.Equal(first) {
			t.Fatalf("run %d differs: %v vs %v", i, again.Live(), first.Live())
		}
	}
	if !first.Equal(g) {
		t.Fatalf("corner block should be still under a dead border, got %v", first.Live())
	}
	if n := Neighbors(g, 0, 0, DeadBorder); n != 3 {
		t.Fatalf("corner cell has %d neighbours, want 3", n)
	}
}

// Oscillators in the classic layout must evolve exactly as they would alone
// while the spaceships are still far away.
func TestClassicLayoutOscillatorsUndisturbed(t *testing.T) {
	board := New(100, 100, DeadBorder)
	board.Seed(patterns.ClassicLayout())
	for i := 0; i < 6; i++ {
		board.Step()
	}

	for _, pl := range patterns.ClassicLayout() {
		switch pl.Pattern.Name {
		case "glider", "lwss", "mwss", "hwss":
			continue
		}
		alone := New(100, 100, DeadBorder)
		alone.Seed([]patterns.Placement{pl})
		for i := 0; i < 6; i++ {
			alone.Step()
		}

		b := pl.Pattern.Bounds()
		for y := pl.At.Y - 2; y < pl.At.Y+b.H+2; y++ {
			for x := pl.At.X - 2; x < pl.At.X+b.W+2; x++ {
				if !board.Grid().InBounds(x, y) {
					continue
				}
				if board.Grid().Get(x, y) != alone.Grid().Get(x, y) {
					t.Fatalf("%s at %+v disturbed at (%d,%d)", pl.Pattern.Name, pl.At, x, y)
				}
			}
		}
	}
}

func TestSeedResetsGeneration(t *testing.T) {
	l := New(10, 10, DeadBorder)
	l.Seed([]patterns.Placement{patterns.At(2, 2, patterns.Glider)})
	l.Step()
	l.Step()
	l.Seed([]patterns.Placement{patterns.At(2, 2, patterns.Glider)})
	if l.Generation() != 0 {
		t.Fatalf("generation = %d after Seed, want 0", l.Generation())
	}
	if l.Population() != 5 {
		t.Fatalf("population = %d after Seed, want 5", l.Population())
	}
}

func TestStepKeepsPreviousGrid(t *testing.T) {
	l := New(9, 9, DeadBorder)
	l.Seed([]patterns.Placement{patterns.At(3, 4, patterns.Blinker)})
	prev := l.Grid()
	snapshot := prev.Clone()

	l.Step()
	if l.Grid() == prev {
		t.Fatal("Step should swap in a new grid")
	}
	if !prev.Equal(snapshot) {
		t.Fatal("Step modified the previous generation")
	}
}

func TestParseEdge(t *testing.T) {
	cases := map[string]Edge{
		"":      DeadBorder,
		"dead":  DeadBorder,
		"WRAP":  Torus,
		"torus": Torus,
		"clamp": Clamp,
	}
	for in, want := range cases {
		got, err := ParseEdge(in)
		if err != nil {
			t.Fatalf("ParseEdge(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseEdge(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseEdge("mirror"); err == nil {
		t.Fatal("expected an error for an unknown policy")
	}
	if Torus.String() != "wrap" {
		t.Fatalf("Torus.String() = %q, want wrap", Torus.String())
	}
}
