package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"conway-life/internal/core"
)

// Still lifes.
var (
	Block = mustParse("block",
		"OO",
		"OO",
	)
)

// Oscillators.
var (
	Blinker = mustParse("blinker",
		"OOO",
	)
	Toad = mustParse("toad",
		".OOO",
		"OOO.",
	)
	Beacon = mustParse("beacon",
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	)
	Pentadecathlon = mustParse("pentadecathlon",
		"..O....O..",
		"OO.OOOO.OO",
		"..O....O..",
	)
	Pulsar = mustParse("pulsar",
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	)
)

// Spaceships. The glider travels towards +x,+y; the others travel towards -x.
var (
	Glider = mustParse("glider",
		".O.",
		"..O",
		"OOO",
	)
	LWSS = mustParse("lwss",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	)
	MWSS = mustParse("mwss",
		"...O..",
		".O...O",
		"O.....",
		"O....O",
		"OOOOO.",
	)
	HWSS = mustParse("hwss",
		"...OO..",
		".O....O",
		"O......",
		"O.....O",
		"OOOOOO.",
	)
)

var catalog = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Block, Blinker, Toad, Beacon, Pentadecathlon, Pulsar, Glider, LWSS, MWSS, HWSS} {
		catalog[p.Name] = p
	}
}

// Lookup returns the catalogue pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names lists the catalogue in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClassicLayout is the mixed field of gliders, oscillators and spaceships the
// windowed build starts with on its 100x100 board. Each pattern's box, grown
// by one cell, is clear of every other box so no two patterns start touching.
func ClassicLayout() []Placement {
	return []Placement{
		At(0, 10, Glider),
		At(20, 35, Glider),
		At(70, 75, Glider),
		At(30, 80, Blinker),
		At(0, 70, Blinker),
		At(45, 76, MWSS),
		At(40, 20, LWSS),
		At(90, 20, LWSS),
		At(70, 40, Beacon),
		At(33, 70, Pentadecathlon),
		At(40, 50, Pentadecathlon),
		At(23, 45, HWSS),
		At(90, 12, Toad),
		At(30, 65, Toad),
		At(52, 56, Pulsar),
		At(10, 70, Pulsar),
	}
}

// LayoutFor resolves a layout name. "classic" yields ClassicLayout; any
// catalogue name yields that pattern centred on a grid of the given size.
func LayoutFor(name string, size core.Size) ([]Placement, error) {
	if name == "" || name == "classic" {
		return ClassicLayout(), nil
	}
	p, ok := Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown layout %q (want classic or one of %v)", name, Names())
	}
	b := p.Bounds()
	return []Placement{At((size.W-b.W)/2, (size.H-b.H)/2, p)}, nil
}
