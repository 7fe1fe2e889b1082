package life

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Edge selects how neighbours beyond the grid border are treated.
type Edge int

const (
	// DeadBorder treats every off-grid neighbour as dead.
	DeadBorder Edge = iota
	// Torus wraps off-grid coordinates around to the opposite edge.
	Torus
	// Clamp pulls off-grid coordinates back onto the nearest edge cell.
	Clamp
)

var edgeNames = map[Edge]string{
	DeadBorder: "dead",
	Torus:      "wrap",
	Clamp:      "clamp",
}

// String returns the config name of the policy.
func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return "edge(" + strconv.Itoa(int(e)) + ")"
}

// ParseEdge maps a config name to a boundary policy. An empty string selects
// DeadBorder.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dead", "deadborder", "dead-border":
		return DeadBorder, nil
	case "wrap", "torus", "toroidal":
		return Torus, nil
	case "clamp":
		return Clamp, nil
	}
	return DeadBorder, errors.Errorf("unknown edge policy %q (want dead, wrap or clamp)", s)
}

// resolve maps a possibly off-grid coordinate to a cell of the grid. ok is
// false when the neighbour does not exist under the policy.
func (e Edge) resolve(x, y, w, h int) (int, int, bool) {
	if x >= 0 && x < w && y >= 0 && y < h {
		return x, y, true
	}
	switch e {
	case Torus:
		return (x%w + w) % w, (y%h + h) % h, true
	case Clamp:
		return min(max(x, 0), w-1), min(max(y, 0), h-1), true
	default:
		return 0, 0, false
	}
}
