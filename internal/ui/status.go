// Package ui formats and draws the status line shown over the board.
package ui

import "fmt"

// Status is the per-frame information shown on the HUD.
type Status struct {
	Generation int
	Population int
	Edge       string
	Paused     bool
}

// String renders the status line.
func (s Status) String() string {
	line := fmt.Sprintf("gen %d  pop %d  edge %s", s.Generation, s.Population, s.Edge)
	if s.Paused {
		line += "  [paused]"
	}
	return line
}
