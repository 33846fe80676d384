// Package battle implements the sea-battle rules: ship geometry, fleet
// placement with a one-cell gap between ships, shot resolution and the
// turn-alternation state machine. It has no dependencies beyond core so the
// rules can be driven by any front-end.
package battle

import "github.com/vovakirdan/tui-seabattle/internal/core"

// Orientation is the direction a ship extends from its origin.
type Orientation int

const (
	Horizontal Orientation = iota // Cells step in X
	Vertical                      // Cells step in Y
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Ship lengths accepted by the generator.
const (
	MinShipLength = 1
	MaxShipLength = 4
)

// Ship is a straight run of cells with a hit counter.
// Only the remaining-hits counter changes after construction.
type Ship struct {
	Origin      core.Coord
	Length      int
	Orientation Orientation

	remaining int
}

// NewShip creates an undamaged ship.
func NewShip(origin core.Coord, length int, o Orientation) *Ship {
	return &Ship{
		Origin:      origin,
		Length:      length,
		Orientation: o,
		remaining:   length,
	}
}

// Cells returns the coordinates the ship occupies, starting at the origin.
func (s *Ship) Cells() []core.Coord {
	cells := make([]core.Coord, 0, s.Length)
	for i := range s.Length {
		if s.Orientation == Vertical {
			cells = append(cells, s.Origin.Add(0, i))
		} else {
			cells = append(cells, s.Origin.Add(i, 0))
		}
	}
	return cells
}

// IsHitBy reports whether c is one of the ship's cells.
func (s *Ship) IsHitBy(c core.Coord) bool {
	for _, cell := range s.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

// ApplyHit takes one hit point off the ship. The counter stops at zero.
// Callers confirm IsHitBy first.
func (s *Ship) ApplyHit() {
	if s.remaining > 0 {
		s.remaining--
	}
}

// Remaining returns how many more hits sink the ship.
func (s *Ship) Remaining() int {
	return s.remaining
}

// Sunk reports whether the ship has no hit points left.
func (s *Ship) Sunk() bool {
	return s.remaining == 0
}

// Contour returns every cell touching the ship, diagonals included, without
// the ship's own cells. Order is deterministic; no bounds are applied.
func (s *Ship) Contour() []core.Coord {
	cells := s.Cells()
	own := make(map[core.Coord]bool, len(cells))
	for _, c := range cells {
		own[c] = true
	}

	seen := make(map[core.Coord]bool)
	var contour []core.Coord
	for _, c := range cells {
		for _, n := range c.Neighbors() {
			if own[n] || seen[n] {
				continue
			}
			seen[n] = true
			contour = append(contour, n)
		}
	}
	return contour
}
