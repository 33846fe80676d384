package battle

import (
	"fmt"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// CellState is what a board cell currently shows.
type CellState int

const (
	CellEmpty   CellState = iota
	CellShip              // Intact ship segment
	CellHit               // Ship segment that was shot
	CellMiss              // Shot into water
	CellBlocked           // Water revealed around a sunk ship
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	case CellBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// ShotResult is the outcome of a resolved shot.
type ShotResult int

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotSunk
)

// String returns a human-readable name for the result.
func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Repeat reports whether the shooter keeps the turn.
func (r ShotResult) Repeat() bool {
	return r == ShotHit || r == ShotSunk
}

// Board is one side's square sea with its fleet.
//
// Two sets make up the forbidden cells: reserved holds placement geometry
// (ship cells and their contours) and targeted holds resolved shots plus the
// contours revealed around sunk ships. A new ship may not touch either; a
// shot may not repeat a targeted cell.
type Board struct {
	size     int
	cells    [][]CellState
	ships    []*Ship
	reserved map[core.Coord]struct{}
	targeted map[core.Coord]struct{}
	sunk     int
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	cells := make([][]CellState, size)
	for y := range cells {
		cells[y] = make([]CellState, size)
	}
	return &Board{
		size:     size,
		cells:    cells,
		reserved: make(map[core.Coord]struct{}),
		targeted: make(map[core.Coord]struct{}),
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// IsOutOfBounds reports whether either axis of c lies outside [0, size).
func (b *Board) IsOutOfBounds(c core.Coord) bool {
	return c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size
}

// Cell returns the state of c, or CellEmpty outside the board.
func (b *Board) Cell(c core.Coord) CellState {
	if b.IsOutOfBounds(c) {
		return CellEmpty
	}
	return b.cells[c.Y][c.X]
}

// Ships returns the fleet in placement order.
func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

// ShipAt returns the ship occupying c, or nil.
func (b *Board) ShipAt(c core.Coord) *Ship {
	for _, s := range b.ships {
		if s.IsHitBy(c) {
			return s
		}
	}
	return nil
}

// SunkCount returns the number of sunk ships.
func (b *Board) SunkCount() int {
	return b.sunk
}

// IsTargeted reports whether c has already been resolved by a shot or a
// revealed contour.
func (b *Board) IsTargeted(c core.Coord) bool {
	_, ok := b.targeted[c]
	return ok
}

func (b *Board) forbidden(c core.Coord) bool {
	if _, ok := b.reserved[c]; ok {
		return true
	}
	return b.IsTargeted(c)
}

// PlaceShip adds s to the fleet. Every cell must be on the board and outside
// the forbidden cells; on failure the board is left untouched. The ship's
// in-bounds contour is reserved so later ships keep a one-cell gap.
func (b *Board) PlaceShip(s *Ship) error {
	cells := s.Cells()
	for _, c := range cells {
		if b.IsOutOfBounds(c) {
			return fmt.Errorf("place %s ship at %s: %w", s.Orientation, c, ErrOutOfBounds)
		}
		if b.forbidden(c) {
			return fmt.Errorf("place %s ship at %s: %w", s.Orientation, c, ErrCellConflict)
		}
	}

	for _, c := range cells {
		b.cells[c.Y][c.X] = CellShip
		b.reserved[c] = struct{}{}
	}
	b.ships = append(b.ships, s)

	for _, c := range s.Contour() {
		if !b.IsOutOfBounds(c) {
			b.reserved[c] = struct{}{}
		}
	}
	return nil
}

// Shoot resolves a shot at c. Out-of-bounds and repeated shots fail without
// changing the board. Sinking a ship reveals its contour as blocked cells,
// which then count as targeted.
func (b *Board) Shoot(c core.Coord) (ShotResult, error) {
	if b.IsOutOfBounds(c) {
		return ShotMiss, fmt.Errorf("shoot at %s: %w", c, ErrOutOfBounds)
	}
	if b.IsTargeted(c) {
		return ShotMiss, fmt.Errorf("shoot at %s: %w", c, ErrAlreadyTargeted)
	}

	b.targeted[c] = struct{}{}

	ship := b.ShipAt(c)
	if ship == nil {
		b.cells[c.Y][c.X] = CellMiss
		return ShotMiss, nil
	}

	b.cells[c.Y][c.X] = CellHit
	ship.ApplyHit()
	if !ship.Sunk() {
		return ShotHit, nil
	}

	b.sunk++
	b.revealContour(ship)
	return ShotSunk, nil
}

// revealContour marks the untargeted water around a sunk ship.
func (b *Board) revealContour(s *Ship) {
	for _, c := range s.Contour() {
		if b.IsOutOfBounds(c) || b.IsTargeted(c) {
			continue
		}
		b.cells[c.Y][c.X] = CellBlocked
		b.targeted[c] = struct{}{}
	}
}

// IsFleetDestroyed reports whether every ship on the board is sunk.
func (b *Board) IsFleetDestroyed() bool {
	return b.sunk == len(b.ships)
}

// Begin clears the targeting history at the start of a match. Ships, cell
// states and placement reservations are kept.
func (b *Board) Begin() {
	b.targeted = make(map[core.Coord]struct{})
}
