package battle

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

func TestBoardIsOutOfBounds(t *testing.T) {
	b := NewBoard(6)

	tests := []struct {
		c        core.Coord
		expected bool
	}{
		{core.C(0, 0), false},
		{core.C(5, 5), false},
		{core.C(6, 6), true},
		{core.C(6, 0), true},
		{core.C(0, 6), true},
		{core.C(-1, 3), true},
		{core.C(3, -1), true},
	}

	for _, tc := range tests {
		if got := b.IsOutOfBounds(tc.c); got != tc.expected {
			t.Errorf("IsOutOfBounds(%v) = %v, expected %v", tc.c, got, tc.expected)
		}
	}
}

func TestPlaceShipMarksCellsAndReservesContour(t *testing.T) {
	b := NewBoard(6)
	if err := b.PlaceShip(NewShip(core.C(0, 0), 2, Horizontal)); err != nil {
		t.Fatalf("PlaceShip() failed: %v", err)
	}

	if b.Cell(core.C(0, 0)) != CellShip || b.Cell(core.C(1, 0)) != CellShip {
		t.Error("ship cells should be marked CellShip")
	}
	// The gap is reserved but not drawn
	if b.Cell(core.C(2, 0)) != CellEmpty || b.Cell(core.C(1, 1)) != CellEmpty {
		t.Error("contour cells should stay visually empty")
	}
	if len(b.Ships()) != 1 {
		t.Errorf("Ships() has %d ships, expected 1", len(b.Ships()))
	}
}

func TestPlaceShipRejections(t *testing.T) {
	tests := []struct {
		name    string
		ship    *Ship
		wantErr error
	}{
		{"overlapping", NewShip(core.C(1, 0), 1, Horizontal), ErrCellConflict},
		{"side by side", NewShip(core.C(0, 1), 2, Horizontal), ErrCellConflict},
		{"diagonal touch", NewShip(core.C(2, 1), 1, Horizontal), ErrCellConflict},
		{"sticks out right", NewShip(core.C(5, 3), 2, Horizontal), ErrOutOfBounds},
		{"sticks out bottom", NewShip(core.C(4, 4), 3, Vertical), ErrOutOfBounds},
		{"origin outside", NewShip(core.C(6, 6), 1, Vertical), ErrOutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(6)
			if err := b.PlaceShip(NewShip(core.C(0, 0), 2, Horizontal)); err != nil {
				t.Fatalf("PlaceShip() failed: %v", err)
			}

			err := b.PlaceShip(tc.ship)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("PlaceShip() error = %v, expected %v", err, tc.wantErr)
			}
			if !IsPlacementError(err) {
				t.Errorf("IsPlacementError(%v) = false, expected true", err)
			}
			if len(b.Ships()) != 1 {
				t.Errorf("failed placement added a ship")
			}
			for _, c := range tc.ship.Cells() {
				if !b.IsOutOfBounds(c) && b.Cell(c) == CellShip && !b.Ships()[0].IsHitBy(c) {
					t.Errorf("failed placement marked %v", c)
				}
			}
		})
	}
}

func TestPlaceShipGapAllowsTwoCellsApart(t *testing.T) {
	b := NewBoard(6)
	if err := b.PlaceShip(NewShip(core.C(0, 0), 2, Horizontal)); err != nil {
		t.Fatalf("PlaceShip() failed: %v", err)
	}
	if err := b.PlaceShip(NewShip(core.C(3, 0), 3, Horizontal)); err != nil {
		t.Errorf("PlaceShip() one cell apart failed: %v", err)
	}
}

func TestShootSinkScenario(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(0, 0), 2, Horizontal))

	res, err := b.Shoot(core.C(0, 0))
	if err != nil || res != ShotHit {
		t.Fatalf("Shoot((0,0)) = %v, %v; expected hit", res, err)
	}
	if b.Cell(core.C(0, 0)) != CellHit {
		t.Errorf("Cell((0,0)) = %v, expected hit", b.Cell(core.C(0, 0)))
	}

	res, err = b.Shoot(core.C(1, 0))
	if err != nil || res != ShotSunk {
		t.Fatalf("Shoot((1,0)) = %v, %v; expected sunk", res, err)
	}

	for _, c := range []core.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}} {
		if b.Cell(c) != CellBlocked {
			t.Errorf("Cell(%v) = %v, expected blocked", c, b.Cell(c))
		}
		if !b.IsTargeted(c) {
			t.Errorf("revealed contour %v should count as targeted", c)
		}
	}
	if b.Cell(core.C(3, 0)) != CellEmpty {
		t.Error("cells outside the contour should stay empty")
	}

	if b.SunkCount() != 1 {
		t.Errorf("SunkCount() = %d, expected 1", b.SunkCount())
	}
	if !b.IsFleetDestroyed() {
		t.Error("IsFleetDestroyed() = false after sinking the only ship")
	}
}

func TestShootMiss(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(0, 0), 1, Horizontal))

	res, err := b.Shoot(core.C(4, 4))
	if err != nil || res != ShotMiss {
		t.Fatalf("Shoot((4,4)) = %v, %v; expected miss", res, err)
	}
	if b.Cell(core.C(4, 4)) != CellMiss {
		t.Errorf("Cell((4,4)) = %v, expected miss", b.Cell(core.C(4, 4)))
	}
	if res.Repeat() {
		t.Error("a miss should not repeat the turn")
	}
}

func snapshot(b *Board) [][]CellState {
	out := make([][]CellState, b.Size())
	for y := range out {
		out[y] = make([]CellState, b.Size())
		for x := range out[y] {
			out[y][x] = b.Cell(core.C(x, y))
		}
	}
	return out
}

func sameCells(a, b [][]CellState) bool {
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func TestShootOutOfBoundsDoesNotMutate(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(0, 0), 2, Horizontal))
	before := snapshot(b)

	for _, c := range []core.Coord{{X: 6, Y: 6}, {X: -1, Y: 0}, {X: 0, Y: 6}, {X: 100, Y: -100}} {
		_, err := b.Shoot(c)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Shoot(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
		if !IsTargetingError(err) {
			t.Errorf("IsTargetingError(%v) = false", err)
		}
	}

	if !sameCells(before, snapshot(b)) {
		t.Error("out-of-bounds shots changed the board")
	}
	if b.IsTargeted(core.C(6, 6)) {
		t.Error("out-of-bounds shot was recorded as targeted")
	}
}

func TestShootAlreadyTargeted(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(0, 0), 2, Horizontal))

	if _, err := b.Shoot(core.C(0, 0)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	if _, err := b.Shoot(core.C(3, 3)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	before := snapshot(b)
	remaining := b.Ships()[0].Remaining()

	for _, c := range []core.Coord{{X: 0, Y: 0}, {X: 3, Y: 3}} {
		_, err := b.Shoot(c)
		if !errors.Is(err, ErrAlreadyTargeted) {
			t.Errorf("Shoot(%v) again error = %v, expected ErrAlreadyTargeted", c, err)
		}
	}

	if !sameCells(before, snapshot(b)) {
		t.Error("repeated shots changed the board")
	}
	if b.Ships()[0].Remaining() != remaining {
		t.Error("repeated hit damaged the ship again")
	}
}

func TestShootRevealedContourIsAlreadyTargeted(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(2, 2), 1, Horizontal), NewShip(core.C(5, 5), 1, Horizontal))

	if res, _ := b.Shoot(core.C(2, 2)); res != ShotSunk {
		t.Fatalf("Shoot((2,2)) = %v, expected sunk", res)
	}

	_, err := b.Shoot(core.C(1, 1))
	if !errors.Is(err, ErrAlreadyTargeted) {
		t.Errorf("Shoot on revealed contour error = %v, expected ErrAlreadyTargeted", err)
	}
}

func TestSinkKeepsEarlierMissesInContour(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(2, 2), 1, Horizontal))

	if _, err := b.Shoot(core.C(1, 1)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	if _, err := b.Shoot(core.C(2, 2)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}

	if b.Cell(core.C(1, 1)) != CellMiss {
		t.Errorf("Cell((1,1)) = %v, expected the earlier miss to stay", b.Cell(core.C(1, 1)))
	}
	if b.Cell(core.C(3, 3)) != CellBlocked {
		t.Errorf("Cell((3,3)) = %v, expected blocked", b.Cell(core.C(3, 3)))
	}
}

func TestIsFleetDestroyedOnlyWhenAllSunk(t *testing.T) {
	b := mustBoard(6,
		NewShip(core.C(0, 0), 2, Vertical),
		NewShip(core.C(3, 0), 1, Horizontal),
	)

	steps := []struct {
		target    core.Coord
		destroyed bool
	}{
		{core.C(0, 0), false},
		{core.C(3, 0), false}, // second ship sunk, first still afloat
		{core.C(0, 1), true},
	}

	for _, s := range steps {
		if _, err := b.Shoot(s.target); err != nil {
			t.Fatalf("Shoot(%v) failed: %v", s.target, err)
		}
		if got := b.IsFleetDestroyed(); got != s.destroyed {
			t.Errorf("after Shoot(%v): IsFleetDestroyed() = %v, expected %v", s.target, got, s.destroyed)
		}

		allSunk := true
		for _, ship := range b.Ships() {
			if ship.Remaining() != 0 {
				allSunk = false
			}
		}
		if allSunk != b.IsFleetDestroyed() {
			t.Errorf("IsFleetDestroyed() = %v but all ships sunk = %v", b.IsFleetDestroyed(), allSunk)
		}
	}
}

func TestBeginKeepsPlacementGeometry(t *testing.T) {
	b := NewBoard(6)
	if err := b.PlaceShip(NewShip(core.C(0, 0), 2, Horizontal)); err != nil {
		t.Fatalf("PlaceShip() failed: %v", err)
	}

	b.Begin()

	if b.IsTargeted(core.C(2, 0)) {
		t.Error("contour cells should not count as targeted after Begin")
	}
	if err := b.PlaceShip(NewShip(core.C(2, 1), 1, Horizontal)); !errors.Is(err, ErrCellConflict) {
		t.Errorf("PlaceShip() next to a ship after Begin error = %v, expected ErrCellConflict", err)
	}
	if b.Cell(core.C(1, 0)) != CellShip {
		t.Error("Begin should keep ship cells")
	}

	res, err := b.Shoot(core.C(2, 0))
	if err != nil || res != ShotMiss {
		t.Errorf("Shoot() on reserved gap = %v, %v; expected miss", res, err)
	}
}

func TestBoardShipAt(t *testing.T) {
	ship := NewShip(core.C(1, 1), 3, Vertical)
	b := mustBoard(6, ship)

	if b.ShipAt(core.C(1, 3)) != ship {
		t.Error("ShipAt((1,3)) should return the vertical ship")
	}
	if b.ShipAt(core.C(2, 2)) != nil {
		t.Error("ShipAt((2,2)) should be nil")
	}
}
