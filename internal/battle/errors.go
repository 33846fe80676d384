package battle

import "errors"

// Placement errors.
var (
	// ErrOutOfBounds is returned when a ship cell or a shot lies outside the board.
	ErrOutOfBounds = errors.New("battle: coordinate out of bounds")

	// ErrCellConflict is returned when a ship would overlap or touch another ship.
	ErrCellConflict = errors.New("battle: cell is occupied or next to another ship")

	// ErrPlacementExhausted is returned when a board attempt runs out of its retry budget.
	ErrPlacementExhausted = errors.New("battle: placement attempts exhausted")

	// ErrInvalidFleet is returned for a fleet the generator cannot work with.
	ErrInvalidFleet = errors.New("battle: invalid fleet")
)

// Targeting errors.
var (
	// ErrAlreadyTargeted is returned when a cell has already been resolved.
	ErrAlreadyTargeted = errors.New("battle: cell already targeted")

	// ErrMatchOver is returned when a move is requested after the game ended.
	ErrMatchOver = errors.New("battle: match is over")
)

// IsTargetingError reports whether err is a recoverable shot error:
// the same actor should pick another target.
func IsTargetingError(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}

// IsPlacementError reports whether err is a recoverable placement error:
// the generator should try another candidate ship.
func IsPlacementError(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrCellConflict)
}
