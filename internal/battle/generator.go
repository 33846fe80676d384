package battle

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// Rand is the random source used for placement and automated targeting.
// *math/rand.Rand satisfies it; tests can script it.
type Rand interface {
	Intn(n int) int
}

// DefaultMaxAttempts is the candidate budget for one board attempt,
// shared by all ships of the fleet.
const DefaultMaxAttempts = 2000

// ClassicFleet returns the 6x6 fleet: one ship of 3, two of 2, four of 1.
func ClassicFleet() []int {
	return []int{3, 2, 2, 1, 1, 1, 1}
}

// StandardFleet returns the 10x10 fleet: 4, 3x2, 2x3, 1x4.
func StandardFleet() []int {
	return []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}
}

// Generator lays out a fleet at random on a fresh board.
//
// A single early placement can make the rest of the fleet impossible to fit,
// so local retries are capped by MaxAttempts and the whole board is thrown
// away and started over when the cap is hit.
type Generator struct {
	Size        int
	Fleet       []int // Ship lengths, placed in order
	MaxAttempts int   // Candidates per board attempt; 0 means DefaultMaxAttempts
	MaxRestarts int   // Board attempts after the first; 0 means unlimited
}

// Validate checks that the generator can describe a real fleet.
func (g Generator) Validate() error {
	if g.Size < 1 {
		return fmt.Errorf("board size %d: %w", g.Size, ErrInvalidFleet)
	}
	if len(g.Fleet) == 0 {
		return fmt.Errorf("empty fleet: %w", ErrInvalidFleet)
	}
	for _, length := range g.Fleet {
		if length < MinShipLength || length > MaxShipLength {
			return fmt.Errorf("ship length %d: %w", length, ErrInvalidFleet)
		}
	}
	return nil
}

func (g Generator) maxAttempts() int {
	if g.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return g.MaxAttempts
}

// TryBoard makes one attempt at a full fleet layout. Candidate origins are
// drawn from [0, size] on both axes, so they may stick out of the board;
// PlaceShip alone decides what fits. Returns ErrPlacementExhausted once the
// attempt budget is spent. A finished board is ready for shooting.
func (g Generator) TryBoard(rng Rand) (*Board, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	board := NewBoard(g.Size)
	budget := g.maxAttempts()
	attempts := 0

	for _, length := range g.Fleet {
		for {
			attempts++
			if attempts > budget {
				return nil, fmt.Errorf("after %d attempts: %w", budget, ErrPlacementExhausted)
			}

			origin := core.C(rng.Intn(g.Size+1), rng.Intn(g.Size+1))
			ship := NewShip(origin, length, Orientation(rng.Intn(2)))

			err := board.PlaceShip(ship)
			if err == nil {
				break
			}
			if !IsPlacementError(err) {
				return nil, err
			}
		}
	}

	board.Begin()
	return board, nil
}

// Generate repeats TryBoard on fresh boards until one succeeds. It gives up
// with ErrPlacementExhausted after MaxRestarts restarts, or with the context
// error when ctx is cancelled.
func (g Generator) Generate(ctx context.Context, rng Rand) (*Board, error) {
	for restarts := 0; ; restarts++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		board, err := g.TryBoard(rng)
		if err == nil {
			return board, nil
		}
		if !IsPlacementExhausted(err) {
			return nil, err
		}
		if g.MaxRestarts > 0 && restarts >= g.MaxRestarts {
			return nil, fmt.Errorf("gave up after %d restarts: %w", restarts, err)
		}
	}
}

// IsPlacementExhausted reports whether err means a board attempt ran out of budget.
func IsPlacementExhausted(err error) bool {
	return errors.Is(err, ErrPlacementExhausted)
}
