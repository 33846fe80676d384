package battle

import (
	"context"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// Targeter picks the next cell to shoot on the enemy board.
// Errors other than targeting errors abort the move (closed input,
// cancelled context, no pending target in an event-driven front-end).
type Targeter interface {
	NextTarget(ctx context.Context) (core.Coord, error)
}

// InputSource supplies well-formed coordinates typed or picked by a person.
// Parsing and re-prompting on malformed input happen before this call.
type InputSource interface {
	ReadTarget(ctx context.Context) (core.Coord, error)
}

// Human is a Targeter driven by an external input collaborator.
type Human struct {
	in InputSource
}

// NewHuman creates a human actor reading targets from in.
func NewHuman(in InputSource) *Human {
	return &Human{in: in}
}

// NextTarget returns the next coordinate from the input source.
func (h *Human) NextTarget(ctx context.Context) (core.Coord, error) {
	return h.in.ReadTarget(ctx)
}

// Computer fires at uniformly random cells of a size x size board.
// It does not remember earlier shots; the board rejects repeats.
type Computer struct {
	rng  Rand
	size int
}

// NewComputer creates an automated opponent for a board of the given size.
func NewComputer(rng Rand, size int) *Computer {
	return &Computer{rng: rng, size: size}
}

// NextTarget returns a random in-bounds coordinate.
func (c *Computer) NextTarget(ctx context.Context) (core.Coord, error) {
	if err := ctx.Err(); err != nil {
		return core.Coord{}, err
	}
	return core.C(c.rng.Intn(c.size), c.rng.Intn(c.size)), nil
}

// Shot is a resolved shot.
type Shot struct {
	Target core.Coord
	Result ShotResult
}

// Move runs one move of actor against enemy: it asks for targets until one
// resolves. Out-of-bounds and repeated targets are passed to onReject (may
// be nil) and the same actor is asked again. Any other error aborts the move
// and leaves enemy unchanged.
func Move(ctx context.Context, actor Targeter, enemy *Board, onReject func(core.Coord, error)) (Shot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Shot{}, err
		}

		target, err := actor.NextTarget(ctx)
		if err != nil {
			return Shot{}, err
		}

		result, err := enemy.Shoot(target)
		if IsTargetingError(err) {
			if onReject != nil {
				onReject(target, err)
			}
			continue
		}
		if err != nil {
			return Shot{}, err
		}

		return Shot{Target: target, Result: result}, nil
	}
}
