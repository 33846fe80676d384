package battle

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

var errScriptDone = errors.New("script exhausted")

// scriptedTargeter returns a fixed sequence of targets.
type scriptedTargeter struct {
	targets []core.Coord
	next    int
}

func script(targets ...core.Coord) *scriptedTargeter {
	return &scriptedTargeter{targets: targets}
}

func (s *scriptedTargeter) NextTarget(ctx context.Context) (core.Coord, error) {
	if s.next >= len(s.targets) {
		return core.Coord{}, errScriptDone
	}
	t := s.targets[s.next]
	s.next++
	return t, nil
}

// scriptedRand replays values, cycling when it runs out.
type scriptedRand struct {
	values []int
	next   int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// mustBoard builds a board with ships placed at fixed positions.
func mustBoard(size int, ships ...*Ship) *Board {
	b := NewBoard(size)
	for _, s := range ships {
		if err := b.PlaceShip(s); err != nil {
			panic(err)
		}
	}
	b.Begin()
	return b
}
