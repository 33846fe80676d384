package session

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// Paced delays the first target of each move of the wrapped actor by a
// random duration in [min, max] so a human can follow the computer's
// moves. Retries after a rejected target are not delayed. Paced must
// observe the match to know when a move ends.
type Paced struct {
	actor    battle.Targeter
	rng      battle.Rand
	min, max time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	waited   bool
}

// NewPaced wraps actor with a delay drawn from rng.
func NewPaced(actor battle.Targeter, rng battle.Rand, min, max time.Duration) *Paced {
	return &Paced{actor: actor, rng: rng, min: min, max: max, sleep: sleepCtx}
}

// OnEvent re-arms the delay after every resolved shot.
func (p *Paced) OnEvent(e battle.Event) {
	if _, ok := e.(battle.ShotFiredEvent); ok {
		p.waited = false
	}
}

// Delay draws the next delay.
func (p *Paced) Delay() time.Duration {
	if p.max <= p.min {
		return p.min
	}
	span := int((p.max - p.min) / time.Millisecond)
	if span <= 0 {
		return p.min
	}
	return p.min + time.Duration(p.rng.Intn(span+1))*time.Millisecond
}

// NextTarget waits, then asks the wrapped actor. Cancelling ctx ends the
// wait early.
func (p *Paced) NextTarget(ctx context.Context) (core.Coord, error) {
	if !p.waited {
		if d := p.Delay(); d > 0 {
			if err := p.sleep(ctx, d); err != nil {
				return core.Coord{}, err
			}
		}
		p.waited = true
	}
	return p.actor.NextTarget(ctx)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
