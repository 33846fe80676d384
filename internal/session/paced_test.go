package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
	"github.com/vovakirdan/tui-seabattle/internal/core"
)

type constTargeter struct {
	calls int
}

func (c *constTargeter) NextTarget(ctx context.Context) (core.Coord, error) {
	c.calls++
	return core.C(1, 1), nil
}

func TestPacedDelayRange(t *testing.T) {
	p := NewPaced(&constTargeter{}, rand.New(rand.NewSource(1)), 100*time.Millisecond, 300*time.Millisecond)

	for range 200 {
		d := p.Delay()
		if d < 100*time.Millisecond || d > 300*time.Millisecond {
			t.Fatalf("Delay() = %v, expected within [100ms, 300ms]", d)
		}
	}

	fixed := NewPaced(&constTargeter{}, rand.New(rand.NewSource(1)), 0, 0)
	if d := fixed.Delay(); d != 0 {
		t.Errorf("Delay() with empty range = %v, expected 0", d)
	}
}

func TestPacedWaitsOncePerMove(t *testing.T) {
	inner := &constTargeter{}
	p := NewPaced(inner, rand.New(rand.NewSource(1)), time.Second, time.Second)

	var slept []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	// A rejected target is retried without another pause
	for range 3 {
		if _, err := p.NextTarget(context.Background()); err != nil {
			t.Fatalf("NextTarget() failed: %v", err)
		}
	}
	if len(slept) != 1 {
		t.Errorf("slept %d times in one move, expected 1", len(slept))
	}

	p.OnEvent(battle.ShotFiredEvent{Side: battle.SideOpponent})
	if _, err := p.NextTarget(context.Background()); err != nil {
		t.Fatalf("NextTarget() failed: %v", err)
	}
	if len(slept) != 2 || slept[1] != time.Second {
		t.Errorf("sleeps = %v, expected a second pause after the shot", slept)
	}
	if inner.calls != 4 {
		t.Errorf("inner actor called %d times, expected 4", inner.calls)
	}
}

func TestPacedHonoursCancellation(t *testing.T) {
	inner := &constTargeter{}
	p := NewPaced(inner, rand.New(rand.NewSource(1)), time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.NextTarget(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("NextTarget() error = %v, expected context.Canceled", err)
	}
	if inner.calls != 0 {
		t.Error("cancelled wait still asked the inner actor")
	}
}
