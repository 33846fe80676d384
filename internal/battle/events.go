package battle

import "github.com/vovakirdan/tui-seabattle/internal/core"

// Event is something a Match reports to its observer.
type Event interface {
	battleEvent()
}

// Observer receives match events in the order they happen.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}

// MatchStartedEvent is sent when the match leaves setup.
type MatchStartedEvent struct {
	First Side
}

func (MatchStartedEvent) battleEvent() {}

// TargetRejectedEvent is sent when an actor picked an out-of-bounds or
// already targeted cell. The same actor is asked again.
type TargetRejectedEvent struct {
	Side   Side
	Target core.Coord
	Err    error // Wraps ErrOutOfBounds or ErrAlreadyTargeted
}

func (TargetRejectedEvent) battleEvent() {}

// ShotFiredEvent is sent after every resolved shot.
type ShotFiredEvent struct {
	Side   Side
	Target core.Coord
	Result ShotResult
	Turn   int // Completed moves so far, this one included
}

func (ShotFiredEvent) battleEvent() {}

// TurnPassedEvent is sent when a miss hands the move to the other side.
type TurnPassedEvent struct {
	From Side
	To   Side
}

func (TurnPassedEvent) battleEvent() {}

// MatchOverEvent is sent once, when a fleet is destroyed.
type MatchOverEvent struct {
	Winner Side
	Turns  int
}

func (MatchOverEvent) battleEvent() {}
