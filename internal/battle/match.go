package battle

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// Side identifies one of the two fleets in a match.
type Side int

const (
	SideHuman Side = iota
	SideOpponent
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideHuman {
		return SideOpponent
	}
	return SideHuman
}

// Phase is the state of the turn state machine.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseHumanTurn
	PhaseOpponentTurn
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseHumanTurn:
		return "human turn"
	case PhaseOpponentTurn:
		return "opponent turn"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Player pairs an actor with its own fleet. The actor shoots at the other
// player's board.
type Player struct {
	Name  string
	Actor Targeter
	Board *Board
}

// Stats counts one side's resolved shots.
type Stats struct {
	Shots int
	Hits  int // Hits and sinks
	Sunk  int
}

// Match drives two players through alternating moves until one fleet is
// destroyed. It is not safe for concurrent use.
type Match struct {
	players  [2]Player
	stats    [2]Stats
	phase    Phase
	turns    int
	winner   Side
	observer Observer
}

// NewMatch creates a match in the setup phase. observer may be nil.
func NewMatch(human, opponent Player, observer Observer) *Match {
	return &Match{
		players:  [2]Player{human, opponent},
		phase:    PhaseSetup,
		observer: observer,
	}
}

func (m *Match) emit(e Event) {
	if m.observer != nil {
		m.observer.OnEvent(e)
	}
}

// Start clears both boards' targeting history and gives the first move to
// the human side. It does nothing outside the setup phase.
func (m *Match) Start() {
	if m.phase != PhaseSetup {
		return
	}
	for _, p := range m.players {
		p.Board.Begin()
	}
	m.phase = PhaseHumanTurn
	m.emit(MatchStartedEvent{First: SideHuman})
}

// Phase returns the current state.
func (m *Match) Phase() Phase {
	return m.phase
}

// Current returns the side to move. During setup that is the side that
// will move first; after game over it is the side that made the last move.
func (m *Match) Current() Side {
	if m.phase == PhaseOpponentTurn {
		return SideOpponent
	}
	if m.phase == PhaseGameOver {
		return m.winner
	}
	return SideHuman
}

// Turns returns the number of completed moves.
func (m *Match) Turns() int {
	return m.turns
}

// Winner returns the winning side once the match is over.
func (m *Match) Winner() (Side, bool) {
	return m.winner, m.phase == PhaseGameOver
}

// Player returns the player on the given side.
func (m *Match) Player(s Side) Player {
	return m.players[s]
}

// Stats returns the shot statistics of the given side.
func (m *Match) Stats(s Side) Stats {
	return m.stats[s]
}

// Step plays one completed move for the side to move. Targeting errors are
// retried inside the move and reported to the observer. A hit or a sink
// keeps the same side on the move, a miss passes it; destroying a fleet ends
// the match. Errors from the actor (closed input, cancelled context) leave
// the match state as it was.
func (m *Match) Step(ctx context.Context) (Shot, error) {
	if m.phase == PhaseGameOver {
		return Shot{}, ErrMatchOver
	}
	m.Start()

	side := m.Current()
	attacker := m.players[side]
	defender := m.players[side.Other()]

	shot, err := Move(ctx, attacker.Actor, defender.Board, func(target core.Coord, err error) {
		m.emit(TargetRejectedEvent{Side: side, Target: target, Err: err})
	})
	if err != nil {
		return Shot{}, fmt.Errorf("%s move: %w", side, err)
	}

	m.turns++
	st := &m.stats[side]
	st.Shots++
	if shot.Result.Repeat() {
		st.Hits++
	}
	if shot.Result == ShotSunk {
		st.Sunk++
	}
	m.emit(ShotFiredEvent{Side: side, Target: shot.Target, Result: shot.Result, Turn: m.turns})

	if winner, over := m.checkFleets(); over {
		m.phase = PhaseGameOver
		m.winner = winner
		m.emit(MatchOverEvent{Winner: winner, Turns: m.turns})
		return shot, nil
	}

	if !shot.Result.Repeat() {
		m.phase = phaseFor(side.Other())
		m.emit(TurnPassedEvent{From: side, To: side.Other()})
	}
	return shot, nil
}

// checkFleets looks at both boards; a destroyed fleet hands the win to the
// other side.
func (m *Match) checkFleets() (Side, bool) {
	if m.players[SideOpponent].Board.IsFleetDestroyed() {
		return SideHuman, true
	}
	if m.players[SideHuman].Board.IsFleetDestroyed() {
		return SideOpponent, true
	}
	return SideHuman, false
}

// Run steps until the match is over and returns the winner.
func (m *Match) Run(ctx context.Context) (Side, error) {
	for m.phase != PhaseGameOver {
		if _, err := m.Step(ctx); err != nil {
			return SideHuman, err
		}
	}
	return m.winner, nil
}

func phaseFor(s Side) Phase {
	if s == SideOpponent {
		return PhaseOpponentTurn
	}
	return PhaseHumanTurn
}
