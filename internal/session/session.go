// Package session wires a battle.Match to its configuration, randomness,
// logging and match history. Front-ends (console, TUI, simulate) build a
// Session and drive its Match.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

// Saver persists finished matches. *storage.Store implements it.
type Saver interface {
	SaveMatch(rec storage.MatchRecord) (uuid.UUID, error)
}

// Options configure a new Session.
type Options struct {
	Config config.Config
	Seed   int64 // 0 = time-based

	// Human picks targets for the human side. Nil means an automated
	// player, as used by simulate.
	Human battle.Targeter
	// Opponent overrides the default random computer.
	Opponent battle.Targeter
	// Pace delays the opponent by the configured delay range.
	Pace bool

	Logger    *log.Logger        // nil disables logging
	Observers []battle.Observer // extra observers, called after logging
}

// Session is one match together with the data needed to record it.
type Session struct {
	opts    Options
	id      uuid.UUID
	seed    int64
	rng     *rand.Rand
	match   *battle.Match
	logger  *log.Logger
	started time.Time
	saved   bool
}

// New validates the configuration, places both fleets and builds the
// match. The match is not started yet.
func New(ctx context.Context, opts Options) (*Session, error) {
	if err := config.Validate(opts.Config); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
		logger.SetLevel(log.FatalLevel)
	}

	gen := opts.Config.Generator()
	humanBoard, err := gen.Generate(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("place human fleet: %w", err)
	}
	opponentBoard, err := gen.Generate(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("place opponent fleet: %w", err)
	}

	size := opts.Config.Board.Size
	human := opts.Human
	if human == nil {
		human = battle.NewComputer(rng, size)
	}
	opponent := opts.Opponent
	if opponent == nil {
		opponent = battle.NewComputer(rng, size)
	}
	var paced *Paced
	if opts.Pace {
		paced = NewPaced(opponent, rng, opts.Config.Opponent.MinDelay, opts.Config.Opponent.MaxDelay)
		opponent = paced
	}

	id := uuid.New()
	s := &Session{
		opts:   opts,
		id:     id,
		seed:   seed,
		rng:    rng,
		logger: logger.With("match", shortID(id)),
	}

	observers := []battle.Observer{newLogObserver(s.logger)}
	if paced != nil {
		observers = append(observers, paced)
	}
	observers = append(observers, opts.Observers...)
	s.match = battle.NewMatch(
		battle.Player{Name: "You", Actor: human, Board: humanBoard},
		battle.Player{Name: "Computer", Actor: opponent, Board: opponentBoard},
		fanOut(observers),
	)

	s.logger.Debug("fleets placed",
		"variant", opts.Config.Variant,
		"size", size,
		"ships", len(opts.Config.Fleet),
		"seed", seed,
	)
	return s, nil
}

// shortID keeps log lines readable.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// ID returns the match id used when recording the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Seed returns the seed the session was built from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Config returns the configuration the session was built from.
func (s *Session) Config() config.Config {
	return s.opts.Config
}

// Match returns the underlying match.
func (s *Session) Match() *battle.Match {
	return s.match
}

// Start starts the match clock and the match.
func (s *Session) Start() {
	if s.started.IsZero() {
		s.started = time.Now()
	}
	s.match.Start()
}

// Step plays one move, starting the match on first use.
func (s *Session) Step(ctx context.Context) (battle.Shot, error) {
	s.Start()
	return s.match.Step(ctx)
}

// Run plays the match to the end.
func (s *Session) Run(ctx context.Context) (battle.Side, error) {
	s.Start()
	return s.match.Run(ctx)
}

// Next builds a fresh session with the same options. A fixed seed yields a
// reproducible sequence of follow-up matches.
func (s *Session) Next(ctx context.Context) (*Session, error) {
	opts := s.opts
	opts.Seed = 0
	if s.opts.Seed != 0 {
		opts.Seed = s.rng.Int63() | 1
	}
	return New(ctx, opts)
}

// Record summarises the finished match. ok is false while the match is
// still in progress.
func (s *Session) Record() (storage.MatchRecord, bool) {
	winner, over := s.match.Winner()
	if !over {
		return storage.MatchRecord{}, false
	}

	human := s.match.Stats(battle.SideHuman)
	opponent := s.match.Stats(battle.SideOpponent)
	var dur time.Duration
	if !s.started.IsZero() {
		dur = time.Since(s.started)
	}

	return storage.MatchRecord{
		MatchID:       s.id,
		Variant:       s.opts.Config.Variant,
		BoardSize:     s.opts.Config.Board.Size,
		Winner:        winner.String(),
		Turns:         s.match.Turns(),
		HumanShots:    human.Shots,
		HumanHits:     human.Hits,
		OpponentShots: opponent.Shots,
		OpponentHits:  opponent.Hits,
		Seed:          s.seed,
		Duration:      dur,
	}, true
}

// Save records the finished match once. Later calls and calls before the
// match is over do nothing. A nil saver disables recording.
func (s *Session) Save(saver Saver) error {
	if saver == nil || s.saved {
		return nil
	}
	rec, ok := s.Record()
	if !ok {
		return nil
	}

	if _, err := saver.SaveMatch(rec); err != nil {
		s.logger.Warn("cannot save match", "error", err)
		return err
	}
	s.saved = true
	s.logger.Debug("match saved", "variant", rec.Variant)
	return nil
}
