package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/platform/console"
	"github.com/vovakirdan/tui-seabattle/internal/platform/render"
	"github.com/vovakirdan/tui-seabattle/internal/session"
)

// maxMessages is the number of recent messages shown under the boards.
const maxMessages = 5

// errAwaitingInput ends a human move when no target has been picked yet.
var errAwaitingInput = errors.New("awaiting target")

// pickedTarget holds the cell chosen with the cursor until the match asks
// for it. It implements battle.InputSource.
type pickedTarget struct {
	target *core.Coord
}

func (p *pickedTarget) ReadTarget(ctx context.Context) (core.Coord, error) {
	if p.target == nil {
		return core.Coord{}, errAwaitingInput
	}
	c := *p.target
	p.target = nil
	return c, nil
}

// messageFeed collects match events as short lines of text.
type messageFeed struct {
	lines []string
}

func (f *messageFeed) add(s string) {
	f.lines = append(f.lines, s)
	if len(f.lines) > maxMessages {
		f.lines = f.lines[len(f.lines)-maxMessages:]
	}
}

func (f *messageFeed) OnEvent(e battle.Event) {
	switch ev := e.(type) {
	case battle.MatchStartedEvent:
		f.add(render.HintStyle.Render("Pick a target and fire."))
	case battle.TargetRejectedEvent:
		if ev.Side == battle.SideHuman {
			f.add(render.WarnStyle.Render(console.RejectMessage(ev.Err)))
		}
	case battle.ShotFiredEvent:
		f.add(console.ShotMessage(ev.Side, ev.Target, ev.Result))
	case battle.MatchOverEvent:
		if ev.Winner == battle.SideHuman {
			f.add(render.GoodStyle.Render(fmt.Sprintf("You won in %d turns! Press r for a new match.", ev.Turns)))
		} else {
			f.add(render.BadStyle.Render(fmt.Sprintf("The computer won in %d turns. Press r for a new match.", ev.Turns)))
		}
	}
}

// Model is the Bubble Tea model of the match screen.
type Model struct {
	ctx    context.Context
	sess   *session.Session
	input  *pickedTarget
	feed   *messageFeed
	saver  session.Saver
	cursor core.Coord
	keys   KeyMap
	help   help.Model
	delay  time.Duration
	err    error

	quitting bool
}

// NewModel builds a match from opts. The human side is driven by the
// cursor; pacing options are ignored because the computer moves on ticks.
func NewModel(ctx context.Context, opts session.Options, saver session.Saver) (Model, error) {
	input := &pickedTarget{}
	feed := &messageFeed{}

	opts.Human = battle.NewHuman(input)
	opts.Pace = false
	opts.Observers = append([]battle.Observer{feed}, opts.Observers...)

	sess, err := session.New(ctx, opts)
	if err != nil {
		return Model{}, err
	}

	cfg := opts.Config.Opponent
	return Model{
		ctx:   ctx,
		sess:  sess,
		input: input,
		feed:  feed,
		saver: saver,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		delay: (cfg.MinDelay + cfg.MaxDelay) / 2,
	}, nil
}

// Init starts the match.
func (m Model) Init() tea.Cmd {
	m.sess.Start()
	return nil
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case opponentMsg:
		return m.handleOpponent()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	match := m.sess.Match()
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = Move(m.cursor, action, m.sess.Config().Board.Size)
		return m, nil

	case core.ActionFire:
		if match.Phase() != battle.PhaseHumanTurn {
			return m, nil
		}
		target := m.cursor
		m.input.target = &target
		return m.step()

	case core.ActionRestart:
		if match.Phase() != battle.PhaseGameOver {
			return m, nil
		}
		next, err := m.sess.Next(m.ctx)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.sess = next
		m.feed.lines = nil
		m.cursor = core.Coord{}
		m.sess.Start()
		return m, nil
	}

	return m, nil
}

func (m Model) handleOpponent() (tea.Model, tea.Cmd) {
	if m.sess.Match().Phase() != battle.PhaseOpponentTurn {
		return m, nil
	}
	return m.step()
}

// step plays one move and schedules the computer when it is on the move.
func (m Model) step() (tea.Model, tea.Cmd) {
	_, err := m.sess.Step(m.ctx)
	m.input.target = nil
	if errors.Is(err, errAwaitingInput) {
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	switch m.sess.Match().Phase() {
	case battle.PhaseOpponentTurn:
		return m, opponentCmd(m.delay)
	case battle.PhaseGameOver:
		//nolint:errcheck // Best-effort save, the session logs failures
		m.sess.Save(m.saver)
	}
	return m, nil
}

// View renders the match screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	match := m.sess.Match()
	n := match.Player(battle.SideHuman).Board.Size()

	own := core.NewScreen(battle.BoardWidth(n), battle.BoardHeight(n))
	battle.DrawBoard(own, match.Player(battle.SideHuman).Board, 0, 0, battle.DrawOptions{})

	enemy := core.NewScreen(battle.BoardWidth(n), battle.BoardHeight(n))
	opts := battle.DrawOptions{Hidden: true}
	if match.Phase() == battle.PhaseHumanTurn {
		cursor := m.cursor
		opts.Cursor = &cursor
	}
	battle.DrawBoard(enemy, match.Player(battle.SideOpponent).Board, 0, 0, opts)

	var b strings.Builder
	cfg := m.sess.Config()
	b.WriteString(render.TitleStyle.Render(fmt.Sprintf("SEA BATTLE  %dx%d %s", n, n, cfg.Variant)))
	b.WriteString("\n\n")
	b.WriteString(render.SideBySide(6,
		render.Titled("Your fleet", render.RenderScreen(own)),
		render.Titled("Enemy waters", render.RenderScreen(enemy)),
	))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, m.feed.lines...))
	b.WriteString("\n\n")
	b.WriteString(render.HintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	match := m.sess.Match()
	switch match.Phase() {
	case battle.PhaseHumanTurn:
		return render.GoodStyle.Render("Your turn") +
			render.HintStyle.Render(fmt.Sprintf("  target %s", console.FormatTarget(m.cursor)))
	case battle.PhaseOpponentTurn:
		return render.WarnStyle.Render("Computer is aiming...")
	case battle.PhaseGameOver:
		return render.TitleStyle.Render("Game over")
	default:
		return ""
	}
}

// Run starts the match screen and returns when the user quits.
func Run(ctx context.Context, opts session.Options, saver session.Saver) error {
	model, err := NewModel(ctx, opts, saver)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
