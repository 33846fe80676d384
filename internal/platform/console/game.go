package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/platform/render"
	"github.com/vovakirdan/tui-seabattle/internal/session"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 80

// boardGap separates the two boards in side-by-side layout.
const boardGap = 6

// Options configure a console match.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Session options. Human and the console observer are filled in by Play.
	Session session.Options
	// Saver records the finished match, nil to skip.
	Saver session.Saver
	// Width is the terminal width used to choose the board layout.
	Width int
}

// Game prints a running match and reacts to its events.
type Game struct {
	out   io.Writer
	width int
	sess  *session.Session
}

// Play runs one match on the console and returns the winner. Closing the
// input ends the match early with io.EOF.
func Play(ctx context.Context, opts Options) (battle.Side, error) {
	g := &Game{out: opts.Out, width: opts.Width}
	if g.width <= 0 {
		g.width = DefaultWidth
	}

	prompter := NewPrompter(opts.In, opts.Out)
	prompter.Before = g.drawBoards

	sopts := opts.Session
	sopts.Human = battle.NewHuman(prompter)
	sopts.Observers = append([]battle.Observer{g}, sopts.Observers...)

	s, err := session.New(ctx, sopts)
	if err != nil {
		return battle.SideHuman, err
	}
	g.sess = s

	cfg := s.Config()
	fmt.Fprintln(g.out, render.Banner("SEA BATTLE",
		fmt.Sprintf("%dx%d %s | type targets as: column row", cfg.Board.Size, cfg.Board.Size, cfg.Variant)))

	winner, err := s.Run(ctx)
	if err != nil {
		return winner, err
	}

	g.drawBoards()
	g.printOutcome(winner)

	if err := s.Save(opts.Saver); err != nil {
		fmt.Fprintln(g.out, render.WarnStyle.Render("Could not save the match: "+err.Error()))
	}
	return winner, nil
}

// OnEvent prints shot results and turn changes.
func (g *Game) OnEvent(e battle.Event) {
	switch ev := e.(type) {
	case battle.TargetRejectedEvent:
		if ev.Side == battle.SideHuman {
			fmt.Fprintln(g.out, render.WarnStyle.Render(RejectMessage(ev.Err)))
		}
	case battle.ShotFiredEvent:
		fmt.Fprintln(g.out, ShotMessage(ev.Side, ev.Target, ev.Result))
	case battle.TurnPassedEvent:
		if ev.To == battle.SideOpponent {
			fmt.Fprintln(g.out, render.HintStyle.Render("Computer is aiming..."))
		}
	}
}

// RejectMessage explains why a target was not accepted.
func RejectMessage(err error) string {
	switch {
	case errors.Is(err, battle.ErrOutOfBounds):
		return "That cell is off the board!"
	case errors.Is(err, battle.ErrAlreadyTargeted):
		return "You already fired at that cell!"
	default:
		return err.Error()
	}
}

// ShotMessage describes a resolved shot from the shooter's point of view.
func ShotMessage(side battle.Side, target core.Coord, result battle.ShotResult) string {
	who := "You fire"
	if side == battle.SideOpponent {
		who = "Computer fires"
	}
	prefix := fmt.Sprintf("%s at %s: ", who, FormatTarget(target))

	switch result {
	case battle.ShotSunk:
		return prefix + render.BadStyle.Render("ship destroyed!")
	case battle.ShotHit:
		return prefix + render.WarnStyle.Render("ship hit!")
	default:
		return prefix + render.HintStyle.Render("miss.")
	}
}

func (g *Game) printOutcome(winner battle.Side) {
	m := g.sess.Match()
	if winner == battle.SideHuman {
		fmt.Fprintln(g.out, render.GoodStyle.Render(fmt.Sprintf("You won in %d turns!", m.Turns())))
		return
	}
	fmt.Fprintln(g.out, render.BadStyle.Render(fmt.Sprintf("The computer won in %d turns.", m.Turns())))
}

// drawBoards prints both boards, side by side when the terminal is wide
// enough.
func (g *Game) drawBoards() {
	if g.sess == nil {
		return
	}
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, Boards(g.sess.Match(), g.width))
	fmt.Fprintln(g.out, g.status())
}

func (g *Game) status() string {
	m := g.sess.Match()
	own := m.Player(battle.SideHuman).Board
	enemy := m.Player(battle.SideOpponent).Board
	return render.HintStyle.Render(fmt.Sprintf("Turn %d | your ships afloat: %d | enemy ships afloat: %d",
		m.Turns()+1, len(own.Ships())-own.SunkCount(), len(enemy.Ships())-enemy.SunkCount()))
}

// Boards renders the human board and the hidden enemy board. The layout
// is stacked when width cannot fit both.
func Boards(m *battle.Match, width int) string {
	own := drawBoard(m.Player(battle.SideHuman).Board, false)
	enemy := drawBoard(m.Player(battle.SideOpponent).Board, true)

	ownBlock := render.Titled("Your fleet", own)
	enemyBlock := render.Titled("Enemy waters", enemy)

	if render.Width(ownBlock)+boardGap+render.Width(enemyBlock) <= width {
		return render.SideBySide(boardGap, ownBlock, enemyBlock)
	}
	return render.Stacked(ownBlock, enemyBlock)
}

func drawBoard(b *battle.Board, hidden bool) string {
	n := b.Size()
	scr := core.NewScreen(battle.BoardWidth(n), battle.BoardHeight(n))
	battle.DrawBoard(scr, b, 0, 0, battle.DrawOptions{Hidden: hidden})
	return render.RenderScreen(scr)
}
