package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/platform/render"
)

type lineResult struct {
	line string
	err  error
}

// Prompter reads targets from a line-oriented input. Malformed lines are
// reported and asked again. It implements battle.InputSource.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	prompt string

	// Before runs once per requested target, e.g. to redraw the boards.
	Before func()

	once  sync.Once
	lines chan lineResult
}

// NewPrompter creates a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, prompt: "Your move (x y): "}
}

// start reads lines in the background so a blocked read does not keep
// ReadTarget from seeing a cancelled context.
func (p *Prompter) start() {
	p.lines = make(chan lineResult)
	go func() {
		sc := bufio.NewScanner(p.in)
		for sc.Scan() {
			p.lines <- lineResult{line: sc.Text()}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		p.lines <- lineResult{err: err}
		close(p.lines)
	}()
}

// ReadTarget prompts until a well-formed target is entered. It returns
// io.EOF when the input ends.
func (p *Prompter) ReadTarget(ctx context.Context) (core.Coord, error) {
	p.once.Do(p.start)
	if p.Before != nil {
		p.Before()
	}

	for {
		fmt.Fprint(p.out, p.prompt)

		var res lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return core.Coord{}, ctx.Err()
		case r, ok := <-p.lines:
			if !ok {
				r = lineResult{err: io.EOF}
			}
			res = r
		}
		if res.err != nil {
			fmt.Fprintln(p.out)
			return core.Coord{}, res.err
		}

		c, err := ParseTarget(res.line)
		if err == nil {
			return c, nil
		}
		fmt.Fprintln(p.out, render.WarnStyle.Render(inputMessage(err)))
	}
}

func inputMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenCount):
		return "Enter two numbers: column and row."
	case errors.Is(err, ErrNotNumber):
		return "Coordinates must be positive numbers."
	default:
		return err.Error()
	}
}
