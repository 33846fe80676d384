// Package console plays a match over a line-oriented terminal: boards are
// printed after every move and the human types targets as "x y".
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// Input errors. They are reported and the prompt repeats; they never reach
// the board.
var (
	ErrTokenCount = errors.New("enter two coordinates")
	ErrNotNumber  = errors.New("coordinates must be numbers")
)

// ParseTarget parses "x y" with 1-indexed column x and row y into a
// 0-indexed coordinate. Bounds are checked by the board, not here.
func ParseTarget(line string) (core.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return core.Coord{}, fmt.Errorf("%w, got %d", ErrTokenCount, len(fields))
	}

	var xy [2]int
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			return core.Coord{}, fmt.Errorf("%w: %q", ErrNotNumber, f)
		}
		xy[i] = int(n)
	}
	return core.C(xy[0]-1, xy[1]-1), nil
}

// FormatTarget is the inverse of ParseTarget.
func FormatTarget(c core.Coord) string {
	return fmt.Sprintf("%d %d", c.X+1, c.Y+1)
}
