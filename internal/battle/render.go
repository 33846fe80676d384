package battle

import (
	"fmt"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// Board glyphs.
const (
	GlyphEmpty   = '~'
	GlyphShip    = '■'
	GlyphHit     = 'X'
	GlyphMiss    = '•'
	GlyphBlocked = '·'
)

// Layout of a drawn board: a 3-column row label, then 2 columns per cell.
const (
	labelWidth = 3
	cellWidth  = 2
)

// BoardWidth returns the screen width DrawBoard needs for a board of size n.
func BoardWidth(n int) int {
	return labelWidth + n*cellWidth
}

// BoardHeight returns the screen height DrawBoard needs for a board of size n.
func BoardHeight(n int) int {
	return n + 1
}

// Glyph returns the rune and colour for a cell. Hidden boards show intact
// ship segments as open water.
func Glyph(s CellState, hidden bool) (rune, core.Color) {
	switch s {
	case CellShip:
		if hidden {
			return GlyphEmpty, core.ColorBlue
		}
		return GlyphShip, core.ColorWhite
	case CellHit:
		return GlyphHit, core.ColorBrightRed
	case CellMiss:
		return GlyphMiss, core.ColorYellow
	case CellBlocked:
		return GlyphBlocked, core.ColorGray
	default:
		return GlyphEmpty, core.ColorBlue
	}
}

// DrawOptions controls how DrawBoard presents a board.
type DrawOptions struct {
	Hidden bool        // Hide intact ships (enemy view)
	Cursor *core.Coord // Highlighted cell, nil for none
}

// DrawBoard draws b with its top-left corner at (x, y): a header of
// 1-indexed column numbers, then one row per board row with a 1-indexed
// label.
func DrawBoard(dst *core.Screen, b *Board, x, y int, opts DrawOptions) {
	n := b.Size()

	for col := range n {
		label := fmt.Sprintf("%d", col+1)
		dst.DrawTextColored(x+labelWidth+col*cellWidth, y, lastRune(label), core.ColorGray)
	}

	for row := range n {
		dst.DrawTextColored(x, y+1+row, fmt.Sprintf("%2d", row+1), core.ColorGray)
		for col := range n {
			c := core.C(col, row)
			r, color := Glyph(b.Cell(c), opts.Hidden)
			if opts.Cursor != nil && *opts.Cursor == c {
				color = core.ColorCursor
			}
			dst.SetColored(x+labelWidth+col*cellWidth, y+1+row, r, color)
		}
	}
}

// lastRune keeps column headers one character wide on boards wider than 9.
func lastRune(s string) string {
	return s[len(s)-1:]
}
