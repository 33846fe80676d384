package battle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

func drawn(b *Board, opts DrawOptions) *core.Screen {
	n := b.Size()
	scr := core.NewScreen(BoardWidth(n), BoardHeight(n))
	DrawBoard(scr, b, 0, 0, opts)
	return scr
}

func TestDrawBoardHidesIntactShips(t *testing.T) {
	b := mustBoard(6,
		NewShip(core.C(0, 0), 2, Horizontal),
		NewShip(core.C(4, 4), 1, Horizontal),
	)
	if _, err := b.Shoot(core.C(0, 0)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	if _, err := b.Shoot(core.C(3, 3)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}
	if _, err := b.Shoot(core.C(4, 4)); err != nil {
		t.Fatalf("Shoot() failed: %v", err)
	}

	hidden := drawn(b, DrawOptions{Hidden: true}).String()
	if strings.ContainsRune(hidden, GlyphShip) {
		t.Errorf("hidden board shows a ship segment:\n%s", hidden)
	}
	for _, g := range []rune{GlyphHit, GlyphMiss, GlyphBlocked} {
		if !strings.ContainsRune(hidden, g) {
			t.Errorf("hidden board is missing %q:\n%s", g, hidden)
		}
	}

	open := drawn(b, DrawOptions{}).String()
	if strings.Count(open, string(GlyphShip)) != 1 {
		t.Errorf("own board should show the one intact segment:\n%s", open)
	}
}

func TestDrawBoardLayout(t *testing.T) {
	b := mustBoard(6, NewShip(core.C(2, 1), 1, Horizontal))
	scr := drawn(b, DrawOptions{})

	if got := scr.Row(0); strings.TrimSpace(got) != "1 2 3 4 5 6" {
		t.Errorf("header = %q, expected column numbers", got)
	}
	if got := scr.Row(1)[:2]; got != " 1" {
		t.Errorf("first row label = %q, expected \" 1\"", got)
	}
	if got := scr.Get(labelWidth+2*cellWidth, 2); got != GlyphShip {
		t.Errorf("cell (2,1) drawn as %q, expected %q", got, GlyphShip)
	}
}

func TestDrawBoardWideHeaderKeepsLastDigit(t *testing.T) {
	scr := drawn(NewBoard(12), DrawOptions{})

	if got := scr.Get(labelWidth+9*cellWidth, 0); got != '0' {
		t.Errorf("header for column 10 = %q, expected '0'", got)
	}
	if got := scr.Get(labelWidth+11*cellWidth, 0); got != '2' {
		t.Errorf("header for column 12 = %q, expected '2'", got)
	}
}

func TestDrawBoardCursor(t *testing.T) {
	b := NewBoard(6)
	cur := core.C(3, 2)
	scr := drawn(b, DrawOptions{Cursor: &cur})

	if got := scr.GetCell(labelWidth+3*cellWidth, 3).Color; got != core.ColorCursor {
		t.Errorf("cursor cell colour = %v, expected cursor", got)
	}
	if got := scr.GetCell(labelWidth, 1).Color; got == core.ColorCursor {
		t.Error("non-cursor cell drawn with cursor colour")
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		state    CellState
		hidden   bool
		expected rune
	}{
		{CellEmpty, false, GlyphEmpty},
		{CellShip, false, GlyphShip},
		{CellShip, true, GlyphEmpty},
		{CellHit, true, GlyphHit},
		{CellMiss, true, GlyphMiss},
		{CellBlocked, true, GlyphBlocked},
	}

	for _, tc := range tests {
		if got, _ := Glyph(tc.state, tc.hidden); got != tc.expected {
			t.Errorf("Glyph(%v, %v) = %q, expected %q", tc.state, tc.hidden, got, tc.expected)
		}
	}
}
