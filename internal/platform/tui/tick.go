// Package tui provides the Bubble Tea front-ends: an interactive match
// screen with cursor targeting and the match history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// opponentMsg is sent when the computer may take its next shot.
type opponentMsg time.Time

// opponentCmd schedules the computer's next shot after delay.
func opponentCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return opponentMsg(t)
	})
}
