// Package render turns core.Screen buffers and status text into styled
// terminal output with lipgloss. Both the console and the TUI front-ends
// draw through it.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorCursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
}

// Status line styles.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	HintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	GoodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	BadStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Titled puts a styled title line above a rendered block.
func Titled(title, block string) string {
	return lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), block)
}

// SideBySide joins blocks horizontally with gap spaces between them.
func SideBySide(gap int, blocks ...string) string {
	parts := make([]string, 0, 2*len(blocks))
	spacer := strings.Repeat(" ", gap)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Stacked joins blocks vertically with one blank line between them.
func Stacked(blocks ...string) string {
	return strings.Join(blocks, "\n\n")
}

// Width returns the printable width of a rendered block.
func Width(block string) int {
	return lipgloss.Width(block)
}

// Banner renders a boxed title with an optional subtitle.
func Banner(title, subtitle string) string {
	body := TitleStyle.Render(title)
	if subtitle != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, HintStyle.Render(subtitle))
	}
	return bannerStyle.Render(body)
}
