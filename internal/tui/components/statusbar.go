package components

import (
	"strings"

	"github.com/theirongolddev/roicalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// status on the right.
func RenderStatusBar(width int, hints, status string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := ""
	if status != "" {
		right = status + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the hints before the status.
		left = ""
		padding = max(0, width-lipgloss.Width(right))
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
