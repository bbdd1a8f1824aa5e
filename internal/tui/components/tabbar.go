package components

import (
	"strings"

	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name     string
	Tracked  bool // shows a completion marker
	Complete bool
}

const (
	markDone    = "✓ "
	markPending = "○ "
)

// ResultsTabName labels the tab after the four sections.
const ResultsTabName = "Results"

// SectionTabs builds one tab per section followed by the results tab.
func SectionTabs(completion [model.SectionCount]bool) []Tab {
	tabs := make([]Tab, 0, model.SectionCount+1)
	for _, s := range model.AllSections() {
		tabs = append(tabs, Tab{Name: s.String(), Tracked: true, Complete: completion[s]})
	}
	return append(tabs, Tab{Name: ResultsTabName})
}

func tabText(tab Tab) string {
	if !tab.Tracked {
		return tab.Name
	}
	if tab.Complete {
		return markDone + tab.Name
	}
	return markPending + tab.Name
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tabText(tab))
	}

	base := lipgloss.NewStyle().Background(t.Surface)
	name := base.Foreground(t.TextMuted).Render(tab.Name)
	pad := base.Render(" ")
	if !tab.Tracked {
		return pad + name + pad
	}
	if tab.Complete {
		return pad + base.Foreground(t.Complete).Render(markDone) + name + pad
	}
	return pad + base.Foreground(t.TextDim).Render(markPending) + name + pad
}

// TabVisualWidth returns the rendered width of tab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index, one column
// between tabs, filled to width.
func RenderTabBar(tabs []Tab, activeIdx, width int) string {
	t := theme.Active

	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		parts = append(parts, renderTab(tab, i == activeIdx))
	}
	row := strings.Join(parts, sep)

	return lipgloss.PlaceHorizontal(width, lipgloss.Left, row,
		lipgloss.WithWhitespaceBackground(t.Surface))
}
