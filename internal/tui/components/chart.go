package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders chart entries as one stacked bar, each entry taking a
// share of width proportional to its value.
func ShareBar(entries []model.ChartEntry, width int) string {
	t := theme.Active
	if width <= 0 {
		return ""
	}

	widths := cli.ShareWidths(entries, width)
	if widths == nil {
		return lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			Render(strings.Repeat("░", width))
	}

	var b strings.Builder
	for i, e := range entries {
		if widths[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(e.Color)).
			Background(t.Surface)
		b.WriteString(style.Render(strings.Repeat("█", widths[i])))
	}
	return b.String()
}

// Legend renders one line per chart entry: swatch, name, amount, and share
// of total. Values are formatted with cf.
func Legend(entries []model.ChartEntry, total int64, cf *cli.CurrencyFormatter, width int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(entries) == 0 {
		return mutedStyle.Render("No impact to chart")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	nameW, amtW := 0, 0
	amounts := make([]string, len(entries))
	for i, e := range entries {
		amounts[i] = cf.Format(e.Value)
		nameW = max(nameW, lipgloss.Width(e.Name))
		amtW = max(amtW, lipgloss.Width(amounts[i]))
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(e.Color)).
			Background(t.Surface).
			Render("■")
		pct := fmt.Sprintf("%5.1f%%", calc.Share(e.Value, total)*100)
		line := swatch + space.Render(" ") +
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, e.Name)) + space.Render("  ") +
			amtStyle.Render(fmt.Sprintf("%*s", amtW, amounts[i])) + space.Render("  ") +
			mutedStyle.Render(pct)
		if width > 0 && lipgloss.Width(line) > width {
			line = swatch + space.Render(" ") + nameStyle.Render(e.Name) + space.Render(" ") + mutedStyle.Render(pct)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ImpactBars renders one horizontal bar per section, scaled to the largest
// impact. Zero-impact sections get an empty track so the rows stay aligned.
func ImpactBars(impacts model.Impacts, cf *cli.CurrencyFormatter, width int) string {
	t := theme.Active

	var peak int64
	nameW := 0
	for _, s := range model.AllSections() {
		peak = max(peak, impacts[s])
		nameW = max(nameW, lipgloss.Width(s.String()))
	}

	labels := make([]string, model.SectionCount)
	labelW := 0
	for _, s := range model.AllSections() {
		labels[s] = cf.FormatCompact(impacts[s])
		labelW = max(labelW, lipgloss.Width(labels[s]))
	}

	barW := width - nameW - labelW - 4
	if barW < 4 {
		barW = 4
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	trackStyle := lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, 0, model.SectionCount)
	for _, s := range model.AllSections() {
		filled := 0
		if peak > 0 {
			filled = int(calc.Share(impacts[s], peak) * float64(barW))
		}
		if impacts[s] > 0 && filled == 0 {
			filled = 1
		}
		barStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Def().Color)).
			Background(t.Surface)

		lines = append(lines,
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, s.String()))+
				space.Render("  ")+
				barStyle.Render(strings.Repeat("█", filled))+
				trackStyle.Render(strings.Repeat("·", barW-filled))+
				space.Render("  ")+
				labelStyle.Render(fmt.Sprintf("%*s", labelW, labels[s])))
	}
	return strings.Join(lines, "\n")
}

// ShareLabel describes value as a share of total, e.g. "49.2% of total".
func ShareLabel(value, total int64) string {
	return fmt.Sprintf("%.1f%% of total", calc.Share(value, total)*100)
}
