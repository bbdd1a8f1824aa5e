package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" draws a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align amount columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderShareBar renders a stacked bar where each entry takes a share of
// width proportional to its value. Rounding leftovers go to the largest entry.
func RenderShareBar(entries []model.ChartEntry, width int) string {
	if width <= 0 {
		return ""
	}
	widths := ShareWidths(entries, width)
	if widths == nil {
		return dimStyle.Render(strings.Repeat("░", width))
	}

	var b strings.Builder
	for i, e := range entries {
		if widths[i] == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color))
		b.WriteString(style.Render(strings.Repeat("█", widths[i])))
	}
	return b.String()
}

// ShareWidths splits width cells across entries by value. It returns nil
// when there is nothing to draw. Values are summed as floats so saturated
// impacts cannot overflow the total.
func ShareWidths(entries []model.ChartEntry, width int) []int {
	var total float64
	for _, e := range entries {
		if e.Value > 0 {
			total += float64(e.Value)
		}
	}
	if total <= 0 || width <= 0 {
		return nil
	}

	out := make([]int, len(entries))
	used, largest := 0, 0
	for i, e := range entries {
		if e.Value > 0 {
			out[i] = min(width, int(float64(e.Value)/total*float64(width)))
		}
		used += out[i]
		if e.Value > entries[largest].Value {
			largest = i
		}
	}
	out[largest] = max(0, out[largest]+width-used)
	return out
}

// RenderLegend renders one line per chart entry: swatch, name, amount, share.
func RenderLegend(entries []model.ChartEntry, total int64, cf *CurrencyFormatter) string {
	if len(entries) == 0 {
		return mutedStyle.Render("  No impact to chart")
	}

	nameW, amtW := 0, 0
	amounts := make([]string, len(entries))
	for i, e := range entries {
		amounts[i] = cf.Format(e.Value)
		nameW = max(nameW, lipgloss.Width(e.Name))
		amtW = max(amtW, lipgloss.Width(amounts[i]))
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		lines = append(lines, fmt.Sprintf("  %s %s  %s  %s",
			swatch,
			valueStyle.Render(padRight(e.Name, nameW)),
			valueStyle.Render(padLeft(amounts[i], amtW)),
			mutedStyle.Render(FormatPercent(calc.Share(e.Value, total))),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderResult renders the full text report of a calculation.
func RenderResult(r calc.Result, cf *CurrencyFormatter, width int) string {
	var b strings.Builder

	b.WriteString(RenderTitle("ROI Estimate"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, model.SectionCount+model.CategoryCount+3)
	for _, s := range model.AllSections() {
		v := r.Impacts.Of(s)
		rows = append(rows, []string{s.String(), cf.Format(v), FormatPercent(calc.Share(v, r.TotalImpact))})
	}
	rows = append(rows, []string{"---"})
	for _, c := range r.Categories {
		rows = append(rows, []string{c.Name, cf.Format(c.Value), FormatPercent(calc.Share(c.Value, r.TotalImpact))})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cf.Format(r.TotalImpact), ""})

	b.WriteString(RenderTable(Table{
		Headers: []string{"Section", "Impact", "Share"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	b.WriteString("  ")
	b.WriteString(RenderShareBar(r.ChartData, width))
	b.WriteString("\n")
	b.WriteString(RenderLegend(r.ChartData, r.TotalImpact, cf))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("Estimated annual impact: "))
	b.WriteString(totalStyle.Render(cf.Format(r.TotalImpact)))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Formula set: " + r.FormulaSet + ". Illustrative estimate only."))
	b.WriteString("\n")

	return b.String()
}

// RenderIncomplete lists sections that still have unset fields.
func RenderIncomplete(missing map[model.Section][]string) string {
	var b strings.Builder
	b.WriteString(warnStyle.Render("  Incomplete sections:"))
	b.WriteString("\n")
	for _, s := range model.AllSections() {
		fields, ok := missing[s]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n",
			valueStyle.Render(padRight(s.String(), 22)),
			mutedStyle.Render(strings.Join(fields, ", ")))
	}
	return b.String()
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
