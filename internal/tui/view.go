package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/tui/components"
	"github.com/theirongolddev/roicalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.setupActive() {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  roicalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Key).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")

	groups := []string{"Fields", "Tabs", "Actions"}
	for i, bindings := range a.keys.FullHelp() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(groups[i]))
		b.WriteString("\n")
		for _, bind := range bindings {
			h := bind.Help()
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", h.Key)),
				descStyle.Render(h.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q quits from the Results tab or the action button. Press any key to close."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	completion := a.mgr.Completion()

	// 1. Header: tab bar + context line
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	info := pillStyle.Render(" ◈ ROI calculator │ formula ") +
		accentStyle.Render(a.formulas.Name) +
		pillStyle.Render(" │ ") +
		accentStyle.Render(fmt.Sprintf("%d/%d", sectionsDone(completion), model.SectionCount)) +
		pillStyle.Render(" sections complete ")

	infoRowStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)

	header := components.RenderTabBar(components.SectionTabs(completion), a.activeTab, w) + "\n" +
		infoRowStyle.Render(info)

	// 2. Status bar
	status := a.notice
	if status == "" {
		status = a.money.Code()
	}
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), status)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	if a.activeTab == resultsTab {
		content = a.renderResults(cw)
	} else {
		content = a.renderSection(model.Section(a.activeTab), cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when w > cw
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Section form ───────────────────────────────────────────────

func (a App) renderSection(s model.Section, cw int) string {
	t := theme.Active
	def := s.Def()

	formW, sideW := cw, cw
	if a.isWideLayout() {
		formW = cw * 3 / 5
		sideW = cw - formW
	}
	inner := components.CardInnerWidth(formW)

	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(inner)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	helpStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(descStyle.Render(def.Description))
	b.WriteString("\n")

	snap := a.mgr.Snapshot()
	for i, f := range def.Fields {
		focused := a.focus == i
		marker := space.Render("  ")
		if focused {
			marker = markerStyle.Render("› ")
		}

		b.WriteString("\n")
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(f.Label))
		b.WriteString(unitStyle.Render(" (" + unitHint(f.Unit, a.money.Code()) + ")"))
		if !snap.Sections[s].Fields[i].IsSet() {
			b.WriteString(unitStyle.Render(" ·"))
		}
		b.WriteString("\n")
		b.WriteString(space.Render("  "))
		b.WriteString(a.inputs[s][i].View())
		if focused {
			b.WriteString("\n")
			b.WriteString(space.Render("  "))
			b.WriteString(helpStyle.Render(f.Help))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderActionButton())

	form := components.FocusCard(def.Name, b.String(), formW)
	side := a.renderProgressCard(sideW)

	if a.isWideLayout() {
		return components.CardRow([]string{form, side})
	}
	return form + "\n" + side
}

func (a App) renderActionButton() string {
	t := theme.Active

	label := "Next →"
	hint := ""
	if a.mgr.AllSectionsComplete() {
		label = "Calculate"
	} else {
		missing := model.SectionCount - sectionsDone(a.mgr.Completion())
		hint = plural(missing, "section needs values", "sections need values")
	}

	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if a.onButton() {
		style = style.Foreground(t.Background).Background(t.Accent)
	} else {
		style = style.Foreground(t.Accent).Background(t.SurfaceHover)
	}

	out := lipgloss.NewStyle().Background(t.Surface).Render("  ") + style.Render(label)
	if hint != "" {
		out += lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("  " + hint)
	}
	return out
}

func (a App) renderProgressCard(outerW int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerW)
	completion := a.mgr.Completion()

	doneStyle := lipgloss.NewStyle().Foreground(t.Complete).Background(t.Surface)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var b strings.Builder
	b.WriteString(components.ProgressBar(sectionsDone(completion), model.SectionCount, max(4, inner-6)))
	b.WriteString("\n\n")
	for _, s := range model.AllSections() {
		if completion[s] {
			b.WriteString(doneStyle.Render("✓ " + s.String()))
		} else {
			b.WriteString(todoStyle.Render("○ " + s.String()))
		}
		b.WriteString("\n")
	}

	if a.hasResult {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Last result "))
		b.WriteString(valueStyle.Render(a.money.Format(a.result.TotalImpact)))
		if a.stale {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("Inputs changed since. Calculate to refresh."))
		}
	}

	return components.ContentCard("Progress", b.String(), outerW)
}

// ─── Results ────────────────────────────────────────────────────

func (a App) renderResults(cw int) string {
	t := theme.Active

	if !a.hasResult {
		return components.ContentCard("Results", a.renderPending(), cw)
	}

	r := a.result
	totalNote := "estimated annual impact"
	if a.stale {
		totalNote = "inputs changed, recalculate"
	}

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Total Impact", Value: a.money.Format(a.counter.Value()), Note: totalNote, Color: t.Total},
		{Label: model.CategoryWastedSalary.String(), Value: a.money.Format(r.WastedAnnualSalarySpend),
			Note: components.ShareLabel(r.WastedAnnualSalarySpend, r.TotalImpact)},
		{Label: model.CategoryOpportunityCost.String(), Value: a.money.Format(r.OpportunityCost),
			Note: components.ShareLabel(r.OpportunityCost, r.TotalImpact)},
	}, cw)

	leftW, rightW := cw, cw
	if a.isWideLayout() {
		widths := components.LayoutRow(cw, 2)
		leftW, rightW = widths[0], widths[1]
	}

	breakdown := components.ContentCard("Breakdown",
		components.ImpactBars(r.Impacts, a.money, components.CardInnerWidth(leftW)), leftW)
	share := components.ContentCard("Share of impact", a.renderShare(components.CardInnerWidth(rightW)), rightW)

	var body string
	if a.isWideLayout() {
		body = components.CardRow([]string{breakdown, share})
	} else {
		body = breakdown + "\n" + share
	}

	footStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background)
	foot := footStyle.Render(fmt.Sprintf(" Illustrative estimate · formula set %s · esc to edit inputs", r.FormulaSet))

	return metrics + "\n" + body + "\n" + foot
}

func (a App) renderShare(inner int) string {
	t := theme.Active
	r := a.result

	var b strings.Builder
	b.WriteString(components.ShareBar(r.ChartData, inner))
	b.WriteString("\n\n")
	b.WriteString(components.Legend(r.ChartData, r.TotalImpact, a.money, inner))
	b.WriteString("\n\n")

	colors := [model.CategoryCount]lipgloss.Color{t.Wasted, t.Opportunity}
	labelW := 0
	for _, c := range r.Categories {
		labelW = max(labelW, lipgloss.Width(c.Name))
	}
	barW := max(4, inner-labelW-9)
	for i, c := range r.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(components.CategoryBar(c.Name, calc.Share(c.Value, r.TotalImpact), colors[c.Category], labelW, barW))
	}
	return b.String()
}

func (a App) renderPending() string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Stale).Background(t.Surface)

	var b strings.Builder
	b.WriteString(mutedStyle.Render("Complete every section, then choose Calculate."))
	b.WriteString("\n\n")
	completion := a.mgr.Completion()
	for _, s := range model.AllSections() {
		if !completion[s] {
			b.WriteString(warnStyle.Render("○ " + s.String()))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
