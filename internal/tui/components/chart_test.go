package components

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func TestShareBarWidth(t *testing.T) {
	entries := calc.ChartData(model.Impacts{187500, 121875, 20000, 300000})
	for _, w := range []int{1, 10, 37, 80} {
		if got := lipgloss.Width(ShareBar(entries, w)); got != w {
			t.Errorf("ShareBar width %d rendered %d columns", w, got)
		}
	}
	if got := lipgloss.Width(ShareBar(nil, 12)); got != 12 {
		t.Errorf("empty ShareBar rendered %d columns, want 12", got)
	}
}

func TestShareBarSaturatedImpacts(t *testing.T) {
	entries := calc.ChartData(model.Impacts{math.MaxInt64, math.MaxInt64, 20000, 300000})
	for _, w := range []int{1, 10, 37, 80} {
		if got := lipgloss.Width(ShareBar(entries, w)); got != w {
			t.Errorf("ShareBar width %d rendered %d columns", w, got)
		}
	}
}

func TestShareBarUsesSectionColors(t *testing.T) {
	entries := calc.ChartData(model.Impacts{100, 0, 0, 100})
	bar := ShareBar(entries, 20)
	// #4385BE and #D0A215 in TrueColor SGR form.
	for _, sgr := range []string{"67;133;190", "208;162;21"} {
		if !strings.Contains(bar, sgr) {
			t.Errorf("ShareBar missing color %s: %q", sgr, bar)
		}
	}
}

func TestLegend(t *testing.T) {
	entries := calc.ChartData(model.Impacts{0, 50, 0, 150})
	out := Legend(entries, 200, cli.DefaultCurrencyFormatter(), 80)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("legend has %d lines, want 2", len(lines))
	}
	if !strings.Contains(out, "Siloed Collaboration") || !strings.Contains(out, "75.0%") {
		t.Errorf("legend missing entries: %q", out)
	}
	if strings.Contains(out, "Admin Waste") {
		t.Error("zero-impact section should not appear in legend")
	}
}

func TestImpactBarsRows(t *testing.T) {
	out := ImpactBars(model.Impacts{10, 0, 5, 20}, cli.DefaultCurrencyFormatter(), 60)
	lines := strings.Split(out, "\n")
	if len(lines) != model.SectionCount {
		t.Fatalf("got %d rows, want %d", len(lines), model.SectionCount)
	}
	w := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != w {
			t.Errorf("row %d width %d, want %d", i, lipgloss.Width(l), w)
		}
	}
}
