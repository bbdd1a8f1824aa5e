package tui

import (
	"testing"

	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < tabCount; active++ {
		a := newTestApp(t)
		a.setTab(active)
		pos := 0

		for i := 0; i < tabCount; i++ {
			w := tabWidthForTest(i)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < tabCount-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("x past the last tab -> %d, want -1", got)
		}
	}
}

func tabWidthForTest(tabIdx int) int {
	if tabIdx == resultsTab {
		return len(components.ResultsTabName) + 2 // horizontal padding
	}
	// padding + completion marker and its space
	return len(model.Section(tabIdx).String()) + 2 + 2
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)
	x := tabWidthForTest(0) + 1 + tabWidthForTest(1) + 1 + 2 // inside the third tab

	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != int(model.MissedUpgrades) {
		t.Fatalf("activeTab = %d, want %d", got, model.MissedUpgrades)
	}

	m, _ = m.(App).Update(tea.MouseMsg{X: x, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != int(model.MissedUpgrades) {
		t.Fatalf("click below the tab bar changed tab to %d", got)
	}
}
