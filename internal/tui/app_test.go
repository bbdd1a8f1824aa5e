package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	return NewApp(Options{Config: config.DefaultConfig(), Logger: zerolog.Nop()})
}

func newPrefilledApp(t *testing.T) App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.General.Prefill = true
	return NewApp(Options{Config: cfg, Logger: zerolog.Nop()})
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyReset = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func TestNewApp_StartsOnFirstField(t *testing.T) {
	a := newTestApp(t)
	if a.activeTab != int(model.AdminWaste) || a.focus != 0 {
		t.Fatalf("start tab=%d focus=%d, want 0/0", a.activeTab, a.focus)
	}
	if !a.inputs[model.AdminWaste][0].Focused() {
		t.Fatal("first input not focused")
	}
}

func TestTypingUpdatesState(t *testing.T) {
	a := send(t, newTestApp(t), typed("$125,000"), keyTab)

	got, ok := a.mgr.Field(model.AdminWaste, "annualSalary").Get()
	if !ok || got != 125000 {
		t.Fatalf("annualSalary = %d (set=%v), want 125000", got, ok)
	}
	if a.focus != 1 {
		t.Fatalf("focus = %d after tab, want 1", a.focus)
	}
	if v := a.inputs[model.AdminWaste][0].Value(); v != "125,000" {
		t.Errorf("blurred field shows %q, want grouped digits", v)
	}
}

func TestEnterOnButtonGoesToNextIncomplete(t *testing.T) {
	a := send(t, newTestApp(t),
		typed("100"), keyEnter,
		typed("2"), keyEnter,
		typed("3"), keyEnter,
	)
	if !a.onButton() {
		t.Fatalf("focus = %d, want the action button", a.focus)
	}
	if !a.mgr.IsSectionComplete(model.AdminWaste) {
		t.Fatal("admin waste should be complete")
	}

	a = send(t, a, keyEnter)
	if a.activeTab != int(model.SiloedCollaboration) {
		t.Fatalf("activeTab = %d, want siloed collaboration", a.activeTab)
	}
	if a.focus != 0 {
		t.Errorf("focus = %d, want first unset field", a.focus)
	}
}

func TestNextWrapsToEarlierSection(t *testing.T) {
	a := newPrefilledApp(t)
	a.mgr.SetField(model.SiloedCollaboration, "hoursWasted", "")
	a.syncInputs()

	a = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true}, keySave)
	if a.activeTab != int(model.SiloedCollaboration) {
		t.Fatalf("activeTab = %d, want siloed collaboration", a.activeTab)
	}
	if a.focus != 1 {
		t.Errorf("focus = %d, want the unset hoursWasted field", a.focus)
	}
	if a.hasResult {
		t.Error("calculated with an incomplete section")
	}
}

func TestCalculateShowsResults(t *testing.T) {
	a := newPrefilledApp(t)
	m, cmd := a.Update(keySave)
	a = m.(App)

	if cmd == nil {
		t.Fatal("calculate returned no animation command")
	}
	if a.activeTab != resultsTab || !a.hasResult || a.stale {
		t.Fatalf("tab=%d hasResult=%v stale=%v", a.activeTab, a.hasResult, a.stale)
	}
	if a.result.TotalImpact != 629375 {
		t.Fatalf("total = %d, want 629375", a.result.TotalImpact)
	}
	if got := a.mgr.Snapshot().Impacts(); got != (model.Impacts{187500, 121875, 20000, 300000}) {
		t.Errorf("impacts not written to state: %v", got)
	}
	if !a.counter.Running() {
		t.Error("counter not animating")
	}
}

func TestEditAfterCalculateMarksStale(t *testing.T) {
	a := send(t, newPrefilledApp(t), keySave, keyEsc)
	if a.activeTab != int(model.AdminWaste) {
		t.Fatalf("esc from results -> tab %d", a.activeTab)
	}

	a.focus = 0
	a.applyFocus()
	a = send(t, a, typed("9"))

	if !a.stale {
		t.Fatal("edit did not mark results stale")
	}
	if a.result.TotalImpact != 629375 {
		t.Fatalf("shown result changed before recalculation: %d", a.result.TotalImpact)
	}

	a = send(t, a, keySave)
	if a.stale || a.result.TotalImpact == 629375 {
		t.Fatalf("recalculate: stale=%v total=%d", a.stale, a.result.TotalImpact)
	}
}

func TestResetClearsEverything(t *testing.T) {
	a := send(t, newPrefilledApp(t), keySave, keyReset)
	if a.hasResult || a.activeTab != int(model.AdminWaste) {
		t.Fatalf("reset: hasResult=%v tab=%d", a.hasResult, a.activeTab)
	}
	if a.mgr.Snapshot() != (model.CalculatorState{}) {
		t.Fatal("reset left values in state")
	}
	if v := a.inputs[model.DonorLapse][0].Value(); v != "" {
		t.Errorf("reset left input text %q", v)
	}
}

func TestQuitFromResults(t *testing.T) {
	a := send(t, newPrefilledApp(t), keySave)
	_, cmd := a.Update(typed("q"))
	if cmd == nil {
		t.Fatal("q on results returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q on results did not quit")
	}
}

func TestQWhileEditingIsText(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(typed("q"))
	if got := m.(App).inputs[model.AdminWaste][0].Value(); got != "q" {
		t.Fatalf("input = %q, want the typed rune", got)
	}
	if m.(App).mgr.Field(model.AdminWaste, "annualSalary").IsSet() {
		t.Error("non-digit text should leave the field unset")
	}
}

func TestAppsDoNotShareState(t *testing.T) {
	a := send(t, newTestApp(t), typed("5"))
	b := newTestApp(t)
	if b.mgr.Field(model.AdminWaste, "annualSalary").IsSet() {
		t.Fatal("second app sees the first app's value")
	}
	_ = a
}

func TestViewRendersResults(t *testing.T) {
	a := send(t, newPrefilledApp(t), tea.WindowSizeMsg{Width: 130, Height: 40}, keySave)
	for a.counter.Running() {
		a = send(t, a, counterTickMsg{gen: a.counter.gen})
	}

	out := a.View()
	for _, want := range []string{"Results", "$629,375", "Donor Lapse", "Opportunity Cost"} {
		if !strings.Contains(out, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestViewSectionShowsAction(t *testing.T) {
	a := send(t, newTestApp(t), tea.WindowSizeMsg{Width: 100, Height: 40})
	out := a.View()
	if !strings.Contains(out, "Next →") || !strings.Contains(out, "Annual Salary") {
		t.Errorf("section view missing field or action")
	}

	a = send(t, newPrefilledApp(t), tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(a.View(), "Calculate") {
		t.Error("complete form should offer Calculate")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := send(t, newTestApp(t), tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal message missing")
	}
}

func TestNonDigitEditKeepsResultsFresh(t *testing.T) {
	a := send(t, newPrefilledApp(t), keySave, keyEsc)
	a.focus = 0
	a.applyFocus()

	a = send(t, a, typed("x"))
	if a.stale {
		t.Fatal("typing a non-digit marked results stale")
	}
	if got := a.mgr.Field(model.AdminWaste, "annualSalary").Or(0); got != 125000 {
		t.Fatalf("annualSalary = %d, want unchanged 125000", got)
	}
}

func TestSaturatedInputsRender(t *testing.T) {
	a := newPrefilledApp(t)
	for _, s := range []model.Section{model.AdminWaste, model.SiloedCollaboration} {
		a.mgr.SetField(s, "annualSalary", "999999999999999999999")
	}
	a.syncInputs()

	a = send(t, a, tea.WindowSizeMsg{Width: 130, Height: 40}, keySave)
	for a.counter.Running() {
		a = send(t, a, counterTickMsg{gen: a.counter.gen})
	}
	if !strings.Contains(a.View(), "Share of impact") {
		t.Fatal("results view did not render")
	}

	a = send(t, a, keyEsc)
	if got := a.inputs[model.AdminWaste][0].Value(); got != "9,223,372,036,854,775,807" {
		t.Errorf("blurred saturated field shows %q", got)
	}

	a = send(t, a, tea.WindowSizeMsg{Width: 80, Height: 40})
	_ = a.View()
}
