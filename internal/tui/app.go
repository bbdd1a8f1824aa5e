// Package tui provides the interactive Bubble Tea widget for roicalc.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/state"
	"github.com/theirongolddev/roicalc/internal/tui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Options configures a new App.
type Options struct {
	Config    config.Config
	Logger    zerolog.Logger
	NeedSetup bool // show the first-run form before the calculator
}

// App is the root Bubble Tea model. Each App owns its calculator state.
type App struct {
	cfg      config.Config
	log      zerolog.Logger
	mgr      *state.Manager
	formulas calc.FormulaSet
	money    *cli.CurrencyFormatter

	// One text input per field; slots past a section's field count are unused.
	inputs [model.SectionCount][model.MaxFields]textinput.Model
	focus  int // field index in the active section; fieldCount() is the action button

	activeTab   int
	lastSection model.Section

	// Results persist until the next calculation; edits only mark them stale.
	result    calc.Result
	hasResult bool
	stale     bool
	counter   counter

	keys     keyMap
	help     help.Model
	showHelp bool
	notice   string

	// UI state
	width  int
	height int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	resultsTab = model.SectionCount
	tabCount   = model.SectionCount + 1

	minTerminalWidth = 60
	wideWidth        = 110
	maxContentWidth  = 150
	minContentHeight = 5

	// Room for the largest value with separators, "9,223,372,036,854,775,807".
	maxInputChars = 26
)

// LoadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func LoadConfigOrDefault(log zerolog.Logger) config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, using defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	log := opts.Logger
	cfg := opts.Config

	name := config.GetFormulaSet(cfg)
	if _, ok := calc.LookupFormulaSet(name); !ok {
		log.Warn().Str("formula_set", name).Msg("unknown formula set, using standard")
	}

	money, err := cli.NewCurrencyFormatter(cfg.Display.Currency, cfg.Display.Locale)
	if err != nil {
		log.Warn().Err(err).Msg("invalid display settings, using USD/en-US")
		money = cli.DefaultCurrencyFormatter()
	}

	a := App{
		cfg:      cfg,
		log:      log,
		mgr:      state.New().WithLogger(log),
		formulas: calc.FormulaSetByName(name),
		money:    money,
		counter:  newCounter(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	for _, s := range model.AllSections() {
		for i, f := range s.Def().Fields {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = "e.g. " + cli.FormatNumber(f.Example)
			ti.CharLimit = maxInputChars
			ti.Width = maxInputChars
			a.inputs[s][i] = ti
		}
	}

	if p := config.PrefillPreset(cfg); p != nil {
		a.mgr.Prefill(p)
	}
	a.syncInputs()

	if s, ok := a.mgr.FirstIncompleteSection(); ok {
		a.setTab(int(s))
	} else {
		a.setTab(int(model.AdminWaste))
	}

	if opts.NeedSetup {
		vals := newSetupValues(cfg)
		a.setupVals = &vals
		a.setupForm = newSetupForm(a.setupVals)
		a.needSetup = true
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		textinput.Blink,
	}
	if a.setupActive() {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case counterTickMsg:
		next := a.counter.Update(msg)
		return a, next

	case tea.MouseMsg:
		if a.showHelp || a.setupActive() {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				next := a.setTab(tab)
				return a, next
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.setupActive() {
			return a.updateSetupForm(msg)
		}
		return a.handleKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupActive() {
		return a.updateSetupForm(msg)
	}
	return a.updateFocusedInput(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if msg.String() == "f1" || (key.Matches(msg, a.keys.Help) && !a.editing()) {
		a.showHelp = true
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.JumpTab):
		s := msg.String()
		next := a.setTab(int(s[len(s)-1] - '1'))
		return a, next
	case key.Matches(msg, a.keys.NextTab):
		next := a.setTab((a.activeTab + 1) % tabCount)
		return a, next
	case key.Matches(msg, a.keys.PrevTab):
		next := a.setTab((a.activeTab - 1 + tabCount) % tabCount)
		return a, next
	case key.Matches(msg, a.keys.Reset):
		next := a.reset()
		return a, next
	case key.Matches(msg, a.keys.Prefill):
		a.mgr.Prefill(model.ExamplePreset())
		a.syncInputs()
		a.markStale()
		a.notice = "Filled example values"
		return a, nil
	case key.Matches(msg, a.keys.Submit):
		return a.primaryAction()
	}

	if a.activeTab == resultsTab {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Action):
			next := a.setTab(int(a.lastSection))
			return a, next
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.NextField):
		next := a.moveFocus(1)
		return a, next
	case key.Matches(msg, a.keys.PrevField):
		next := a.moveFocus(-1)
		return a, next
	case key.Matches(msg, a.keys.Action):
		if a.onButton() {
			return a.primaryAction()
		}
		next := a.moveFocus(1)
		return a, next
	case key.Matches(msg, a.keys.Back):
		a.focus = a.fieldCount()
		next := a.applyFocus()
		return a, next
	case a.onButton() && key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	}

	return a.updateFocusedInput(msg)
}

// primaryAction is "Next" until every section is complete, then "Calculate".
func (a App) primaryAction() (tea.Model, tea.Cmd) {
	if a.mgr.AllSectionsComplete() {
		return a.calculate()
	}

	cur := a.currentSection()
	target := a.mgr.NextIncompleteSection(cur)
	a.log.Debug().Str("from", cur.Key()).Str("to", target.Key()).Msg("next section")
	next := a.setTab(int(target))
	return a, next
}

func (a App) calculate() (tea.Model, tea.Cmd) {
	r := calc.Calculate(a.mgr.Snapshot(), a.formulas)
	a.mgr.ApplyImpacts(r.Impacts)
	a.result = r
	a.hasResult = true
	a.stale = false
	a.notice = ""

	a.log.Info().
		Str("formula_set", r.FormulaSet).
		Int64("total", r.TotalImpact).
		Int64("wasted_salary", r.WastedAnnualSalarySpend).
		Int64("opportunity_cost", r.OpportunityCost).
		Msg("calculated")

	cmd := tea.Batch(a.setTab(resultsTab), a.counter.Start(r.TotalImpact))
	return a, cmd
}

func (a *App) reset() tea.Cmd {
	a.mgr.Reset()
	a.syncInputs()
	a.result = calc.Result{}
	a.hasResult = false
	a.stale = false
	a.counter.Stop()
	a.notice = "Cleared all fields"
	a.log.Info().Msg("reset")
	return a.setTab(int(model.AdminWaste))
}

func (a App) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.activeTab >= resultsTab || a.onButton() {
		return a, nil
	}

	s := model.Section(a.activeTab)
	before := a.inputs[s][a.focus].Value()

	var cmd tea.Cmd
	a.inputs[s][a.focus], cmd = a.inputs[s][a.focus].Update(msg)

	if after := a.inputs[s][a.focus].Value(); after != before {
		key := s.Def().Fields[a.focus].Key
		prev := a.mgr.Field(s, key)
		a.mgr.SetField(s, key, after)
		if a.mgr.Field(s, key) != prev {
			a.markStale()
		}
	}
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		if s, ok := a.mgr.FirstIncompleteSection(); ok {
			next := a.setTab(int(s))
			return a, next
		}
		next := a.applyFocus()
		return a, next
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		next := a.applyFocus()
		return a, next
	}

	return a, cmd
}

// ─── Focus and navigation ───────────────────────────────────────

func (a App) setupActive() bool {
	return a.needSetup && a.setupForm != nil
}

func (a App) currentSection() model.Section {
	if a.activeTab < resultsTab {
		return model.Section(a.activeTab)
	}
	return a.lastSection
}

func (a App) fieldCount() int {
	return len(a.currentSection().Def().Fields)
}

func (a App) onButton() bool {
	return a.focus >= a.fieldCount()
}

// editing reports whether keystrokes go to a text field.
func (a App) editing() bool {
	return a.activeTab < resultsTab && !a.onButton()
}

// setTab switches tabs. Entering a section focuses its first unset field,
// or the action button when the section is complete.
func (a *App) setTab(idx int) tea.Cmd {
	if idx < 0 || idx >= tabCount {
		return nil
	}
	a.activeTab = idx
	if idx == resultsTab {
		return a.applyFocus()
	}

	s := model.Section(idx)
	a.lastSection = s
	a.focus = len(s.Def().Fields)
	snap := a.mgr.Snapshot()
	for i := range s.Def().Fields {
		if !snap.Sections[s].Fields[i].IsSet() {
			a.focus = i
			break
		}
	}
	return a.applyFocus()
}

func (a *App) moveFocus(delta int) tea.Cmd {
	n := a.fieldCount() + 1 // fields + action button
	a.focus = ((a.focus+delta)%n + n) % n
	return a.applyFocus()
}

// applyFocus focuses the active field and blurs every other one. Blurred
// fields are redisplayed from state with thousands separators.
func (a *App) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	snap := a.mgr.Snapshot()
	for _, s := range model.AllSections() {
		for i := range s.Def().Fields {
			if a.activeTab == int(s) && a.focus == i {
				cmd = a.inputs[s][i].Focus()
				continue
			}
			if a.inputs[s][i].Focused() {
				a.inputs[s][i].Blur()
			}
			a.inputs[s][i].SetValue(displayValue(snap.Sections[s].Fields[i]))
		}
	}
	return cmd
}

// syncInputs rewrites every input from state.
func (a *App) syncInputs() {
	snap := a.mgr.Snapshot()
	for _, s := range model.AllSections() {
		for i := range s.Def().Fields {
			a.inputs[s][i].SetValue(displayValue(snap.Sections[s].Fields[i]))
		}
	}
}

func (a App) isBlank() bool {
	snap := a.mgr.Snapshot()
	for _, s := range model.AllSections() {
		for i := range s.Def().Fields {
			if snap.Sections[s].Fields[i].IsSet() {
				return false
			}
		}
	}
	return true
}

func (a *App) markStale() {
	if a.hasResult {
		a.stale = true
	}
}

func displayValue(v model.Value) string {
	n, ok := v.Get()
	if !ok {
		return ""
	}
	return cli.FormatNumber(n)
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	tabs := components.SectionTabs(a.mgr.Completion())
	pos := 0
	for i, tab := range tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(tabs)-1 {
			pos++
		}
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isWideLayout() bool {
	return a.contentWidth() >= wideWidth
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

func unitHint(u model.Unit, currency string) string {
	switch u {
	case model.UnitCurrency:
		return currency
	case model.UnitHours:
		return "hours"
	case model.UnitPercent:
		return "%"
	default:
		return "count"
	}
}

func sectionsDone(completion [model.SectionCount]bool) int {
	n := 0
	for _, ok := range completion {
		if ok {
			n++
		}
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
