package tui

import (
	"fmt"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// currencyChoices are offered by the setup form; any ISO code works in the file.
var currencyChoices = []string{"USD", "EUR", "GBP", "CAD", "AUD"}

// setupValues receives the first-run form answers.
type setupValues struct {
	theme      string
	formulaSet string
	currency   string
	prefill    bool
}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		theme:      theme.ByName(cfg.Appearance.Theme).Name,
		formulaSet: calc.FormulaSetByName(cfg.General.FormulaSet).Name,
		currency:   cfg.Display.Currency,
		prefill:    cfg.General.Prefill,
	}
}

func newSetupForm(vals *setupValues) *huh.Form {
	formulaOpts := make([]huh.Option[string], 0, len(calc.FormulaSetNames()))
	for _, name := range calc.FormulaSetNames() {
		fs := calc.FormulaSetByName(name)
		formulaOpts = append(formulaOpts, huh.NewOption(fmt.Sprintf("%s (%s)", fs.Name, fs.Description), fs.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to roicalc").
				Description("A few preferences, saved to "+config.ConfigPath()+".\nRun `roicalc setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions(currencyChoices...)...).
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Formula set").
				Options(formulaOpts...).
				Value(&vals.formulaSet),
			huh.NewConfirm().
				Title("Start with example values?").
				Value(&vals.prefill),
		),
	).WithShowHelp(true)
}

// saveSetupConfig applies the form answers to the running widget and writes
// them to disk. A save failure is reported in the widget, not fatal.
func (a *App) saveSetupConfig() {
	cfg := a.cfg
	cfg.Appearance.Theme = a.setupVals.theme
	cfg.General.FormulaSet = a.setupVals.formulaSet
	cfg.General.FormulaSetOverride = ""
	cfg.Display.Currency = a.setupVals.currency
	cfg.General.Prefill = a.setupVals.prefill

	theme.SetActive(cfg.Appearance.Theme)
	a.formulas = calc.FormulaSetByName(config.GetFormulaSet(cfg))
	if cf, err := cli.NewCurrencyFormatter(cfg.Display.Currency, cfg.Display.Locale); err == nil {
		a.money = cf
	} else {
		a.log.Warn().Err(err).Msg("setup: keeping previous currency")
	}
	if p := config.PrefillPreset(cfg); p != nil && a.isBlank() {
		a.mgr.Prefill(p)
		a.syncInputs()
	}
	a.cfg = cfg

	if err := config.Save(cfg); err != nil {
		a.log.Error().Err(err).Msg("setup: saving config")
		a.notice = fmt.Sprintf("Could not save config: %s. Settings apply to this session only.", err)
		return
	}
	a.log.Info().Str("path", config.ConfigPath()).Msg("setup: config saved")
	a.notice = "Saved to " + config.ConfigPath()
}
