package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/report"
	"github.com/theirongolddev/roicalc/internal/state"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagFormat string
	flagWidth  int
)

var errIncomplete = errors.New("incomplete input")

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the ROI estimate without the interactive widget",
	Long: "Calculate from field flags, config defaults, and --prefill examples.\n" +
		"Flags take the form --<section>.<field>, e.g. --admin-waste.annual-salary 125000.",
	Example: "  roicalc calc --prefill --missed-upgrades.upgradable-donors 350\n" +
		"  roicalc calc --prefill --format json",
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&flagFormat, "format", "o", "text",
		"Output format ("+strings.Join(report.Formats, ", ")+")")
	calcCmd.Flags().IntVar(&flagWidth, "width", 80, "Text output width")

	registerFieldFlags(calcCmd.Flags())
	rootCmd.AddCommand(calcCmd)
}

// registerFieldFlags adds one string flag per input field. The raw text is
// parsed the same way as widget input.
func registerFieldFlags(fs *pflag.FlagSet) {
	for _, s := range model.AllSections() {
		def := s.Def()
		for _, f := range def.Fields {
			fs.String(fieldFlagName(s, f.Key), "",
				fmt.Sprintf("%s: %s (e.g. %s)", def.Name, f.Help, cli.FormatNumber(f.Example)))
		}
	}
}

// applyFieldFlags writes every field flag given on the command line into mgr.
// Text without digits leaves the field unset, as in the widget.
func applyFieldFlags(fs *pflag.FlagSet, mgr *state.Manager) {
	for _, s := range model.AllSections() {
		for _, f := range s.Def().Fields {
			name := fieldFlagName(s, f.Key)
			if !fs.Changed(name) {
				continue
			}
			raw, _ := fs.GetString(name)
			mgr.SetField(s, f.Key, raw)
		}
	}
}

func fieldFlagName(s model.Section, field string) string {
	return model.KebabCase(s.Key()) + "." + model.KebabCase(field)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := effectiveConfig(cmd, log)
	if err != nil {
		return err
	}

	money, err := cli.NewCurrencyFormatter(cfg.Display.Currency, cfg.Display.Locale)
	if err != nil {
		return fmt.Errorf("display settings: %w", err)
	}

	name := config.GetFormulaSet(cfg)
	fs, ok := calc.LookupFormulaSet(name)
	if !ok {
		return fmt.Errorf("unknown formula set %q (available: %s)", name, strings.Join(calc.FormulaSetNames(), ", "))
	}

	mgr := state.New().WithLogger(log)
	if p := config.PrefillPreset(cfg); p != nil {
		mgr.Prefill(p)
	}
	applyFieldFlags(cmd.Flags(), mgr)

	if missing := missingFields(mgr); len(missing) > 0 {
		fmt.Fprint(os.Stderr, cli.RenderIncomplete(missing))
		fmt.Fprintln(os.Stderr, "\n  Pass the missing flags, or --prefill to start from the examples.")
		return errIncomplete
	}

	r := calc.Calculate(mgr.Snapshot(), fs)
	mgr.ApplyImpacts(r.Impacts)
	log.Info().
		Str("formula_set", r.FormulaSet).
		Int64("total", r.TotalImpact).
		Str("format", flagFormat).
		Msg("calculated")

	doc := report.Build(mgr.Snapshot(), r, money)
	return report.Write(cmd.OutOrStdout(), flagFormat, doc, r, money, flagWidth)
}

// missingFields lists the unset field flags for each incomplete section.
func missingFields(mgr *state.Manager) map[model.Section][]string {
	missing := make(map[model.Section][]string)
	for _, s := range model.AllSections() {
		for _, f := range s.Def().Fields {
			if !mgr.Field(s, f.Key).IsSet() {
				missing[s] = append(missing[s], "--"+fieldFlagName(s, f.Key))
			}
		}
	}
	return missing
}
