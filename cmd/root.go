package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/roicalc/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagFormulaSet string
	flagCurrency   string
	flagLocale     string
	flagPrefill    bool
	flagLogFile    string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "roicalc",
	Short: "Donor-management ROI calculator",
	Long: "Estimate the annual cost of admin waste, siloed collaboration, missed upgrades,\n" +
		"and donor lapse. Runs the interactive widget unless a subcommand is given.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormulaSet, "formula-set", "f", "",
		"Formula set to use (overrides "+config.FormulaSetEnv+" and config)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "ISO 4217 currency code for display")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "BCP 47 locale for number formatting")
	rootCmd.PersistentFlags().BoolVar(&flagPrefill, "prefill", false, "Start from the example values")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
}

// newLogger returns a no-op logger unless --log-file is set. The terminal
// belongs to the widget, so logs never go to stderr.
func newLogger() (zerolog.Logger, func(), error) {
	if flagLogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("opening log file: %w", err)
	}

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Str("app", "roicalc").Logger()
	return log, func() { _ = f.Close() }, nil
}

// effectiveConfig loads the config file and applies command-line overrides.
func effectiveConfig(cmd *cobra.Command, log zerolog.Logger) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	log.Debug().
		Str("formula_set", config.GetFormulaSet(cfg)).
		Str("currency", cfg.Display.Currency).
		Str("locale", cfg.Display.Locale).
		Bool("prefill", cfg.General.Prefill).
		Msg("config resolved")
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagFormulaSet != "" {
		cfg.General.FormulaSetOverride = flagFormulaSet
	}
	if flagCurrency != "" {
		cfg.Display.Currency = flagCurrency
	}
	if flagLocale != "" {
		cfg.Display.Locale = flagLocale
	}
	if cmd.Flags().Changed("prefill") {
		cfg.General.Prefill = flagPrefill
	}
}
