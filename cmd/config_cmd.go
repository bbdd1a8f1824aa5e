// Package cmd implements the roicalc CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/model"
	"github.com/theirongolddev/roicalc/internal/state"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := effectiveConfig(cmd, log)
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	name := config.GetFormulaSet(cfg)
	fs, known := calc.LookupFormulaSet(name)
	fmt.Println("  [General]")
	if known {
		fmt.Printf("    Formula set: %s (%s)\n", fs.Name, fs.Description)
	} else {
		fmt.Printf("    Formula set: %s (unknown, falls back to standard)\n", name)
	}
	switch {
	case cfg.General.FormulaSetOverride != "":
		fmt.Println("    Overridden by --formula-set")
	case os.Getenv(config.FormulaSetEnv) != "":
		fmt.Printf("    Overridden by %s\n", config.FormulaSetEnv)
	}
	fmt.Printf("    Available:   %s\n", strings.Join(calc.FormulaSetNames(), ", "))
	fmt.Printf("    Prefill:     %v\n", cfg.General.Prefill)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Printf("    Locale:   %s\n", cfg.Display.Locale)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Defaults]")
	defaults := state.New()
	defaults.Prefill(cfg.Defaults)
	if len(cfg.Defaults) == 0 {
		fmt.Println("    none")
	}
	for _, s := range model.AllSections() {
		header := false
		for _, f := range s.Def().Fields {
			v, ok := defaults.Field(s, f.Key).Get()
			if !ok {
				continue
			}
			if !header {
				fmt.Printf("    %s\n", s.String())
				header = true
			}
			fmt.Printf("      %-22s %s\n", f.Label, cli.FormatNumber(v))
		}
	}
	fmt.Println()

	fmt.Println("  Run `roicalc setup` to reconfigure.")
	return nil
}
