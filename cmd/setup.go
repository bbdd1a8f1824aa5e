package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/roicalc/internal/calc"
	"github.com/theirongolddev/roicalc/internal/cli"
	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  Existing config unreadable (%v), starting from defaults\n", err)
		cfg = config.DefaultConfig()
	}

	fmt.Println()
	fmt.Println("  Welcome to roicalc!")
	fmt.Println()

	// 1. Formula set
	fmt.Println("  1. Formula set")
	names := calc.FormulaSetNames()
	for i, name := range names {
		fs := calc.FormulaSetByName(name)
		marker := ""
		if name == calc.FormulaSetByName(cfg.General.FormulaSet).Name {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s: %s%s\n", i+1, fs.Name, fs.Description, marker)
	}
	if i, ok := readChoice(reader, len(names)); ok {
		cfg.General.FormulaSet = names[i]
	}
	fmt.Println()

	// 2. Currency
	fmt.Println("  2. Currency (ISO 4217 code)")
	fmt.Printf("     Current: %s\n", cfg.Display.Currency)
	for {
		code := strings.ToUpper(readLine(reader))
		if code == "" {
			break
		}
		if _, err := cli.NewCurrencyFormatter(code, cfg.Display.Locale); err != nil {
			fmt.Printf("     %v, try again\n", err)
			continue
		}
		cfg.Display.Currency = code
		break
	}
	fmt.Println()

	// 3. Locale
	fmt.Println("  3. Number format locale (e.g. en-US, de-DE)")
	fmt.Printf("     Current: %s\n", cfg.Display.Locale)
	for {
		locale := readLine(reader)
		if locale == "" {
			break
		}
		cf, err := cli.NewCurrencyFormatter(cfg.Display.Currency, locale)
		if err != nil {
			fmt.Printf("     %v, try again\n", err)
			continue
		}
		cfg.Display.Locale = locale
		fmt.Printf("     Amounts will look like %s\n", cf.Format(187500))
		break
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	themes := theme.Names()
	for i, name := range themes {
		marker := ""
		if name == cfg.Appearance.Theme {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, name, marker)
	}
	if i, ok := readChoice(reader, len(themes)); ok {
		cfg.Appearance.Theme = themes[i]
	}
	fmt.Println()

	// 5. Prefill
	fmt.Println("  5. Start with example values? (y/n)")
	fmt.Printf("     Current: %v\n", cfg.General.Prefill)
	switch strings.ToLower(readLine(reader)) {
	case "y", "yes":
		cfg.General.Prefill = true
	case "n", "no":
		cfg.General.Prefill = false
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `roicalc setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func readLine(r *bufio.Reader) string {
	fmt.Print("     > ")
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

// readChoice reads a 1-based menu choice. Blank or out-of-range input keeps
// the current value.
func readChoice(r *bufio.Reader, n int) (int, bool) {
	choice, err := strconv.Atoi(readLine(r))
	if err != nil || choice < 1 || choice > n {
		return 0, false
	}
	return choice - 1, true
}
