package cmd

import (
	"fmt"

	"github.com/theirongolddev/roicalc/internal/config"
	"github.com/theirongolddev/roicalc/internal/tui"
	"github.com/theirongolddev/roicalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// A broken config file should not keep the widget from starting.
	cfg := tui.LoadConfigOrDefault(log)
	applyFlags(cmd, &cfg)
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Config:    cfg,
		Logger:    log,
		NeedSetup: !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	log.Info().Str("theme", theme.Active.Name).Msg("starting widget")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
