package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/roicalc/internal/model"

	"github.com/BurntSushi/toml"
)

// FormulaSetEnv overrides the configured formula set when non-empty.
const FormulaSetEnv = "ROICALC_FORMULA_SET"

// Config holds all roicalc configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Defaults   model.Preset     `toml:"defaults,omitempty"`
}

// GeneralConfig holds calculation preferences.
type GeneralConfig struct {
	FormulaSet string `toml:"formula_set"`
	Prefill    bool   `toml:"prefill"`

	// FormulaSetOverride is set from the command line and never saved.
	FormulaSetOverride string `toml:"-"`
}

// DisplayConfig controls how amounts are formatted.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Locale   string `toml:"locale"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			FormulaSet: "standard",
		},
		Display: DisplayConfig{
			Currency: "USD",
			Locale:   "en-US",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "roicalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "roicalc")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetFormulaSet returns the formula set from the command-line override, env
// var or config, in that order.
func GetFormulaSet(cfg Config) string {
	if name := strings.TrimSpace(cfg.General.FormulaSetOverride); name != "" {
		return name
	}
	if name := strings.TrimSpace(os.Getenv(FormulaSetEnv)); name != "" {
		return name
	}
	if cfg.General.FormulaSet == "" {
		return "standard"
	}
	return cfg.General.FormulaSet
}

// PrefillPreset returns the values to pre-populate the calculator with, or
// nil when prefill is off and no defaults are configured. Configured
// defaults are layered over the built-in examples when prefill is on.
func PrefillPreset(cfg Config) model.Preset {
	switch {
	case cfg.General.Prefill:
		return model.ExamplePreset().Merge(cfg.Defaults)
	case len(cfg.Defaults) > 0:
		return model.Preset{}.Merge(cfg.Defaults)
	default:
		return nil
	}
}
