// Package config persists vietime's engine settings and user shortcuts to
// an on-disk TOML file, the way fkey's Linux daemon does for its own
// settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Method names stored in the config file. The zero value (Telex) is the
// default, matching miken90-fkey's InputMethod 0/1 convention.
const (
	MethodTelex = "telex"
	MethodVNI   = "vni"
)

// ShortcutDef is one user-defined text expansion, persisted as a
// [[shortcut]] array-of-tables entry.
type ShortcutDef struct {
	Trigger     string `toml:"trigger"`
	Replacement string `toml:"replacement"`
	Immediate   bool   `toml:"immediate"`
}

// Config holds vietime's persisted settings.
type Config struct {
	Enabled            bool   `toml:"enabled"`
	Method             string `toml:"method"` // "telex" or "vni"
	ModernTone         bool   `toml:"modern_tone"`
	EscRestore         bool   `toml:"esc_restore"`
	FreeTone           bool   `toml:"free_tone"`
	StrictValidation   bool   `toml:"strict_validation"`
	EnglishAutoRestore bool   `toml:"english_auto_restore"`
	AutoCapitalize     bool   `toml:"auto_capitalize"`

	Shortcuts []ShortcutDef `toml:"shortcut"`
}

// Default returns vietime's default configuration: Telex, modern tone
// placement, ESC-restore and English auto-restore on, free-tone,
// strict dictionary validation and auto-capitalize off, no shortcuts.
func Default() *Config {
	return &Config{
		Enabled:            true,
		Method:             MethodTelex,
		ModernTone:         true,
		EscRestore:         true,
		FreeTone:           false,
		StrictValidation:   false,
		EnglishAutoRestore: true,
		AutoCapitalize:     false,
	}
}

// ConfigPath returns the XDG-compliant config file path,
// $XDG_CONFIG_HOME/vietime/config.toml (or ~/.config/vietime/config.toml).
func ConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "vietime", "config.toml")
}

// Load reads the config file, seeding it with Default on first run.
func Load() (*Config, error) {
	path := ConfigPath()
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating its directory if needed.
func Save(cfg *Config) error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
