// Package config handles configuration loading and validation for kvdoc.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI   TUIConfig   `yaml:"tui"`
	Load  LoadConfig  `yaml:"load"`
	Save  SaveConfig  `yaml:"save"`
	Watch WatchConfig `yaml:"watch"`
}

// TUIConfig holds interface settings.
type TUIConfig struct {
	Theme string `yaml:"theme"` // built-in palette name
}

// LoadConfig controls how documents are read.
type LoadConfig struct {
	// Strict rejects documents whose values are not all strings.
	Strict bool `yaml:"strict"`
	// Patterns are doublestar globs, relative to the working directory, used
	// to suggest files in the open prompt.
	Patterns []string `yaml:"patterns"`
}

// SaveConfig controls how documents are written.
type SaveConfig struct {
	// DefaultName is proposed by the save prompt when the session has no file.
	DefaultName string `yaml:"default_name"`
}

// WatchConfig controls the external change watcher.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Load: LoadConfig{
			Patterns: []string{"*.json", "**/*.json"},
		},
		Save: SaveConfig{
			DefaultName: "data.json",
		},
		Watch: WatchConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if len(c.Load.Patterns) == 0 {
		c.Load.Patterns = defaults.Load.Patterns
	}
	if c.Save.DefaultName == "" {
		c.Save.DefaultName = defaults.Save.DefaultName
	}
}

// Palette returns the configured theme palette.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.TUI.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}
