// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/josh-spratt/gocal/internal/calendar"
	"github.com/josh-spratt/gocal/internal/render"
)

// Config represents the application configuration.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	UI       UIConfig       `yaml:"ui"`
}

// CalendarConfig holds grid layout settings.
type CalendarConfig struct {
	// FirstWeekday selects the first grid column: 0=Sunday .. 6=Saturday
	FirstWeekday int `yaml:"first_weekday"`
}

// UIConfig holds display settings.
type UIConfig struct {
	// ColumnWidth is the character width reserved per day column (min 2)
	ColumnWidth int `yaml:"column_width"`

	// AbbreviatedHeader selects two-letter weekday labels over full names
	AbbreviatedHeader bool `yaml:"abbreviated_header"`

	// Color enables ANSI styling of the output
	Color bool `yaml:"color"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			FirstWeekday: 0,
		},
		UI: UIConfig{
			ColumnWidth:       3,
			AbbreviatedHeader: true,
			Color:             true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "gocal")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first out-of-range setting, using the same error
// types the builder and renderer raise, so a bad config fails before any
// output is printed.
func (c *Config) Validate() error {
	if wd := c.Calendar.FirstWeekday; wd < 0 || wd >= calendar.DaysPerWeek {
		return &calendar.InvalidWeekdayError{Weekday: wd}
	}
	if c.UI.ColumnWidth < 2 {
		return &render.InvalidColumnWidthError{Width: c.UI.ColumnWidth}
	}
	return nil
}
