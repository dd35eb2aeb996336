// Package config holds the oddmass configuration: batch defaults, RNG
// seeding, and UI settings. Configuration is a YAML file with a small
// set of environment overrides layered on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all oddmass configuration.
type Config struct {
	// Attempts is the default number of auto-solve runs in batch mode.
	Attempts int `yaml:"attempts"`

	// ShowSteps prints each weighing during auto-solve runs.
	ShowSteps bool `yaml:"show_steps"`

	// Seed for odd-mass placement. Zero means seed from OS entropy.
	Seed int64 `yaml:"seed"`

	// Theme selects the UI color scheme: auto, light, or dark.
	Theme string `yaml:"theme"`

	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Attempts: 1,
		Theme:    "auto",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".oddmass", "config.yaml")
	}
	return filepath.Join(home, ".oddmass", "config.yaml")
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if raw := os.Getenv("ODDMASS_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if theme := os.Getenv("ODDMASS_THEME"); theme != "" {
		c.Theme = theme
	}
}

// ValidThemes lists the supported UI themes.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Attempts < 1 {
		return fmt.Errorf("attempts must be at least 1, got %d", c.Attempts)
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}

	return nil
}
