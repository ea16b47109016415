// Package config loads tool configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Format FormatConfig `yaml:"format"`
	Check  CheckConfig  `yaml:"check"`
	Daemon DaemonConfig `yaml:"daemon"`
}

// FormatConfig controls the reformatting commands.
type FormatConfig struct {
	// Full enables the composed pipeline (reformat + TOC + footnotes)
	// wherever a plain reformat would otherwise run.
	Full bool `yaml:"full"`
	// Extensions lists the file suffixes treated as txxt documents.
	Extensions []string `yaml:"extensions,omitempty"`
}

// CheckConfig controls reference checking.
type CheckConfig struct {
	// MaxConcurrent bounds parallel filesystem lookups per document.
	MaxConcurrent int `yaml:"max_concurrent"`
}

// DaemonConfig controls watch mode.
type DaemonConfig struct {
	Listen        string `yaml:"listen"`
	Debounce      string `yaml:"debounce"`
	SweepInterval string `yaml:"sweep_interval"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			Extensions: []string{".txt", ".txxt"},
		},
		Check: CheckConfig{
			MaxConcurrent: 8,
		},
		Daemon: DaemonConfig{
			Listen:        "127.0.0.1:9180",
			Debounce:      "500ms",
			SweepInterval: "10m",
		},
	}
}

// Load loads configuration from the specified file, falling back to
// defaults when the file does not exist. A `.env` file, if present, is
// loaded first; TXXT_* process environment variables win over both.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TXXT_LISTEN"); v != "" {
		cfg.Daemon.Listen = v
	}
	if v := os.Getenv("TXXT_DEBOUNCE"); v != "" {
		cfg.Daemon.Debounce = v
	}
	if v := os.Getenv("TXXT_SWEEP_INTERVAL"); v != "" {
		cfg.Daemon.SweepInterval = v
	}
	if v := os.Getenv("TXXT_CHECK_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Check.MaxConcurrent = n
		}
	}
}

// Validate rejects values the daemon cannot start with.
func (c *Config) Validate() error {
	if c.Check.MaxConcurrent < 1 {
		return fmt.Errorf("check.max_concurrent must be at least 1, got %d", c.Check.MaxConcurrent)
	}
	if _, err := time.ParseDuration(c.Daemon.Debounce); err != nil {
		return fmt.Errorf("daemon.debounce is not a duration: %w", err)
	}
	if _, err := time.ParseDuration(c.Daemon.SweepInterval); err != nil {
		return fmt.Errorf("daemon.sweep_interval is not a duration: %w", err)
	}
	if len(c.Format.Extensions) == 0 {
		return fmt.Errorf("format.extensions must not be empty")
	}
	return nil
}

// DebounceDuration returns the parsed debounce interval.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Daemon.Debounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// SweepDuration returns the parsed reference-sweep interval.
func (c *Config) SweepDuration() time.Duration {
	d, err := time.ParseDuration(c.Daemon.SweepInterval)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}
