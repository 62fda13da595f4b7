package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/dijkstra"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all crucible solver configuration.
type Config struct {
	// Path of the puzzle grid file; a positional CLI argument overrides it.
	Input string `yaml:"input"`

	// Per-search deadline as a Go duration ("30s"); empty or "0" disables it.
	Timeout string `yaml:"timeout"`

	// Optional cap on accumulated cost; omitted means no cap, and 0 admits
	// only zero-cost routes.
	MaxCost *int64 `yaml:"max_cost,omitempty"`

	// Movement variants solved on every run, reported in this order.
	Variants []VariantConfig `yaml:"variants"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// Int64 returns a pointer to v, for setting MaxCost.
func Int64(v int64) *int64 { return &v }

// VariantConfig names one pair of run-length bounds.
type VariantConfig struct {
	Name   string `yaml:"name"`
	MinRun int    `yaml:"min_run"`
	MaxRun int    `yaml:"max_run"`
}

// Bounds returns the variant's run lengths.
func (v VariantConfig) Bounds() dijkstra.RunBounds {
	return dijkstra.RunBounds{Min: v.MinRun, Max: v.MaxRun}
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// DefaultConfig returns the two published variants, no deadline, no cost cap.
func DefaultConfig() *Config {
	return &Config{
		Input: "input.txt",
		Variants: []VariantConfig{
			{Name: "crucible", MinRun: dijkstra.Crucible.Min, MaxRun: dijkstra.Crucible.Max},
			{Name: "ultra", MinRun: dijkstra.UltraCrucible.Min, MaxRun: dijkstra.UltraCrucible.Max},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file over DefaultConfig. A missing
// file yields the defaults. Environment overrides are applied last.
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

// Save writes configuration to a YAML file, creating parent directories.
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
	if v := os.Getenv("CRUCIBLE_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("CRUCIBLE_TIMEOUT"); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv("CRUCIBLE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// GetTimeout returns the per-search deadline; zero means none.
// Unparseable values also yield zero; Validate reports them.
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// LogLevel returns the configured zap level, defaulting to info.
func (c *Config) LogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalidConfig, c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: timeout %s is negative", ErrInvalidConfig, d)
		}
	}
	if c.MaxCost != nil && *c.MaxCost < 0 {
		return fmt.Errorf("%w: max_cost %d is negative", ErrInvalidConfig, *c.MaxCost)
	}
	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
		}
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants configured", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Variants))
	for i, v := range c.Variants {
		if v.Name == "" {
			return fmt.Errorf("%w: variant %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidConfig, v.Name)
		}
		seen[v.Name] = struct{}{}
		if err := v.Bounds().Validate(); err != nil {
			return fmt.Errorf("%w: variant %q: %w", ErrInvalidConfig, v.Name, err)
		}
	}

	return nil
}
