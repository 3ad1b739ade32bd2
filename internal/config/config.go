// Package config loads optional tool configuration from .artreview.yaml.
// Everything has a built-in default; the file and every field in it are
// optional. Configuration is read once at startup and treated as immutable
// afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when none is given.
const DefaultPath = ".artreview.yaml"

// Config holds all artreview configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
	Symbols SymbolsConfig `yaml:"symbols"`
	Watch   WatchConfig   `yaml:"watch"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RenderConfig controls report output.
type RenderConfig struct {
	Output string `yaml:"output"` // default output path; empty means stdout
}

// SymbolsConfig overrides entries in the built-in display tables. Keys not
// listed keep their defaults.
type SymbolsConfig struct {
	Status        map[string]string `yaml:"status"`
	RegionFlags   map[string]string `yaml:"region_flags"`
	RegionAliases map[string]string `yaml:"region_aliases"`
}

// WatchConfig controls the file watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // duration string, e.g. "300ms"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Watch:   WatchConfig{Debounce: "300ms"},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if _, err := cfg.DebounceDuration(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DebounceDuration parses the watch debounce setting.
func (c *Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.debounce %q: %w", c.Watch.Debounce, err)
	}
	return d, nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ARTREVIEW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ARTREVIEW_OUTPUT"); v != "" {
		c.Render.Output = v
	}
	if v := os.Getenv("ARTREVIEW_WATCH_DEBOUNCE"); v != "" {
		c.Watch.Debounce = v
	}
}
