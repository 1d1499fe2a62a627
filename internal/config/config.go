// Package config loads circleops CLI settings using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultOutputFormat is the output format used when none is configured.
	DefaultOutputFormat = "text"

	// DefaultLogLevel keeps the CLI quiet unless --verbose is given.
	DefaultLogLevel = "warn"

	// DefaultScenarioMaxSteps caps the number of steps a scenario may declare.
	DefaultScenarioMaxSteps = 1000

	// EnvPrefix is the prefix of environment variables read by Load.
	EnvPrefix = "CIRCLEOPS_"
)

// Config is the root configuration structure.
type Config struct {
	Output   OutputConfig   `koanf:"output"`
	Log      LogConfig      `koanf:"log"`
	Scenario ScenarioConfig `koanf:"scenario"`
}

// OutputConfig controls how command results are written to stdout.
type OutputConfig struct {
	Format string `koanf:"format" validate:"required,oneof=text json"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// ScenarioConfig contains limits applied when loading scenario files.
type ScenarioConfig struct {
	MaxSteps int `koanf:"max_steps" validate:"required,min=1,max=100000"`
}

// IsJSON reports whether results should be written as JSON.
func (c *Config) IsJSON() bool {
	return c.Output.Format == "json"
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"output.format":      DefaultOutputFormat,
		"log.level":          DefaultLogLevel,
		"scenario.max_steps": DefaultScenarioMaxSteps,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (CIRCLEOPS_ prefix)
//  2. The YAML file at path, if path is non-empty
//  3. Default values
//
// Command-line flags are applied on top by the caller.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load the config file. An explicitly named file must exist.
	if path != "" {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %q: %w", path, statErr)
		}

		err = k.Load(file.Provider(path), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	// 3. Load environment variables, e.g. CIRCLEOPS_OUTPUT_FORMAT -> output.format.
	// Only the first underscore after the section name separates levels so
	// that keys like scenario.max_steps stay addressable. Empty variables are
	// skipped so they do not clear a default.
	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.normalize()

	return &cfg, nil
}

// normalize lowercases enum-like values so that DEBUG or JSON are accepted
// the same way the logger accepts them.
func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level == "warning" {
		level = "warn"
	}
	c.Log.Level = level
}

// envKeyValue is the env provider callback. It returns an empty key for
// unset-looking values, which tells koanf to skip the variable.
func envKeyValue(key, value string) (string, any) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return envKey(key), value
}

// envKey maps CIRCLEOPS_SCENARIO_MAX_STEPS to scenario.max_steps.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
