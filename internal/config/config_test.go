package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a YAML config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circleops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultScenarioMaxSteps, cfg.Scenario.MaxSteps)
	assert.False(t, cfg.IsJSON())
	require.NoError(t, cfg.Validate())
}

// TestLoad_File tests that values from a YAML file override defaults.
func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
output:
  format: json
scenario:
  max_steps: 25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.IsJSON())
	assert.Equal(t, 25, cfg.Scenario.MaxSteps)
	// Not set in the file, so the default survives.
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// TestLoad_EnvVarOverrides tests that environment variables override the file.
func TestLoad_EnvVarOverrides(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("CIRCLEOPS_LOG_LEVEL", "debug")
	t.Setenv("CIRCLEOPS_SCENARIO_MAX_STEPS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Scenario.MaxSteps)
}

// TestLoad_MissingFile tests that an explicitly named file must exist.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_MalformedFile tests that YAML parse errors are reported.
func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "output: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

// TestLoad_NormalizesCase tests that enum-like values are matched
// case-insensitively, as the logger does.
func TestLoad_NormalizesCase(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		format     string
		wantLevel  string
		wantFormat string
	}{
		{name: "upper case", level: "DEBUG", format: "JSON", wantLevel: "debug", wantFormat: "json"},
		{name: "mixed case with spaces", level: " Info ", format: "Text", wantLevel: "info", wantFormat: "text"},
		{name: "warning alias", level: "WARNING", format: "text", wantLevel: "warn", wantFormat: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CIRCLEOPS_LOG_LEVEL", tt.level)
			t.Setenv("CIRCLEOPS_OUTPUT_FORMAT", tt.format)

			cfg, err := Load("")
			require.NoError(t, err)

			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
			assert.Equal(t, tt.wantFormat, cfg.Output.Format)
			require.NoError(t, cfg.Validate())
		})
	}
}

// TestLoad_EmptyEnvVarIgnored tests that a set but empty variable leaves the
// lower-precedence value in place.
func TestLoad_EmptyEnvVarIgnored(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\n")
	t.Setenv("CIRCLEOPS_SCENARIO_MAX_STEPS", "")
	t.Setenv("CIRCLEOPS_LOG_LEVEL", "  ")
	t.Setenv("CIRCLEOPS_OUTPUT_FORMAT", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultScenarioMaxSteps, cfg.Scenario.MaxSteps)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	require.NoError(t, cfg.Validate())
}

// TestLoad_ZeroMaxStepsFromEnv tests that a zero step limit is reported
// against the field itself.
func TestLoad_ZeroMaxStepsFromEnv(t *testing.T) {
	t.Setenv("CIRCLEOPS_SCENARIO_MAX_STEPS", "0")

	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario.maxsteps is required")
	assert.NotContains(t, err.Error(), "scenario is required")
}

func TestEnvKeyValue(t *testing.T) {
	key, value := envKeyValue("CIRCLEOPS_LOG_LEVEL", "debug")
	assert.Equal(t, "log.level", key)
	assert.Equal(t, "debug", value)

	key, value = envKeyValue("CIRCLEOPS_SCENARIO_MAX_STEPS", "")
	assert.Empty(t, key)
	assert.Nil(t, value)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "output.format", envKey("CIRCLEOPS_OUTPUT_FORMAT"))
	assert.Equal(t, "scenario.max_steps", envKey("CIRCLEOPS_SCENARIO_MAX_STEPS"))
	assert.Equal(t, "log.level", envKey("CIRCLEOPS_LOG_LEVEL"))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Output:   OutputConfig{Format: "text"},
			Log:      LogConfig{Level: "warn"},
			Scenario: ScenarioConfig{MaxSteps: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "output.format must be one of: text json",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: "log.level must be one of",
		},
		{
			name:    "zero max steps",
			mutate:  func(c *Config) { c.Scenario.MaxSteps = 0 },
			wantErr: "scenario.maxsteps is required",
		},
		{
			name:    "too many max steps",
			mutate:  func(c *Config) { c.Scenario.MaxSteps = 100001 },
			wantErr: "scenario.maxsteps must be at most 100000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
