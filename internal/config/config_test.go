package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkmshb/elco/pkg/register"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ValidateOptions()
	require.NoError(t, err)
	assert.Equal(t, register.SeverityWarning, opts.MinSeverity)
	assert.False(t, opts.Strict)
	assert.False(t, opts.FailFast)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
log:
  level: debug
  format: json
output:
  format: yaml
validation:
  strict: true
  fail_fast: true
  min_severity: info
  disabled_rules: [TXR-003]
  categories: [station, rating]
  severity:
    TXR-004: error
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)

	opts, err := cfg.ValidateOptions()
	require.NoError(t, err)
	assert.True(t, opts.Strict)
	assert.True(t, opts.FailFast)
	assert.Equal(t, register.SeverityInfo, opts.MinSeverity)
	assert.Equal(t, []string{"TXR-003"}, opts.DisabledRules)
	assert.Equal(t, []string{"station", "rating"}, opts.Categories)
	assert.Equal(t, map[string]register.Severity{"TXR-004": register.SeverityError}, opts.SeverityOverrides)
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("output:\n  format: json\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)

	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown field":     "log:\n  colour: red\n",
		"bad level":         "log:\n  level: loud\n",
		"bad log format":    "log:\n  format: xml\n",
		"bad output format": "output:\n  format: pdf\n",
		"bad severity":      "validation:\n  severity:\n    STN-001: fatal\n",
		"bad min severity":  "validation:\n  min_severity: all\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{
		EnvLogLevel:      "error",
		EnvLogFormat:     "json",
		EnvOutputFormat:  "cbor",
		EnvStrict:        "true",
		EnvFailFast:      "1",
		EnvDisabledRules: "UNQ-004, TXR-003,,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "cbor", cfg.Output.Format)
	assert.True(t, cfg.Validation.Strict)
	assert.True(t, cfg.Validation.FailFast)
	assert.Equal(t, []string{"UNQ-004", "TXR-003"}, cfg.Validation.DisabledRules)
	require.NoError(t, cfg.Validate())

	err = cfg.ApplyEnv(env(map[string]string{EnvStrict: "maybe"}))
	assert.ErrorContains(t, err, EnvStrict)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validation:\n  fail_fast: true\n"), 0o644))

	t.Setenv(EnvOutputFormat, "json")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Validation.FailFast)
	assert.Equal(t, "json", cfg.Output.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(EnvLogLevel, "shouty")
	_, err = Load("")
	assert.Error(t, err)
}
