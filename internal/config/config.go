// Package config loads elco-codes settings from an optional YAML file and
// ELCO_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hkmshb/elco/pkg/logging"
	"github.com/hkmshb/elco/pkg/register"
	"github.com/hkmshb/elco/pkg/report"
)

// EnvConfigFile names the config file when --config is not given.
const EnvConfigFile = "ELCO_CONFIG"

// Environment overrides.
const (
	EnvLogLevel      = "ELCO_LOG_LEVEL"
	EnvLogFormat     = "ELCO_LOG_FORMAT"
	EnvOutputFormat  = "ELCO_OUTPUT_FORMAT"
	EnvStrict        = "ELCO_STRICT"
	EnvFailFast      = "ELCO_FAIL_FAST"
	EnvDisabledRules = "ELCO_DISABLED_RULES"
)

// Config holds the tool settings.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
}

// LogConfig selects the operational log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// ValidationConfig tunes the register validator.
type ValidationConfig struct {
	Strict        bool              `yaml:"strict"`
	FailFast      bool              `yaml:"fail_fast"`
	MinSeverity   string            `yaml:"min_severity"`
	DisabledRules []string          `yaml:"disabled_rules"`
	Categories    []string          `yaml:"categories"`
	Severity      map[string]string `yaml:"severity"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		Output: OutputConfig{
			Format: string(report.FormatText),
		},
		Validation: ValidationConfig{
			MinSeverity: "warning",
		},
	}
}

// Load reads settings from path over the defaults, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads settings from YAML over the defaults without consulting the
// environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from the environment using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok {
		c.Output.Format = v
	}
	if v, ok := lookup(EnvStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}
		c.Validation.Strict = b
	}
	if v, ok := lookup(EnvFailFast); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFailFast, err)
		}
		c.Validation.FailFast = b
	}
	if v, ok := lookup(EnvDisabledRules); ok {
		c.Validation.DisabledRules = splitList(v)
	}
	return nil
}

// Validate checks that every setting names a known value.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	_, err := c.ValidateOptions()
	return err
}

// ValidateOptions converts the validation settings to validator options.
func (c Config) ValidateOptions() (register.Options, error) {
	v := c.Validation
	opts := register.Options{
		Strict:        v.Strict,
		FailFast:      v.FailFast,
		DisabledRules: v.DisabledRules,
		Categories:    v.Categories,
		MinSeverity:   register.SeverityWarning,
	}
	if v.MinSeverity != "" {
		sev, err := register.ParseSeverity(v.MinSeverity)
		if err != nil {
			return register.Options{}, fmt.Errorf("min_severity: %w", err)
		}
		opts.MinSeverity = sev
	}
	if len(v.Severity) > 0 {
		opts.SeverityOverrides = make(map[string]register.Severity, len(v.Severity))
		for id, text := range v.Severity {
			sev, err := register.ParseSeverity(text)
			if err != nil {
				return register.Options{}, fmt.Errorf("severity for %s: %w", id, err)
			}
			opts.SeverityOverrides[id] = sev
		}
	}
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
