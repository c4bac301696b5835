package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/hkmshb/elco/internal/config"
	"github.com/hkmshb/elco/pkg/logging"
	"github.com/hkmshb/elco/pkg/register"
	"github.com/hkmshb/elco/pkg/register/rules"
	"github.com/hkmshb/elco/pkg/report"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// ServiceName tags operational log entries.
const ServiceName = "elco-codes"

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	ConfigFile  string
	Strict      bool
	FailFast    bool
	Format      string
	Output      string
	Disable     string
	MinSeverity string
	Files       []string

	// set records which flags were given explicitly.
	set map[string]bool
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		if err == flag.ErrHelp {
			printValidateUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	cfg, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, ServiceName, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer logger.Sync() //nolint:errcheck

	vopts, _ := cfg.ValidateOptions()
	format, _ := report.ParseFormat(cfg.Output.Format)

	rep := ValidateFiles(opts.Files, register.NewValidator(rules.NewDefaultRegistry()), vopts, logger)

	out := stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		defer f.Close()
		out = f
	}
	if err := rep.Encode(out, format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	errs, warns := rep.Counts()
	logger.Info("validation finished",
		zap.String("run_id", rep.ID),
		zap.Int("files", len(rep.Files)),
		zap.Int("errors", errs),
		zap.Int("warnings", warns))

	if !rep.Valid() {
		return exitValidation
	}
	return exitSuccess
}

// ValidateFiles parses and validates each register file into one report.
// Files that fail to parse are reported, not skipped.
func ValidateFiles(files []string, v *register.Validator, opts register.Options, logger *zap.Logger) *report.Report {
	rep := report.New()
	for _, file := range files {
		reg, err := register.ParseFile(file)
		if err != nil {
			logger.Warn("failed to parse register", zap.String("file", file), zap.Error(err))
			rep.AddParseError(file, err)
			continue
		}

		result := v.Validate(reg, opts)
		logger.Debug("validated register",
			zap.String("file", file),
			zap.Int("records", reg.Count()),
			zap.Int("errors", len(result.Errors)),
			zap.Int("warnings", len(result.Warnings)),
			zap.Bool("stopped", result.Stopped))
		rep.Add(file, reg, result)
	}
	return rep
}

// LoadConfig loads settings from path, falling back to $ELCO_CONFIG.
func LoadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	return config.Load(path)
}

func (o ValidateOptions) apply(cfg *config.Config) {
	if o.set["strict"] {
		cfg.Validation.Strict = o.Strict
	}
	if o.set["fail-fast"] {
		cfg.Validation.FailFast = o.FailFast
	}
	if o.set["format"] {
		cfg.Output.Format = o.Format
	}
	if o.set["min-severity"] {
		cfg.Validation.MinSeverity = o.MinSeverity
	}
	if o.set["disable"] {
		cfg.Validation.DisabledRules = append(cfg.Validation.DisabledRules, splitList(o.Disable)...)
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ValidateOptions{}

	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	fs.BoolVar(&opts.Strict, "strict", false, "Report warnings as errors")
	fs.BoolVar(&opts.FailFast, "fail-fast", false, "Stop at the first failing rule")
	fs.StringVar(&opts.Format, "format", "text", "Output format: text, json, yaml, cbor")
	fs.StringVar(&opts.Output, "o", "", "Write the report to a file")
	fs.StringVar(&opts.Disable, "disable", "", "Comma separated rule IDs to skip")
	fs.StringVar(&opts.MinSeverity, "min-severity", "warning", "Lowest severity to report: error, warning, info")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: elco-codes validate [options] <files...>

Options:
  --config FILE        Configuration file (default $ELCO_CONFIG)
  --strict             Report warnings as errors
  --fail-fast          Stop at the first failing rule
  --format FORMAT      Output format: text, json, yaml, cbor
  -o FILE              Write the report to FILE
  --disable IDS        Comma separated rule IDs to skip
  --min-severity SEV   Lowest severity to report: error, warning, info

Examples:
  elco-codes validate register.yaml
  elco-codes validate --strict --format json registers/*.yaml`)
}
