// Package report collects register validation results and writes them out
// as text, JSON, YAML or CBOR.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hkmshb/elco/pkg/register"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected text, json, yaml or cbor)", s)
}

// Binary reports whether the format is not human readable.
func (f Format) Binary() bool {
	return f == FormatCBOR
}

// ParseRuleID marks issues raised while reading a register file.
const ParseRuleID = "PARSE"

// Issue is a single reported finding.
type Issue struct {
	Rule       string `json:"rule" yaml:"rule" cbor:"1,keyasint"`
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty" cbor:"2,keyasint,omitempty"`
	Message    string `json:"message" yaml:"message" cbor:"3,keyasint"`
	Record     string `json:"record,omitempty" yaml:"record,omitempty" cbor:"4,keyasint,omitempty"`
	Line       int    `json:"line,omitempty" yaml:"line,omitempty" cbor:"5,keyasint,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty" cbor:"6,keyasint,omitempty"`
}

// FileReport is the outcome for one register file.
type FileReport struct {
	File     string  `json:"file" yaml:"file" cbor:"1,keyasint"`
	Valid    bool    `json:"valid" yaml:"valid" cbor:"2,keyasint"`
	Records  int     `json:"records" yaml:"records" cbor:"3,keyasint"`
	Stopped  bool    `json:"stopped,omitempty" yaml:"stopped,omitempty" cbor:"4,keyasint,omitempty"`
	Errors   []Issue `json:"errors,omitempty" yaml:"errors,omitempty" cbor:"5,keyasint,omitempty"`
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty" cbor:"6,keyasint,omitempty"`
}

// Report is the outcome of one validation run.
type Report struct {
	ID          string       `json:"id" yaml:"id" cbor:"1,keyasint"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at" cbor:"2,keyasint"`
	Files       []FileReport `json:"files" yaml:"files" cbor:"3,keyasint"`
}

// New creates an empty report with a fresh run ID.
func New() *Report {
	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}
}

// Add records the validation result for a file.
func (r *Report) Add(file string, reg *register.Register, result *register.Result) {
	fr := FileReport{
		File:    file,
		Valid:   result.Valid,
		Records: reg.Count(),
		Stopped: result.Stopped,
	}
	for _, e := range result.Errors {
		fr.Errors = append(fr.Errors, issueFrom(e))
	}
	for _, w := range result.Warnings {
		fr.Warnings = append(fr.Warnings, issueFrom(w))
	}
	r.Files = append(r.Files, fr)
}

// AddParseError records a file that could not be read.
func (r *Report) AddParseError(file string, err error) {
	r.Files = append(r.Files, FileReport{
		File:   file,
		Valid:  false,
		Errors: []Issue{{Rule: ParseRuleID, Message: err.Error()}},
	})
}

// Valid reports whether every file passed.
func (r *Report) Valid() bool {
	for _, f := range r.Files {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Counts returns the total number of errors and warnings.
func (r *Report) Counts() (errors, warnings int) {
	for _, f := range r.Files {
		errors += len(f.Errors)
		warnings += len(f.Warnings)
	}
	return errors, warnings
}

func issueFrom(i register.Issue) Issue {
	return Issue{
		Rule:       i.RuleID,
		Kind:       i.Kind,
		Message:    i.Message,
		Record:     i.Record,
		Line:       i.Line,
		Suggestion: i.Suggestion,
	}
}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return r.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		return NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func (r *Report) writeText(w io.Writer) error {
	var sb strings.Builder
	for _, f := range r.Files {
		switch {
		case f.Valid && len(f.Warnings) == 0:
			fmt.Fprintf(&sb, "%s: OK (%d records)\n", f.File, f.Records)
		case f.Valid:
			fmt.Fprintf(&sb, "%s: OK (with %d warnings)\n", f.File, len(f.Warnings))
		default:
			fmt.Fprintf(&sb, "%s: FAILED (%d errors, %d warnings)\n", f.File, len(f.Errors), len(f.Warnings))
		}
		for _, e := range f.Errors {
			writeIssue(&sb, "ERROR", e)
		}
		for _, warn := range f.Warnings {
			writeIssue(&sb, "WARNING", warn)
		}
		if f.Stopped {
			sb.WriteString("  (stopped at first failing rule)\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeIssue(sb *strings.Builder, label string, i Issue) {
	sb.WriteString("  " + label)
	if i.Line > 0 {
		fmt.Fprintf(sb, " [line %d]", i.Line)
	}
	fmt.Fprintf(sb, " %s: ", i.Rule)
	if i.Record != "" {
		sb.WriteString(i.Record + ": ")
	}
	sb.WriteString(i.Message)
	if i.Suggestion != "" {
		fmt.Fprintf(sb, " -> %s", i.Suggestion)
	}
	sb.WriteString("\n")
}
