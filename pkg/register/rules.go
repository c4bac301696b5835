package register

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
)

// Severity represents the severity level of a validation issue.
type Severity int

const (
	// SeverityError marks a record that breaks a coding rule.
	SeverityError Severity = iota
	// SeverityWarning marks a record that is accepted but should be fixed.
	SeverityWarning
	// SeverityInfo is an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ParseSeverity resolves "error", "warning" or "info".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return 0, fmt.Errorf("%w: severity %q", check.ErrUnknownText, s)
	}
}

// Rule is a check applied to a register.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "STN-001").
	ID() string
	// Name returns a human-readable name for the rule.
	Name() string
	// Category returns the rule category (e.g., "station", "reference").
	Category() string
	// DefaultSeverity returns the default severity level.
	DefaultSeverity() Severity
	// Check applies the rule and returns any violations.
	Check(reg *Register) []Violation
}

// Violation is a single rule failure.
type Violation struct {
	RuleID   string
	Severity Severity
	// Kind names the error kind (e.g., "InvalidFormat"), empty if none applies.
	Kind    string
	Message string
	// Record names the offending record (e.g., "station 1S01").
	Record string
	// Line is the source line of the record, 0 if unknown.
	Line       int
	Suggestion string
}

// ViolationFor builds a violation from a codec error.
func ViolationFor(rule Rule, record string, line int, err error) Violation {
	return Violation{
		RuleID:   rule.ID(),
		Severity: rule.DefaultSeverity(),
		Kind:     check.Kind(err),
		Message:  err.Error(),
		Record:   record,
		Line:     line,
	}
}

// String returns a formatted string representation of the violation.
func (v Violation) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s: ", v.RuleID, v.Severity))
	if v.Record != "" {
		sb.WriteString(v.Record + ": ")
	}
	sb.WriteString(v.Message)
	if v.Line > 0 {
		sb.WriteString(fmt.Sprintf(" [line %d]", v.Line))
	}
	if v.Suggestion != "" {
		sb.WriteString(fmt.Sprintf(" -> %s", v.Suggestion))
	}
	return sb.String()
}

// HasErrors returns true if any violation has severity Error.
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FilterBySeverity returns violations at or above the given severity level.
func FilterBySeverity(violations []Violation, minSeverity Severity) []Violation {
	var filtered []Violation
	for _, v := range violations {
		if v.Severity <= minSeverity {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// BaseRule provides a default implementation of common Rule methods.
type BaseRule struct {
	id              string
	name            string
	category        string
	defaultSeverity Severity
}

func (r *BaseRule) ID() string                { return r.id }
func (r *BaseRule) Name() string              { return r.name }
func (r *BaseRule) Category() string          { return r.category }
func (r *BaseRule) DefaultSeverity() Severity { return r.defaultSeverity }

// NewBaseRule creates a new BaseRule with the given properties.
func NewBaseRule(id, name, category string, severity Severity) *BaseRule {
	return &BaseRule{
		id:              id,
		name:            name,
		category:        category,
		defaultSeverity: severity,
	}
}
