package register

import (
	"fmt"
	"slices"
)

// Issue is a validation finding in a Result.
type Issue struct {
	RuleID     string
	Kind       string
	Message    string
	Record     string
	Line       int
	Suggestion string
}

func (i Issue) String() string {
	prefix := i.RuleID
	if i.Record != "" {
		prefix += ": " + i.Record
	}
	if i.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", i.Line, prefix, i.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, i.Message)
}

// Result contains the results of register validation.
type Result struct {
	// Valid is true if no error-level issue was found.
	Valid    bool
	Errors   []Issue
	Warnings []Issue
	// Stopped is true when fail-fast mode cut validation short.
	Stopped bool
}

func (r *Result) add(v Violation) {
	issue := Issue{
		RuleID:     v.RuleID,
		Kind:       v.Kind,
		Message:    v.Message,
		Record:     v.Record,
		Line:       v.Line,
		Suggestion: v.Suggestion,
	}
	if v.Severity == SeverityError {
		r.Errors = append(r.Errors, issue)
		r.Valid = false
		return
	}
	r.Warnings = append(r.Warnings, issue)
}

// Options configures a validation run. The registry itself is not modified.
type Options struct {
	// MinSeverity drops violations below this severity. The zero value keeps
	// errors only.
	MinSeverity Severity
	// DisabledRules lists rule IDs to skip.
	DisabledRules []string
	// SeverityOverrides replaces the registry severity per rule ID.
	SeverityOverrides map[string]Severity
	// Categories limits the run to rules in these categories. Empty runs all.
	Categories []string
	// FailFast stops at the first rule reporting an error.
	FailFast bool
	// Strict reports warnings as errors.
	Strict bool
}

// Validator runs a rule registry over registers.
type Validator struct {
	registry *RuleRegistry
}

// NewValidator creates a validator over the given registry.
func NewValidator(registry *RuleRegistry) *Validator {
	return &Validator{registry: registry}
}

// Validate runs the enabled rules with the given options.
func (v *Validator) Validate(reg *Register, opts Options) *Result {
	result := &Result{Valid: true}

	for _, rule := range v.registry.EnabledRules() {
		id := rule.ID()
		if slices.Contains(opts.DisabledRules, id) {
			continue
		}
		if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, rule.Category()) {
			continue
		}

		sev := v.registry.Severity(id)
		if override, ok := opts.SeverityOverrides[id]; ok {
			sev = override
		}
		if opts.Strict && sev == SeverityWarning {
			sev = SeverityError
		}
		if sev > opts.MinSeverity {
			continue
		}

		found := rule.Check(reg)
		for _, violation := range found {
			violation.RuleID = id
			violation.Severity = sev
			result.add(violation)
		}

		if opts.FailFast && len(found) > 0 && sev == SeverityError {
			result.Stopped = true
			break
		}
	}

	return result
}

// ValidateWithRegistry validates errors and warnings using all enabled rules.
func ValidateWithRegistry(reg *Register, registry *RuleRegistry) *Result {
	return NewValidator(registry).Validate(reg, Options{MinSeverity: SeverityWarning})
}
