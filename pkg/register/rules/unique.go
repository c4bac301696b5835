package rules

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/register"
)

// RegisterUniqueRules registers all uniqueness rules with the given registry.
func RegisterUniqueRules(registry *register.RuleRegistry) {
	registry.Register(NewUNQ001())
	registry.Register(NewUNQ002())
	registry.Register(NewUNQ003())
	registry.Register(NewUNQ004())
}

type keyed struct {
	key     string
	subject string
	line    int
}

// duplicates reports every record whose key was already seen, pointing back
// at the first occurrence. Empty keys are skipped.
func duplicates(items []keyed) []register.Violation {
	first := make(map[string]keyed)
	var violations []register.Violation
	for _, it := range items {
		if it.key == "" {
			continue
		}
		prev, seen := first[it.key]
		if !seen {
			first[it.key] = it
			continue
		}
		msg := fmt.Sprintf("duplicate of %s", prev.subject)
		if prev.line > 0 {
			msg = fmt.Sprintf("duplicate of %s at line %d", prev.subject, prev.line)
		}
		violations = append(violations, register.Violation{
			Message: msg,
			Record:  it.subject,
			Line:    it.line,
		})
	}
	return violations
}

// UNQ001 checks that station codes are unique.
type UNQ001 struct {
	*register.BaseRule
}

func NewUNQ001() *UNQ001 {
	return &UNQ001{
		BaseRule: register.NewBaseRule("UNQ-001", "Unique station codes", "unique", register.SeverityError),
	}
}

func (r *UNQ001) Check(reg *register.Register) []register.Violation {
	items := make([]keyed, len(reg.Stations))
	for i, s := range reg.Stations {
		items[i] = keyed{strings.ToUpper(s.Code), s.Subject(), s.Line}
	}
	return duplicates(items)
}

// UNQ002 checks that power line codes are unique.
type UNQ002 struct {
	*register.BaseRule
}

func NewUNQ002() *UNQ002 {
	return &UNQ002{
		BaseRule: register.NewBaseRule("UNQ-002", "Unique power line codes", "unique", register.SeverityError),
	}
}

func (r *UNQ002) Check(reg *register.Register) []register.Violation {
	items := make([]keyed, len(reg.PowerLines))
	for i, p := range reg.PowerLines {
		items[i] = keyed{strings.ToUpper(p.Code), p.Subject(), p.Line}
	}
	return duplicates(items)
}

// UNQ003 checks that rating codes are unique. Codes differing only in the
// multiplier case are distinct.
type UNQ003 struct {
	*register.BaseRule
}

func NewUNQ003() *UNQ003 {
	return &UNQ003{
		BaseRule: register.NewBaseRule("UNQ-003", "Unique rating codes", "unique", register.SeverityError),
	}
}

func (r *UNQ003) Check(reg *register.Register) []register.Violation {
	items := make([]keyed, len(reg.Ratings))
	for i, rt := range reg.Ratings {
		items[i] = keyed{rt.Code, rt.Subject(), rt.Line}
	}
	return duplicates(items)
}

// UNQ004 checks that transformer serial numbers are unique.
type UNQ004 struct {
	*register.BaseRule
}

func NewUNQ004() *UNQ004 {
	return &UNQ004{
		BaseRule: register.NewBaseRule("UNQ-004", "Unique transformer serial numbers", "unique", register.SeverityError),
	}
}

func (r *UNQ004) Check(reg *register.Register) []register.Violation {
	items := make([]keyed, len(reg.Transformers))
	for i, t := range reg.Transformers {
		items[i] = keyed{t.SerialNo, t.Subject(), t.Line}
	}
	return duplicates(items)
}
