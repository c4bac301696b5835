package rules

import (
	"fmt"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/register"
)

// RegisterReferenceRules registers all cross-record reference rules.
func RegisterReferenceRules(registry *register.RuleRegistry) {
	registry.Register(NewREF001())
	registry.Register(NewREF002())
	registry.Register(NewREF003())
	registry.Register(NewREF004())
}

func missing(what, code string) register.Violation {
	return register.Violation{
		Kind:    check.Kind(check.ErrRequiredFieldMissing),
		Message: fmt.Sprintf("%s %q is not in the register", what, code),
	}
}

// REF001 checks that a station's source feeder exists and is a feeder.
type REF001 struct {
	*register.BaseRule
}

func NewREF001() *REF001 {
	return &REF001{
		BaseRule: register.NewBaseRule("REF-001", "Source feeder exists", "reference", register.SeverityError),
	}
}

func (r *REF001) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, s := range reg.Stations {
		if s.SourceFeeder == "" {
			continue
		}
		p, ok := reg.PowerLine(s.SourceFeeder)
		switch {
		case !ok:
			v := missing("source feeder", s.SourceFeeder)
			v.Record, v.Line = s.Subject(), s.Line
			violations = append(violations, v)
		case p.Type != powerline.Feeder:
			violations = append(violations, register.Violation{
				Kind:    check.Kind(check.ErrSourceFeederNotSupported),
				Message: fmt.Sprintf("source feeder %s is a %s", p.Code, p.Type),
				Record:  s.Subject(),
				Line:    s.Line,
			})
		}
	}
	return violations
}

// REF002 checks that a power line's source station exists.
type REF002 struct {
	*register.BaseRule
}

func NewREF002() *REF002 {
	return &REF002{
		BaseRule: register.NewBaseRule("REF-002", "Source station exists", "reference", register.SeverityError),
	}
}

func (r *REF002) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, p := range reg.PowerLines {
		if p.SourceStation == "" {
			continue // PLN-005
		}
		if _, ok := reg.Station(p.SourceStation); !ok {
			v := missing("source station", p.SourceStation)
			v.Record, v.Line = p.Subject(), p.Line
			violations = append(violations, v)
		}
	}
	return violations
}

// REF003 checks that a transformer's station exists.
type REF003 struct {
	*register.BaseRule
}

func NewREF003() *REF003 {
	return &REF003{
		BaseRule: register.NewBaseRule("REF-003", "Transformer station exists", "reference", register.SeverityError),
	}
}

func (r *REF003) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, t := range reg.Transformers {
		if t.Station == "" {
			violations = append(violations, register.ViolationFor(r, t.Subject(), t.Line,
				fmt.Errorf("%w: transformer station", check.ErrRequiredFieldMissing)))
			continue
		}
		if _, ok := reg.Station(t.Station); !ok {
			v := missing("station", t.Station)
			v.Record, v.Line = t.Subject(), t.Line
			violations = append(violations, v)
		}
	}
	return violations
}

// REF004 checks that a transformer's rating exists.
type REF004 struct {
	*register.BaseRule
}

func NewREF004() *REF004 {
	return &REF004{
		BaseRule: register.NewBaseRule("REF-004", "Transformer rating exists", "reference", register.SeverityError),
	}
}

func (r *REF004) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, t := range reg.Transformers {
		if t.Rating == "" {
			violations = append(violations, register.ViolationFor(r, t.Subject(), t.Line,
				fmt.Errorf("%w: transformer rating", check.ErrRequiredFieldMissing)))
			continue
		}
		if _, ok := reg.Rating(t.Rating); !ok {
			v := missing("rating", t.Rating)
			v.Record, v.Line = t.Subject(), t.Line
			violations = append(violations, v)
		}
	}
	return violations
}
