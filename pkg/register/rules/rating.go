package rules

import (
	"fmt"
	"slices"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/rating"
	"github.com/hkmshb/elco/pkg/register"
)

// RegisterRatingRules registers all transformer rating rules with the given registry.
func RegisterRatingRules(registry *register.RuleRegistry) {
	registry.Register(NewTXR001())
	registry.Register(NewTXR002())
	registry.Register(NewTXR003())
	registry.Register(NewTXR004())
}

// TXR001 checks the structure of rating codes.
type TXR001 struct {
	*register.BaseRule
}

func NewTXR001() *TXR001 {
	return &TXR001{
		BaseRule: register.NewBaseRule("TXR-001", "Rating code format", "rating", register.SeverityError),
	}
}

func (r *TXR001) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, rt := range reg.Ratings {
		if rt.Code == "" {
			violations = append(violations, register.ViolationFor(r, rt.Subject(), rt.Line,
				fmt.Errorf("%w: rating code", check.ErrRequiredFieldMissing)))
			continue
		}
		if err := rating.ValidateFormat(rt.Code); err != nil {
			violations = append(violations, register.ViolationFor(r, rt.Subject(), rt.Line, err))
		}
	}
	return violations
}

// TXR002 checks that a well-formed rating code decodes to the record's
// capacity and voltage ratio.
type TXR002 struct {
	*register.BaseRule
}

func NewTXR002() *TXR002 {
	return &TXR002{
		BaseRule: register.NewBaseRule("TXR-002", "Code matches capacity and ratio", "rating", register.SeverityError),
	}
}

func (r *TXR002) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, rt := range reg.Ratings {
		if rating.ValidateFormat(rt.Code) != nil {
			continue
		}
		rec := rating.Record{Code: rt.Code, Capacity: rt.Capacity, Ratio: rt.Ratio}
		for _, err := range check.Split(rec.Validate()) {
			v := register.ViolationFor(r, rt.Subject(), rt.Line, err)
			if code, buildErr := rating.Build(rt.Capacity, rt.Ratio); buildErr == nil {
				v.Suggestion = fmt.Sprintf("use %s", code)
			}
			violations = append(violations, v)
		}
	}
	return violations
}

// TXR003 flags codes that decode correctly but differ from the form Build
// produces, such as P3060 for P360M.
type TXR003 struct {
	*register.BaseRule
}

func NewTXR003() *TXR003 {
	return &TXR003{
		BaseRule: register.NewBaseRule("TXR-003", "Canonical rating code", "rating", register.SeverityWarning),
	}
}

func (r *TXR003) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, rt := range reg.Ratings {
		if rating.ValidateAgainst(rt.Code, rt.Capacity, rt.Ratio) != nil {
			continue
		}
		want, err := rating.Build(rt.Capacity, rt.Ratio)
		if err != nil || want == rt.Code {
			continue
		}
		violations = append(violations, register.Violation{
			Message:    fmt.Sprintf("rating code %q is not in canonical form", rt.Code),
			Record:     rt.Subject(),
			Line:       rt.Line,
			Suggestion: fmt.Sprintf("use %s", want),
		})
	}
	return violations
}

// TXR004 flags transformers whose rating ratio is not one the station runs.
type TXR004 struct {
	*register.BaseRule
}

func NewTXR004() *TXR004 {
	return &TXR004{
		BaseRule: register.NewBaseRule("TXR-004", "Rating fits station", "rating", register.SeverityWarning),
	}
}

func (r *TXR004) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, t := range reg.Transformers {
		s, ok := reg.Station(t.Station)
		if !ok || !s.Ratio.Valid() {
			continue
		}
		rt, ok := reg.Rating(t.Rating)
		if !ok {
			continue
		}
		code, err := rating.ParseCode(rt.Code)
		if err != nil {
			continue
		}
		if !slices.Contains(code.Ratios(), s.Ratio) {
			violations = append(violations, register.Violation{
				Kind:    check.Kind(check.ErrRatingMismatch),
				Message: fmt.Sprintf("rating %s is for %v but station %s runs %s", rt.Code, code.Ratios(), s.Code, s.Ratio),
				Record:  t.Subject(),
				Line:    t.Line,
			})
		}
	}
	return violations
}
