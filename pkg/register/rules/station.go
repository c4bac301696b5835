package rules

import (
	"fmt"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/register"
	"github.com/hkmshb/elco/pkg/station"
)

// RegisterStationRules registers all station rules with the given registry.
func RegisterStationRules(registry *register.RuleRegistry) {
	registry.Register(NewSTN001())
	registry.Register(NewSTN002())
	registry.Register(NewSTN003())
	registry.Register(NewSTN004())
	registry.Register(NewSTN005())
}

// STN001 checks the structure of station codes.
type STN001 struct {
	*register.BaseRule
}

func NewSTN001() *STN001 {
	return &STN001{
		BaseRule: register.NewBaseRule("STN-001", "Station code format", "station", register.SeverityError),
	}
}

func (r *STN001) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, s := range reg.Stations {
		if s.Code == "" {
			violations = append(violations, register.ViolationFor(r, s.Subject(), s.Line,
				fmt.Errorf("%w: station code", check.ErrRequiredFieldMissing)))
			continue
		}
		if err := station.ValidateFormat(s.Code); err != nil {
			violations = append(violations, register.ViolationFor(r, s.Subject(), s.Line, err))
		}
	}
	return violations
}

// STN002 checks that the voltage ratio is allowed for the station category.
type STN002 struct {
	*register.BaseRule
}

func NewSTN002() *STN002 {
	return &STN002{
		BaseRule: register.NewBaseRule("STN-002", "Voltage ratio allowed for category", "station", register.SeverityError),
	}
}

func (r *STN002) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, s := range reg.Stations {
		var err error
		switch {
		case !s.Category.Valid():
			err = fmt.Errorf("%w: station category", check.ErrRequiredFieldMissing)
		case !s.Ratio.Valid():
			err = fmt.Errorf("%w: station voltage ratio", check.ErrRequiredFieldMissing)
		default:
			err = station.ValidateRatioForCategory(s.Category, s.Ratio)
		}
		if err != nil {
			v := register.ViolationFor(r, s.Subject(), s.Line, err)
			if s.Category.Valid() && s.Ratio.Valid() {
				v.Suggestion = fmt.Sprintf("use one of %v", s.Category.Ratios())
			}
			violations = append(violations, v)
		}
	}
	return violations
}

// STN003 checks that the code start character matches the category.
type STN003 struct {
	*register.BaseRule
}

func NewSTN003() *STN003 {
	return &STN003{
		BaseRule: register.NewBaseRule("STN-003", "Code matches category", "station", register.SeverityError),
	}
}

func (r *STN003) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, s := range reg.Stations {
		code, err := station.ParseCode(s.Code)
		if err != nil || !s.Category.Valid() {
			continue // STN-001 / STN-002
		}
		if err := station.ValidateCategory(code, s.Category); err != nil {
			violations = append(violations, register.ViolationFor(r, s.Subject(), s.Line, err))
		}
	}
	return violations
}

// STN004 checks that the code voltage digit matches the voltage ratio.
type STN004 struct {
	*register.BaseRule
}

func NewSTN004() *STN004 {
	return &STN004{
		BaseRule: register.NewBaseRule("STN-004", "Code matches voltage ratio", "station", register.SeverityError),
	}
}

func (r *STN004) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, s := range reg.Stations {
		code, err := station.ParseCode(s.Code)
		if err != nil || !s.Ratio.Valid() {
			continue
		}
		if err := station.ValidateRatioEmbedding(code, s.Ratio); err != nil {
			violations = append(violations, register.ViolationFor(r, s.Subject(), s.Line, err))
		}
	}
	return violations
}

// STN005 checks the source feeder voltage against the station input voltage.
// Unresolved feeders are left to REF-001.
type STN005 struct {
	*register.BaseRule
}

func NewSTN005() *STN005 {
	return &STN005{
		BaseRule: register.NewBaseRule("STN-005", "Source feeder voltage", "station", register.SeverityError),
	}
}

func (r *STN005) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, s := range reg.Stations {
		if s.SourceFeeder == "" || !s.Category.Valid() || !s.Ratio.Valid() {
			continue
		}
		feeder, ok := reg.PowerLine(s.SourceFeeder)
		if !ok || feeder.Type != powerline.Feeder {
			continue
		}
		level := feeder.Voltage
		if err := station.ValidateSourceFeeder(s.Category, s.Ratio, &level); err != nil {
			violations = append(violations, register.ViolationFor(r, s.Subject(), s.Line, err))
		}
	}
	return violations
}
