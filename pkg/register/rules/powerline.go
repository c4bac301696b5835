package rules

import (
	"fmt"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/register"
)

// RegisterPowerLineRules registers all power line rules with the given registry.
func RegisterPowerLineRules(registry *register.RuleRegistry) {
	registry.Register(NewPLN001())
	registry.Register(NewPLN002())
	registry.Register(NewPLN003())
	registry.Register(NewPLN004())
	registry.Register(NewPLN005())
}

// PLN001 checks the structure of power line codes.
type PLN001 struct {
	*register.BaseRule
}

func NewPLN001() *PLN001 {
	return &PLN001{
		BaseRule: register.NewBaseRule("PLN-001", "Power line code format", "powerline", register.SeverityError),
	}
}

func (r *PLN001) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, p := range reg.PowerLines {
		if p.Code == "" {
			violations = append(violations, register.ViolationFor(r, p.Subject(), p.Line,
				fmt.Errorf("%w: power line code", check.ErrRequiredFieldMissing)))
			continue
		}
		if err := powerline.ValidateFormat(p.Code); err != nil {
			violations = append(violations, register.ViolationFor(r, p.Subject(), p.Line, err))
		}
	}
	return violations
}

// PLN002 checks that the code start character matches the line type.
type PLN002 struct {
	*register.BaseRule
}

func NewPLN002() *PLN002 {
	return &PLN002{
		BaseRule: register.NewBaseRule("PLN-002", "Code matches line type", "powerline", register.SeverityError),
	}
}

func (r *PLN002) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, p := range reg.PowerLines {
		if p.Type == 0 {
			violations = append(violations, register.ViolationFor(r, p.Subject(), p.Line,
				fmt.Errorf("%w: power line type", check.ErrRequiredFieldMissing)))
			continue
		}
		code, err := powerline.ParseCode(p.Code)
		if err != nil {
			continue
		}
		if err := powerline.ValidateType(code, p.Type); err != nil {
			violations = append(violations, register.ViolationFor(r, p.Subject(), p.Line, err))
		}
	}
	return violations
}

// PLN003 checks that the line voltage is one its type may carry.
type PLN003 struct {
	*register.BaseRule
}

func NewPLN003() *PLN003 {
	return &PLN003{
		BaseRule: register.NewBaseRule("PLN-003", "Voltage allowed for line type", "powerline", register.SeverityError),
	}
}

func (r *PLN003) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, p := range reg.PowerLines {
		if p.Type == 0 {
			continue
		}
		var err error
		if !p.Voltage.Valid() {
			err = fmt.Errorf("%w: power line voltage", check.ErrRequiredFieldMissing)
		} else {
			err = powerline.ValidateVoltageForType(p.Type, p.Voltage)
		}
		if err != nil {
			v := register.ViolationFor(r, p.Subject(), p.Line, err)
			v.Suggestion = fmt.Sprintf("use one of %v", p.Type.Voltages())
			violations = append(violations, v)
		}
	}
	return violations
}

// PLN004 checks that a feeder code digit matches the line voltage.
type PLN004 struct {
	*register.BaseRule
}

func NewPLN004() *PLN004 {
	return &PLN004{
		BaseRule: register.NewBaseRule("PLN-004", "Code matches voltage", "powerline", register.SeverityError),
	}
}

func (r *PLN004) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, p := range reg.PowerLines {
		code, err := powerline.ParseCode(p.Code)
		if err != nil || !p.Voltage.Valid() {
			continue
		}
		if err := powerline.ValidateVoltageEmbedding(code, p.Voltage); err != nil {
			violations = append(violations, register.ViolationFor(r, p.Subject(), p.Line, err))
		}
	}
	return violations
}

// PLN005 checks that every power line names its source station.
type PLN005 struct {
	*register.BaseRule
}

func NewPLN005() *PLN005 {
	return &PLN005{
		BaseRule: register.NewBaseRule("PLN-005", "Source station required", "powerline", register.SeverityError),
	}
}

func (r *PLN005) Check(reg *register.Register) []register.Violation {
	var violations []register.Violation
	for _, p := range reg.PowerLines {
		if err := powerline.ValidateSourceRequired(p.SourceStation); err != nil {
			violations = append(violations, register.ViolationFor(r, p.Subject(), p.Line, err))
		}
	}
	return violations
}
