package powerline

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// ValidateType checks that the code's start character matches t.
func ValidateType(code Code, t Type) error {
	if code.Type != t {
		return fmt.Errorf("%w: power line code %q is not a %s code", check.ErrInvalidFormat, code.Raw, t)
	}
	return nil
}

// ValidateVoltageEmbedding checks that a feeder code's voltage digit equals
// the leading digit of the line voltage (33KV -> '3', 11KV -> '1'). Upriser
// codes embed no digit and only match the consumer voltage.
func ValidateVoltageEmbedding(code Code, level voltage.Level) error {
	text, err := voltage.LevelText(level)
	if err != nil {
		return err
	}
	if code.Type == Upriser {
		if level != voltage.LVolt {
			return fmt.Errorf("%w: upriser code %q cannot carry %s", check.ErrCodeVoltageMismatch, code.Raw, text)
		}
		return nil
	}
	if code.VoltageDigit != text[0] {
		return fmt.Errorf("%w: feeder code %q embeds %q but voltage %s expects %q",
			check.ErrCodeVoltageMismatch, code.Raw, code.VoltageDigit, text, text[0])
	}
	return nil
}

// ValidateVoltageForType checks that level is one the line type may carry.
func ValidateVoltageForType(t Type, level voltage.Level) error {
	for _, l := range t.Voltages() {
		if l == level {
			return nil
		}
	}
	return fmt.Errorf("%w: %s not allowed for %s", check.ErrInvalidVoltage, level, t)
}

// ValidateSourceRequired checks that a source station reference is present.
func ValidateSourceRequired(sourceStation string) error {
	if strings.TrimSpace(sourceStation) == "" {
		return fmt.Errorf("%w: source station", check.ErrRequiredFieldMissing)
	}
	return nil
}

// Record carries the power line values checked together on save.
type Record struct {
	Code          string
	Type          Type
	Voltage       voltage.Level
	SourceStation string
}

// Validate runs every power line check and joins the failures.
func (r Record) Validate() error {
	return check.All(
		r.validateCode,
		func() error { return ValidateVoltageForType(r.Type, r.Voltage) },
		func() error { return ValidateSourceRequired(r.SourceStation) },
	)
}

func (r Record) validateCode() error {
	code, err := ParseCode(r.Code)
	if err != nil {
		return err
	}
	return check.First(
		func() error { return ValidateType(code, r.Type) },
		func() error { return ValidateVoltageEmbedding(code, r.Voltage) },
	)
}
