package station

import (
	"fmt"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// ValidateCategory checks that the code's start character matches cat.
func ValidateCategory(code Code, cat Category) error {
	if code.Start != cat.StartChar() {
		return fmt.Errorf("%w: station code %q does not match %s category (expected start %q)",
			check.ErrInvalidFormat, code.Raw, cat, cat.StartChar())
	}
	return nil
}

// ValidateRatioEmbedding checks that the code's voltage digit equals the
// first character of the ratio text ("132/33KV" embeds '1').
func ValidateRatioEmbedding(code Code, ratio voltage.Ratio) error {
	text, err := voltage.RatioText(ratio)
	if err != nil {
		return err
	}
	if code.VoltageDigit != text[0] {
		return fmt.Errorf("%w: station code %q embeds %q but voltage ratio %s expects %q",
			check.ErrCodeRatioMismatch, code.Raw, code.VoltageDigit, text, text[0])
	}
	return nil
}

// ValidateRatioForCategory checks that ratio is permitted for cat.
func ValidateRatioForCategory(cat Category, ratio voltage.Ratio) error {
	if !cat.Group().Contains(ratio) {
		return fmt.Errorf("%w: %s not allowed for %s Station",
			check.ErrInvalidVoltageRatio, ratio, cat)
	}
	return nil
}

// ValidateSourceFeeder checks the station's source feeder voltage against its
// input voltage. A nil feederVoltage means the station has no source feeder.
func ValidateSourceFeeder(cat Category, ratio voltage.Ratio, feederVoltage *voltage.Level) error {
	if feederVoltage == nil {
		return nil
	}
	if cat == Transmission {
		return fmt.Errorf("%w: transmission stations take no source feeder", check.ErrSourceFeederNotSupported)
	}

	expected := voltage.MVoltH
	if cat == Distribution && ratio == voltage.MVoltLLVolt {
		expected = voltage.MVoltL
	}
	if *feederVoltage != expected {
		return fmt.Errorf("%w: %s station with %s expects a %s feeder, got %s",
			check.ErrSourceFeederVoltageMismatch, cat, ratio, expected, *feederVoltage)
	}
	return nil
}

// Record carries the station values checked together on save.
type Record struct {
	Code         string
	Category     Category
	Ratio        voltage.Ratio
	SourceFeeder *voltage.Level
}

// Validate runs every station check and joins the failures. The code checks
// depend on a successful parse, so they stop at the first code failure.
func (r Record) Validate() error {
	return check.All(
		func() error { return ValidateRatioForCategory(r.Category, r.Ratio) },
		r.validateCode,
		func() error { return ValidateSourceFeeder(r.Category, r.Ratio, r.SourceFeeder) },
	)
}

func (r Record) validateCode() error {
	code, err := ParseCode(r.Code)
	if err != nil {
		return err
	}
	return check.First(
		func() error { return ValidateCategory(code, r.Category) },
		func() error { return ValidateRatioEmbedding(code, r.Ratio) },
	)
}
