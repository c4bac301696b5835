package rating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// Code is a parsed transformer rating code.
type Code struct {
	// Raw is the normalized code string.
	Raw string

	// Type is Power or Distribution.
	Type Type

	// RatioDigit is '1' or '3'.
	RatioDigit byte

	// Value is the decimal digits portion.
	Value uint32

	// Multiplier is the trailing multiplier, if any.
	Multiplier Multiplier
}

// String returns the normalized code.
func (c Code) String() string {
	return c.Raw
}

// Capacity returns the decoded capacity in KVA.
func (c Code) Capacity() uint32 {
	return c.Value * c.Multiplier.Factor(c.Type)
}

// Ratios returns the voltage ratios the code's type and ratio digit stand for.
func (c Code) Ratios() []voltage.Ratio {
	var out []voltage.Ratio
	for _, r := range voltage.Ratios() {
		t, err := TypeFor(r)
		if err != nil || t != c.Type {
			continue
		}
		if d, _ := RatioDigit(r); d == c.RatioDigit {
			out = append(out, r)
		}
	}
	return out
}

// HasRatio reports whether r is one of the ratios the code stands for.
func (c Code) HasRatio(r voltage.Ratio) bool {
	for _, cr := range c.Ratios() {
		if cr == r {
			return true
		}
	}
	return false
}

// ParseCode validates the structure of a rating code and returns its parts.
//
// The multiplier is read from the raw last character before anything is
// normalized; only the type character is upper-cased.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) != CodeLength {
		return Code{}, fmt.Errorf("%w: rating code %q must be %d characters", check.ErrInvalidFormat, s, CodeLength)
	}

	mult := Multiplier(s[CodeLength-1])
	digits := s[2:]
	switch mult {
	case MultiplierMega, MultiplierFraction:
		digits = s[2 : CodeLength-1]
	default:
		mult = MultiplierNone
	}

	t := Type(strings.ToUpper(s[:1])[0])
	if t != Power && t != Distribution {
		return Code{}, fmt.Errorf("%w: rating code %q must start with P or D", check.ErrInvalidFormat, s)
	}
	if s[1] != '1' && s[1] != '3' {
		return Code{}, fmt.Errorf("%w: rating code %q ratio digit must be 1 or 3", check.ErrInvalidFormat, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Code{}, fmt.Errorf("%w: rating code %q capacity must be decimal digits", check.ErrInvalidFormat, s)
		}
	}
	value, _ := strconv.ParseUint(digits, 10, 32)

	code := Code{
		Raw:        string(rune(t)) + s[1:],
		Type:       t,
		RatioDigit: s[1],
		Value:      uint32(value),
		Multiplier: mult,
	}

	switch capacity := code.Capacity(); {
	case capacity == 0:
		return Code{}, fmt.Errorf("%w: rating code %q encodes zero capacity", check.ErrInvalidFormat, s)
	case t == Power && capacity < 1000:
		return Code{}, fmt.Errorf("%w: power rating code %q encodes %dKVA, below 1000KVA", check.ErrInvalidFormat, s, capacity)
	}
	return code, nil
}

// ValidateFormat checks the structure of a rating code.
func ValidateFormat(s string) error {
	_, err := ParseCode(s)
	return err
}

// ValidateAgainst checks a rating code against the record's capacity and
// voltage ratio, stopping at the first mismatch.
func ValidateAgainst(code string, capacity uint32, r voltage.Ratio) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: rating code", check.ErrRequiredFieldMissing)
	}
	c, err := ParseCode(code)
	if err != nil {
		return err
	}
	return check.First(
		func() error { return validateCapacity(c, capacity) },
		func() error { return validateRatio(c, r) },
	)
}

func validateCapacity(c Code, capacity uint32) error {
	if c.Capacity() != capacity {
		return fmt.Errorf("%w: code %q encodes %dKVA, record has %dKVA",
			check.ErrRatingMismatch, c.Raw, c.Capacity(), capacity)
	}
	return nil
}

func validateRatio(c Code, r voltage.Ratio) error {
	if !c.HasRatio(r) {
		return fmt.Errorf("%w: code %q does not stand for %s", check.ErrRatingMismatch, c.Raw, r)
	}
	return nil
}

// Record carries the transformer rating values checked together on save.
type Record struct {
	Code     string
	Capacity uint32
	Ratio    voltage.Ratio
}

// Validate runs the rating checks and joins every failure.
func (rec Record) Validate() error {
	if strings.TrimSpace(rec.Code) == "" {
		return fmt.Errorf("%w: rating code", check.ErrRequiredFieldMissing)
	}
	c, err := ParseCode(rec.Code)
	if err != nil {
		return err
	}
	return check.All(
		func() error { return validateCapacity(c, rec.Capacity) },
		func() error { return validateRatio(c, rec.Ratio) },
	)
}

// MustParseCode parses a rating code and panics on error.
// Use only in tests or when the code is known to be valid.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}
