// Package powerline parses and validates power line codes.
//
// Feeder codes are F<1|3><hex><hex>, where the digit is the leading digit of
// the feeder voltage (33KV or 11KV). Upriser codes are U<hex>.
package powerline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// Type is the role of a power line.
type Type byte

const (
	Feeder  Type = 'F'
	Upriser Type = 'U'
)

// String returns the type display name.
func (t Type) String() string {
	switch t {
	case Feeder:
		return "Feeder"
	case Upriser:
		return "Upriser"
	default:
		return "Unknown"
	}
}

// Voltages returns the voltage levels a line of this type may carry.
func (t Type) Voltages() []voltage.Level {
	switch t {
	case Feeder:
		return []voltage.Level{voltage.MVoltH, voltage.MVoltL}
	case Upriser:
		return []voltage.Level{voltage.LVolt}
	default:
		return nil
	}
}

// ParseType accepts F, U or the type display name, case-insensitively.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range []Type{Feeder, Upriser} {
		if s == strings.ToLower(string(rune(t))) || s == strings.ToLower(t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: power line type %q", check.ErrUnknownText, s)
}

// Code lengths.
const (
	FeederCodeLength  = 4
	UpriserCodeLength = 2
)

// Code is a parsed power line code.
type Code struct {
	// Raw is the normalized code string.
	Raw string

	// Type is Feeder or Upriser.
	Type Type

	// VoltageDigit is the embedded voltage digit; 0 for uprisers.
	VoltageDigit byte

	// Serial is the hex suffix value, always > 0.
	Serial uint8
}

// String returns the normalized code.
func (c Code) String() string {
	return c.Raw
}

// ParseCode validates the structure of a power line code and returns its
// parts. The input is trimmed and upper-cased first.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Code{}, fmt.Errorf("%w: power line code is empty", check.ErrInvalidFormat)
	}

	var code Code
	var suffix string
	switch Type(s[0]) {
	case Feeder:
		if len(s) != FeederCodeLength {
			return Code{}, fmt.Errorf("%w: feeder code %q must be %d characters", check.ErrInvalidFormat, s, FeederCodeLength)
		}
		if s[1] != '1' && s[1] != '3' {
			return Code{}, fmt.Errorf("%w: feeder code %q voltage digit must be 1 or 3", check.ErrInvalidFormat, s)
		}
		code.VoltageDigit = s[1]
		suffix = s[2:]
	case Upriser:
		if len(s) != UpriserCodeLength {
			return Code{}, fmt.Errorf("%w: upriser code %q must be %d characters", check.ErrInvalidFormat, s, UpriserCodeLength)
		}
		suffix = s[1:]
	default:
		return Code{}, fmt.Errorf("%w: power line code %q must start with F or U", check.ErrInvalidFormat, s)
	}

	serial, err := strconv.ParseUint(suffix, 16, 8)
	if err != nil || serial == 0 {
		return Code{}, fmt.Errorf("%w: power line code %q suffix must be hex greater than 0", check.ErrInvalidFormat, s)
	}

	code.Raw = s
	code.Type = Type(s[0])
	code.Serial = uint8(serial)
	return code, nil
}

// ValidateFormat checks the structure of a power line code.
func ValidateFormat(s string) error {
	_, err := ParseCode(s)
	return err
}

// NewCode builds the code for a line of the given type and voltage.
func NewCode(t Type, level voltage.Level, serial uint8) (Code, error) {
	if err := ValidateVoltageForType(t, level); err != nil {
		return Code{}, err
	}
	if t == Upriser {
		if serial > 0xF {
			return Code{}, fmt.Errorf("%w: upriser serial %d exceeds 1 hex digit", check.ErrInvalidFormat, serial)
		}
		return ParseCode(fmt.Sprintf("U%X", serial))
	}
	return ParseCode(fmt.Sprintf("F%c%02X", level.Digit(), serial))
}
