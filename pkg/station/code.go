package station

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// Station code lengths.
const (
	// CodeLength is the length of Transmission and Injection codes.
	CodeLength = 4

	// DistributionCodeLength is the length of Distribution substation codes.
	DistributionCodeLength = 6
)

// Code is a parsed station code: <start><voltage digit><hex serial>.
type Code struct {
	// Raw is the normalized code string.
	Raw string

	// Start is 'T', 'I' or 'S'.
	Start byte

	// VoltageDigit is the leading digit of the station's voltage ratio text.
	VoltageDigit byte

	// Serial is the hex suffix value, always > 0.
	Serial uint16
}

// String returns the normalized code.
func (c Code) String() string {
	return c.Raw
}

// Category returns the station category encoded by the start character.
func (c Code) Category() Category {
	switch c.Start {
	case 'T':
		return Transmission
	case 'I':
		return Injection
	case 'S':
		return Distribution
	default:
		return 0
	}
}

// ParseCode validates the structure of a station code and returns its parts.
// The input is trimmed and upper-cased first.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Code{}, fmt.Errorf("%w: station code is empty", check.ErrInvalidFormat)
	}
	if len(s) != CodeLength && len(s) != DistributionCodeLength {
		return Code{}, fmt.Errorf("%w: station code %q must be %d or %d characters",
			check.ErrInvalidFormat, s, CodeLength, DistributionCodeLength)
	}

	start, digit := s[0], s[1]
	wantLen := CodeLength
	switch start {
	case 'T', 'I':
	case 'S':
		wantLen = DistributionCodeLength
	default:
		return Code{}, fmt.Errorf("%w: station code %q must start with T, I or S", check.ErrInvalidFormat, s)
	}

	if digit != '1' && digit != '3' {
		return Code{}, fmt.Errorf("%w: station code %q voltage digit must be 1 or 3", check.ErrInvalidFormat, s)
	}
	// Injection stations only take 33/11KV.
	if start == 'I' && digit != '3' {
		return Code{}, fmt.Errorf("%w: injection station code %q voltage digit must be 3", check.ErrInvalidFormat, s)
	}
	if len(s) != wantLen {
		return Code{}, fmt.Errorf("%w: station code %q must be %d characters", check.ErrInvalidFormat, s, wantLen)
	}

	serial, err := strconv.ParseUint(s[2:], 16, 16)
	if err != nil || serial == 0 {
		return Code{}, fmt.Errorf("%w: station code %q suffix must be hex greater than 0", check.ErrInvalidFormat, s)
	}

	return Code{
		Raw:          s,
		Start:        start,
		VoltageDigit: digit,
		Serial:       uint16(serial),
	}, nil
}

// ValidateFormat checks the structure of a station code.
func ValidateFormat(s string) error {
	_, err := ParseCode(s)
	return err
}

// NewCode builds the code for a station of the given category and ratio.
func NewCode(cat Category, ratio voltage.Ratio, serial uint16) (Code, error) {
	if err := ValidateRatioForCategory(cat, ratio); err != nil {
		return Code{}, err
	}
	width := 2
	if cat == Distribution {
		width = 4
	} else if serial > 0xFF {
		return Code{}, fmt.Errorf("%w: serial %d exceeds 2 hex digits", check.ErrInvalidFormat, serial)
	}
	text, _ := voltage.RatioText(ratio)
	return ParseCode(fmt.Sprintf("%c%c%0*X", cat.StartChar(), text[0], width, serial))
}

// MustParseCode parses a station code and panics on error.
// Use only in tests or when the code is known to be valid.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}
