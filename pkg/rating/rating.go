package rating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// CodeLength is the fixed length of a transformer rating code.
const CodeLength = 5

// maxQuotient bounds the thousands part of an encodable capacity.
const maxQuotient = 1000

// Type distinguishes power transformers from distribution transformers.
type Type byte

const (
	Power        Type = 'P'
	Distribution Type = 'D'
)

// String returns the type display name.
func (t Type) String() string {
	switch t {
	case Power:
		return "Power"
	case Distribution:
		return "Distribution"
	default:
		return "Unknown"
	}
}

// Multiplier is the optional trailing capacity multiplier. 'M' and 'm' are
// distinct and must never be case-folded.
type Multiplier byte

const (
	MultiplierNone     Multiplier = 0
	MultiplierMega     Multiplier = 'M'
	MultiplierFraction Multiplier = 'm'
)

// String returns the multiplier character, or "" when absent.
func (m Multiplier) String() string {
	if m == MultiplierNone {
		return ""
	}
	return string(rune(m))
}

// Factor returns the value the coded digits are multiplied by to get KVA.
// A bare power transformer code implies M, a bare distribution code is KVA.
func (m Multiplier) Factor(t Type) uint32 {
	switch m {
	case MultiplierMega:
		return 1000
	case MultiplierFraction:
		return 100
	default:
		if t == Power {
			return 1000
		}
		return 1
	}
}

// TypeFor returns the transformer type coding the ratio. 330/132KV has no
// transformer rating code.
func TypeFor(r voltage.Ratio) (Type, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("%w: voltage ratio %d", check.ErrUnknownValue, r)
	}
	if r.IsPower() {
		return Power, nil
	}
	if r.Group() == voltage.GroupDistribution {
		return Distribution, nil
	}
	return 0, fmt.Errorf("%w: %s has no transformer rating code", check.ErrInvalidVoltageRatio, r)
}

// RatioDigit returns the ratio digit embedded in codes for r: the last digit
// of the low side for power transformers ("132/33KV" -> '3'), the first digit
// of the high side for distribution transformers ("33/0.415KV" -> '3').
func RatioDigit(r voltage.Ratio) (byte, error) {
	t, err := TypeFor(r)
	if err != nil {
		return 0, err
	}
	text, _ := voltage.RatioText(r)
	high, low, _ := strings.Cut(strings.TrimSuffix(text, "KV"), "/")
	if t == Power {
		return low[len(low)-1], nil
	}
	return high[0], nil
}

// Build encodes a capacity in KVA and a voltage ratio into a rating code.
func Build(capacity uint32, r voltage.Ratio) (string, error) {
	t, err := TypeFor(r)
	if err != nil {
		return "", err
	}
	digit, err := RatioDigit(r)
	if err != nil {
		return "", err
	}

	digits, err := encodeCapacity(capacity, t)
	if err != nil {
		return "", err
	}

	code := string(rune(t)) + string(rune(digit)) + digits
	if len(code) != CodeLength {
		return "", fmt.Errorf("%w: %dKVA does not fit a %d character code", check.ErrInvalidCapacity, capacity, CodeLength)
	}
	return code, nil
}

// BuildFromText is Build with the ratio given as display text ("33/11KV").
// A numeric ratio value ("4") is accepted as well.
func BuildFromText(capacity uint32, ratio string) (string, error) {
	r, err := voltage.ParseRatio(ratio)
	if err != nil {
		n, parseErr := strconv.ParseUint(strings.TrimSpace(ratio), 10, 8)
		if parseErr != nil {
			return "", fmt.Errorf("%w: %q", check.ErrInvalidVoltageRatio, ratio)
		}
		r = voltage.Ratio(n)
	}
	return Build(capacity, r)
}

// encodeCapacity returns the capacity digits and multiplier part of a code.
func encodeCapacity(capacity uint32, t Type) (string, error) {
	if capacity == 0 {
		return "", fmt.Errorf("%w: capacity must be positive", check.ErrInvalidCapacity)
	}

	if capacity < 1000 {
		if t == Power {
			return "", fmt.Errorf("%w: power transformers start at 1000KVA, got %dKVA", check.ErrInvalidCapacity, capacity)
		}
		return fmt.Sprintf("%03d", capacity), nil
	}

	quotient, remainder := capacity/1000, capacity%1000
	if quotient >= maxQuotient {
		return "", fmt.Errorf("%w: %dKVA exceeds the representable range", check.ErrInvalidCapacity, capacity)
	}

	if remainder == 0 {
		if quotient < 100 {
			return fmt.Sprintf("%02dM", quotient), nil
		}
		// A bare distribution code reads as KVA, so 100MVA and up would
		// collide with 100-999KVA.
		if t == Distribution {
			return "", fmt.Errorf("%w: %dKVA cannot be coded for a distribution transformer", check.ErrInvalidCapacity, capacity)
		}
		return fmt.Sprintf("%d", quotient), nil
	}

	if remainder%100 != 0 {
		return "", fmt.Errorf("%w: %dKVA needs more than one fractional digit", check.ErrInvalidCapacity, capacity)
	}
	return fmt.Sprintf("%d%dm", quotient, remainder/100), nil
}
