package voltage

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
)

// Ratio is an input/output voltage pair for stations and transformers.
type Ratio uint8

const (
	HVoltHHVoltL Ratio = 1 // 330/132KV
	HVoltLMVoltH Ratio = 2 // 132/33KV
	HVoltLMVoltL Ratio = 3 // 132/11KV
	MVoltHMVoltL Ratio = 4 // 33/11KV
	MVoltHLVolt  Ratio = 5 // 33/0.415KV
	MVoltLLVolt  Ratio = 6 // 11/0.415KV
)

var ratioText = [...]string{
	HVoltHHVoltL: "330/132KV",
	HVoltLMVoltH: "132/33KV",
	HVoltLMVoltL: "132/11KV",
	MVoltHMVoltL: "33/11KV",
	MVoltHLVolt:  "33/0.415KV",
	MVoltLLVolt:  "11/0.415KV",
}

var textToRatio = func() map[string]Ratio {
	m := make(map[string]Ratio, len(ratioText))
	for r, text := range ratioText {
		if text != "" {
			m[text] = Ratio(r)
		}
	}
	return m
}()

// Group partitions ratios by the station category that may use them.
type Group uint8

const (
	GroupNone         Group = 0
	GroupTransmission Group = 1
	GroupInjection    Group = 2
	GroupDistribution Group = 3
)

var groupRatios = map[Group][]Ratio{
	GroupTransmission: {HVoltHHVoltL, HVoltLMVoltH},
	GroupInjection:    {MVoltHMVoltL},
	GroupDistribution: {MVoltHLVolt, MVoltLLVolt},
}

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupTransmission:
		return "Transmission"
	case GroupInjection:
		return "Injection"
	case GroupDistribution:
		return "Distribution"
	default:
		return "None"
	}
}

// Ratios returns the ratios belonging to the group.
func (g Group) Ratios() []Ratio {
	return append([]Ratio(nil), groupRatios[g]...)
}

// Contains reports whether r belongs to the group.
func (g Group) Contains(r Ratio) bool {
	for _, gr := range groupRatios[g] {
		if gr == r {
			return true
		}
	}
	return false
}

// Ratios returns all defined voltage ratios in ascending enum order.
func Ratios() []Ratio {
	return []Ratio{HVoltHHVoltL, HVoltLMVoltH, HVoltLMVoltL, MVoltHMVoltL, MVoltHLVolt, MVoltLLVolt}
}

// Valid reports whether r is a defined ratio.
func (r Ratio) Valid() bool {
	return int(r) < len(ratioText) && ratioText[r] != ""
}

// String returns the display text, or UNKNOWN for undefined ratios.
func (r Ratio) String() string {
	if !r.Valid() {
		return "UNKNOWN"
	}
	return ratioText[r]
}

// Group returns the station group the ratio belongs to. 132/11KV is a
// transformer-only ratio and has no group.
func (r Ratio) Group() Group {
	for _, g := range []Group{GroupTransmission, GroupInjection, GroupDistribution} {
		if g.Contains(r) {
			return g
		}
	}
	return GroupNone
}

// IsPower reports whether the ratio is served by power (rather than
// distribution) transformers.
func (r Ratio) IsPower() bool {
	switch r {
	case HVoltLMVoltH, HVoltLMVoltL, MVoltHMVoltL:
		return true
	default:
		return false
	}
}

// High returns the input (high side) voltage level.
func (r Ratio) High() (Level, error) {
	high, _, err := r.sides()
	if err != nil {
		return 0, err
	}
	return ParseLevel(high)
}

// Low returns the output (low side) voltage level.
func (r Ratio) Low() (Level, error) {
	_, low, err := r.sides()
	if err != nil {
		return 0, err
	}
	return ParseLevel(low)
}

// sides splits the display text into level texts, each carrying the KV suffix.
func (r Ratio) sides() (string, string, error) {
	text, err := RatioText(r)
	if err != nil {
		return "", "", err
	}
	high, low, ok := strings.Cut(text, "/")
	if !ok {
		return "", "", fmt.Errorf("%w: ratio text %q", check.ErrUnknownText, text)
	}
	return withKV(high), withKV(low), nil
}

func withKV(side string) string {
	return strings.TrimSuffix(side, "KV") + "KV"
}

// RatioText returns the canonical display text for a voltage ratio.
func RatioText(r Ratio) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("%w: voltage ratio %d", check.ErrUnknownValue, r)
	}
	return ratioText[r], nil
}

// ParseRatio resolves voltage ratio display text such as "33/11KV".
func ParseRatio(text string) (Ratio, error) {
	r, ok := textToRatio[normalize(text)]
	if !ok {
		return 0, fmt.Errorf("%w: voltage ratio %q", check.ErrUnknownText, text)
	}
	return r, nil
}
