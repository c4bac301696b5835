package voltage

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
)

// Level is a standard power line voltage within the grid.
type Level uint8

const (
	// HVoltH is the high transmission voltage (330KV).
	HVoltH Level = 1

	// HVoltL is the low transmission voltage (132KV).
	HVoltL Level = 2

	// MVoltH is the high distribution voltage (33KV).
	MVoltH Level = 3

	// MVoltL is the low distribution voltage (11KV).
	MVoltL Level = 4

	// LVolt is the consumer voltage (0.415KV).
	LVolt Level = 5
)

// levelText holds the canonical display text, indexed by Level.
var levelText = [...]string{
	HVoltH: "330KV",
	HVoltL: "132KV",
	MVoltH: "33KV",
	MVoltL: "11KV",
	LVolt:  "0.415KV",
}

// textToLevel maps canonical display text back to a Level.
var textToLevel = func() map[string]Level {
	m := make(map[string]Level, len(levelText))
	for l, text := range levelText {
		if text != "" {
			m[text] = Level(l)
		}
	}
	return m
}()

// Levels returns all defined voltage levels in ascending enum order.
func Levels() []Level {
	return []Level{HVoltH, HVoltL, MVoltH, MVoltL, LVolt}
}

// Valid reports whether l is a defined level.
func (l Level) Valid() bool {
	return int(l) < len(levelText) && levelText[l] != ""
}

// String returns the display text, or UNKNOWN for undefined levels.
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelText[l]
}

// Digit returns the leading character of the display text ('3' for 33KV).
func (l Level) Digit() byte {
	if !l.Valid() {
		return 0
	}
	return levelText[l][0]
}

// LevelText returns the canonical display text for a voltage level.
func LevelText(l Level) (string, error) {
	if !l.Valid() {
		return "", fmt.Errorf("%w: voltage %d", check.ErrUnknownValue, l)
	}
	return levelText[l], nil
}

// ParseLevel resolves voltage display text such as "33KV" or " 0.415 kv ".
func ParseLevel(text string) (Level, error) {
	l, ok := textToLevel[normalize(text)]
	if !ok {
		return 0, fmt.Errorf("%w: voltage %q", check.ErrUnknownText, text)
	}
	return l, nil
}

// normalize trims, drops internal spaces and upper-cases catalog text.
func normalize(text string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(text), " ", ""))
}
