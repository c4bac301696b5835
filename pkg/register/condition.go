package register

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
)

// Condition is the state of a piece of equipment.
type Condition uint8

const (
	ConditionUnknown Condition = 0
	ConditionOK      Condition = 1
	ConditionBurnt   Condition = 2
	ConditionDamaged Condition = 3
	ConditionFaulty  Condition = 4
)

var conditionText = [...]string{
	ConditionUnknown: "Unknown",
	ConditionOK:      "OK",
	ConditionBurnt:   "Burnt",
	ConditionDamaged: "Damaged",
	ConditionFaulty:  "Faulty",
}

// String returns the condition display text.
func (c Condition) String() string {
	if int(c) >= len(conditionText) {
		return "Unknown"
	}
	return conditionText[c]
}

// ConditionText returns the display text for a condition.
func ConditionText(c Condition) (string, error) {
	if int(c) >= len(conditionText) {
		return "", fmt.Errorf("%w: condition %d", check.ErrUnknownValue, c)
	}
	return conditionText[c], nil
}

// ParseCondition resolves condition text case-insensitively. Empty text is
// ConditionUnknown.
func ParseCondition(text string) (Condition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ConditionUnknown, nil
	}
	for c, t := range conditionText {
		if strings.EqualFold(t, text) {
			return Condition(c), nil
		}
	}
	return 0, fmt.Errorf("%w: condition %q", check.ErrUnknownText, text)
}
