package station

import (
	"fmt"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/voltage"
)

// Category classifies a station by its role in the network.
type Category byte

const (
	Transmission Category = 'T'
	Injection    Category = 'I'
	Distribution Category = 'D'
)

// Categories returns all station categories.
func Categories() []Category {
	return []Category{Transmission, Injection, Distribution}
}

// Valid reports whether c is a defined category.
func (c Category) Valid() bool {
	switch c {
	case Transmission, Injection, Distribution:
		return true
	default:
		return false
	}
}

// String returns the category display name.
func (c Category) String() string {
	switch c {
	case Transmission:
		return "Transmission"
	case Injection:
		return "Injection"
	case Distribution:
		return "Distribution"
	default:
		return "Unknown"
	}
}

// StartChar returns the first character of codes for this category.
// Distribution substations use 'S' rather than 'D'.
func (c Category) StartChar() byte {
	if c == Distribution {
		return 'S'
	}
	return byte(c)
}

// Group returns the voltage ratio group the category may use.
func (c Category) Group() voltage.Group {
	switch c {
	case Transmission:
		return voltage.GroupTransmission
	case Injection:
		return voltage.GroupInjection
	case Distribution:
		return voltage.GroupDistribution
	default:
		return voltage.GroupNone
	}
}

// Ratios returns the voltage ratios allowed for the category.
func (c Category) Ratios() []voltage.Ratio {
	return c.Group().Ratios()
}

// TypeName returns the plural name used to address stations of this category
// in listings ("transmissions", "injections", "distributions").
func (c Category) TypeName() string {
	switch c {
	case Transmission:
		return "transmissions"
	case Injection:
		return "injections"
	case Distribution:
		return "distributions"
	default:
		return ""
	}
}

// CategoryFromTypeName is the inverse of TypeName.
func CategoryFromTypeName(name string) (Category, error) {
	for _, c := range Categories() {
		if c.TypeName() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: station type name %q", check.ErrUnknownText, name)
}

// ParseCategory accepts a category id (T, I, D), its display name or its
// type name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if s == strings.ToLower(string(rune(c))) || s == strings.ToLower(c.String()) || s == c.TypeName() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: station category %q", check.ErrUnknownText, s)
}
