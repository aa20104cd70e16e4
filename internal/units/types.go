// Package units provides the unit tables and conversion engine for convkit.
//
// Every measurement domain (length, weight, data storage, ...) is described
// by one immutable Table holding its units in presentation order. Conversion
// pivots through the domain's base unit:
//
//	base := value * factor[from]
//	result := base / factor[to]
//
// Temperature is the one affine domain; its table carries a ConvertFunc
// override in place of multiplicative factors.
package units

import (
	"fmt"
	"strings"
)

// Domain names a category of measurement with its own closed set of units.
type Domain string

// Built-in domains.
const (
	DomainLength      Domain = "length"
	DomainArea        Domain = "area"
	DomainVolume      Domain = "volume"
	DomainWeight      Domain = "weight"
	DomainTemperature Domain = "temperature"
	DomainSpeed       Domain = "speed"
	DomainPressure    Domain = "pressure"
	DomainAngle       Domain = "angle"
	DomainData        Domain = "data"
)

// String returns the domain name.
func (d Domain) String() string { return string(d) }

// Title returns the domain name with its first letter upper-cased.
func (d Domain) Title() string {
	if d == "" {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDomain resolves a domain name case-insensitively.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
	return d, nil
}

// UnitID is the stable identifier of a unit. IDs are unique across all domains.
type UnitID string

// String returns the identifier.
func (id UnitID) String() string { return string(id) }

// Unit describes one measurement unit within a domain.
type Unit struct {
	// ID is the stable identifier, e.g. "kilometer".
	ID UnitID `json:"id" yaml:"id"`

	// Label is the display name with symbol, e.g. "Kilometer (km)".
	Label string `json:"label" yaml:"label"`

	// Symbol is the short form, e.g. "km".
	Symbol string `json:"symbol" yaml:"symbol"`

	// Factor converts one of this unit into the domain base unit.
	// Unused by tables with a ConvertFunc override.
	Factor float64 `json:"factor,omitempty" yaml:"factor,omitempty"`

	// Aliases are extra tokens accepted by Lookup (e.g. "feet", "lbs").
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// ConvertFunc converts value between two members of the same table.
// Tables use one to replace the multiplicative pivot, e.g. for temperature.
type ConvertFunc func(value float64, from, to UnitID) float64

// unit builds a Unit with a label derived from name and symbol.
func unit(id UnitID, name, symbol string, factor float64, aliases ...string) Unit {
	return Unit{
		ID:      id,
		Label:   fmt.Sprintf("%s (%s)", name, symbol),
		Symbol:  symbol,
		Factor:  factor,
		Aliases: aliases,
	}
}
