package units

import (
	"fmt"
	"math"
	"strings"
)

// minTableSize is the smallest unit set that allows a conversion.
const minTableSize = 2

// Table is the immutable unit set of one domain, in presentation order.
type Table struct {
	domain      Domain
	base        UnitID
	units       []Unit
	index       map[UnitID]int
	defaultFrom UnitID
	defaultTo   UnitID
	precision   int
	convertFn   ConvertFunc
}

// TableOption configures optional Table properties.
type TableOption func(*Table)

// WithDefaults sets the unit pair a fresh converter starts with.
// Without it the first two units in presentation order are used.
func WithDefaults(from, to UnitID) TableOption {
	return func(t *Table) {
		t.defaultFrom = from
		t.defaultTo = to
	}
}

// WithPrecision sets the maximum fraction digits used to display results.
func WithPrecision(digits int) TableOption {
	return func(t *Table) {
		t.precision = digits
	}
}

// WithConvertFunc replaces the multiplicative pivot with fn.
// Unit factors are then neither validated nor used.
func WithConvertFunc(fn ConvertFunc) TableOption {
	return func(t *Table) {
		t.convertFn = fn
	}
}

// NewTable validates and builds a Table.
//
// It returns ErrInvalidTable when there are fewer than two units, an id is
// repeated, or the base or a default unit is missing, and ErrInvalidFactor
// when a multiplicative table has a factor that is not finite and positive
// or a base unit whose factor is not exactly 1.
func NewTable(domain Domain, base UnitID, list []Unit, opts ...TableOption) (*Table, error) {
	if len(list) < minTableSize {
		return nil, fmt.Errorf("%w: %s has %d units, need at least %d",
			ErrInvalidTable, domain, len(list), minTableSize)
	}

	t := &Table{
		domain:    domain,
		base:      base,
		units:     make([]Unit, len(list)),
		index:     make(map[UnitID]int, len(list)),
		precision: DefaultPrecision,
	}
	copy(t.units, list)

	for _, opt := range opts {
		opt(t)
	}

	for i, u := range t.units {
		if _, dup := t.index[u.ID]; dup {
			return nil, fmt.Errorf("%w: %s lists %q twice", ErrInvalidTable, domain, u.ID)
		}
		t.index[u.ID] = i

		if t.convertFn != nil {
			continue
		}
		if math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) || u.Factor <= 0 {
			return nil, fmt.Errorf("%w: %s/%s = %v", ErrInvalidFactor, domain, u.ID, u.Factor)
		}
	}

	baseIdx, ok := t.index[base]
	if !ok {
		return nil, fmt.Errorf("%w: %s base %q is not a member", ErrInvalidTable, domain, base)
	}
	if t.convertFn == nil && t.units[baseIdx].Factor != 1 {
		return nil, fmt.Errorf("%w: %s base %q must have factor 1, got %v",
			ErrInvalidFactor, domain, base, t.units[baseIdx].Factor)
	}

	if t.defaultFrom == "" {
		t.defaultFrom, t.defaultTo = t.units[0].ID, t.units[1].ID
	}
	for _, id := range []UnitID{t.defaultFrom, t.defaultTo} {
		if !t.Has(id) {
			return nil, fmt.Errorf("%w: %s default %q is not a member", ErrInvalidTable, domain, id)
		}
	}

	if t.precision < 0 {
		t.precision = 0
	}

	return t, nil
}

// Domain returns the table's domain.
func (t *Table) Domain() Domain { return t.domain }

// Base returns the canonical unit all conversions pivot through.
func (t *Table) Base() UnitID { return t.base }

// Defaults returns the initial from/to selection for a converter.
func (t *Table) Defaults() (from, to UnitID) { return t.defaultFrom, t.defaultTo }

// Precision returns the maximum fraction digits used for display.
func (t *Table) Precision() int { return t.precision }

// Affine reports whether the table converts through a ConvertFunc.
func (t *Table) Affine() bool { return t.convertFn != nil }

// Len returns the number of units.
func (t *Table) Len() int { return len(t.units) }

// Units returns a copy of the units in presentation order.
func (t *Table) Units() []Unit {
	out := make([]Unit, len(t.units))
	copy(out, t.units)
	return out
}

// IDs returns the unit identifiers in presentation order.
func (t *Table) IDs() []UnitID {
	ids := make([]UnitID, len(t.units))
	for i, u := range t.units {
		ids[i] = u.ID
	}
	return ids
}

// Has reports whether id is a member of the table.
func (t *Table) Has(id UnitID) bool {
	_, ok := t.index[id]
	return ok
}

// Unit returns the unit with the given id.
func (t *Table) Unit(id UnitID) (Unit, bool) {
	i, ok := t.index[id]
	if !ok {
		return Unit{}, false
	}
	return t.units[i], true
}

// IndexOf returns the presentation position of id, or -1.
func (t *Table) IndexOf(id UnitID) int {
	if i, ok := t.index[id]; ok {
		return i
	}
	return -1
}

// Convert converts value from one unit of the table to another.
//
// Converting a unit to itself returns value unchanged. NaN propagates.
// No rounding is applied; formatting is the caller's concern.
func (t *Table) Convert(value float64, from, to UnitID) (float64, error) {
	fromIdx, ok := t.index[from]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %q in %s", ErrUnknownUnit, from, t.domain)
	}
	toIdx, ok := t.index[to]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %q in %s", ErrUnknownUnit, to, t.domain)
	}

	if from == to {
		return value, nil
	}

	if t.convertFn != nil {
		return t.convertFn(value, from, to), nil
	}

	base := value * t.units[fromIdx].Factor
	return base / t.units[toIdx].Factor, nil
}

// Lookup resolves a user token to a unit of this table.
//
// Matching runs in stages and stops at the first stage with a hit: exact id,
// exact symbol or alias, then a case-insensitive comparison of the
// normalized token against ids (including simple plurals), symbols and
// aliases.
func (t *Table) Lookup(token string) (UnitID, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	for stage := range lookupStages {
		for _, u := range t.units {
			if matchStage(u, token, stage) {
				return u.ID, true
			}
		}
	}
	return "", false
}

// lookupStages is the number of matching passes made by Lookup and Resolve.
const lookupStages = 3

// matchStage reports whether token names u at the given matching stage.
func matchStage(u Unit, token string, stage int) bool {
	switch stage {
	case 0:
		return string(u.ID) == token
	case 1:
		if u.Symbol == token {
			return true
		}
		for _, a := range u.Aliases {
			if a == token {
				return true
			}
		}
		return false
	default:
		norm := normalizeToken(token)
		id := string(u.ID)
		if norm == id || norm == id+"s" || norm == id+"es" {
			return true
		}
		if strings.EqualFold(u.Symbol, token) {
			return true
		}
		for _, a := range u.Aliases {
			if strings.EqualFold(a, token) || strings.EqualFold(a, norm) {
				return true
			}
		}
		return false
	}
}

// normalizeToken lower-cases token and folds spaces and hyphens into underscores.
func normalizeToken(token string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, strings.ToLower(token))
}
