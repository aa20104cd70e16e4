package units

import (
	"fmt"
	"strings"
)

// registry holds the built-in tables, created once at package load and never mutated.
//
//nolint:gochecknoglobals // Static lookup tables built at init.
var (
	registry    map[Domain]*Table
	domainOrder []Domain
)

//nolint:gochecknoinits // Built-in tables are constants in all but name.
func init() {
	defs := builtinTables()
	registry = make(map[Domain]*Table, len(defs))
	domainOrder = make([]Domain, 0, len(defs))
	for _, def := range defs {
		registry[def.domain] = MustTable(NewTable(def.domain, def.base, def.units, def.opts...))
		domainOrder = append(domainOrder, def.domain)
	}
}

// MustTable panics if err is non-nil. It is meant for wrapping NewTable
// with static definitions, where a failure is a programming error.
func MustTable(t *Table, err error) *Table {
	if err != nil {
		panic(err)
	}
	return t
}

// Domains returns every built-in domain in presentation order.
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// GetUnitTable returns the unit table of a built-in domain.
func GetUnitTable(domain Domain) (*Table, error) {
	t, ok := registry[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	return t, nil
}

// Tables returns every built-in table in presentation order.
func Tables() []*Table {
	out := make([]*Table, 0, len(domainOrder))
	for _, d := range domainOrder {
		out = append(out, registry[d])
	}
	return out
}

// Convert converts value between two units of a built-in domain.
//
// Example:
//
//	meters, err := units.Convert(1, units.Kilometer, units.Meter, units.DomainLength)
//	// meters == 1000
func Convert(value float64, from, to UnitID, domain Domain) (float64, error) {
	t, err := GetUnitTable(domain)
	if err != nil {
		return 0, err
	}
	return t.Convert(value, from, to)
}

// Resolve finds the built-in unit named by token in any domain.
//
// It returns ErrUnknownUnit when nothing matches and ErrAmbiguousUnit when
// the first matching stage yields units in more than one domain.
func Resolve(token string) (Domain, UnitID, error) {
	return resolveIn(Tables(), token)
}

// resolveIn applies the Lookup matching stages across tables.
func resolveIn(tables []*Table, token string) (Domain, UnitID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", fmt.Errorf("%w: empty name", ErrUnknownUnit)
	}

	for stage := range lookupStages {
		var (
			hitDomain Domain
			hitID     UnitID
			domains   []string
		)
		for _, t := range tables {
			for _, u := range t.units {
				if !matchStage(u, token, stage) {
					continue
				}
				if hitID == "" {
					hitDomain, hitID = t.domain, u.ID
				}
				domains = append(domains, fmt.Sprintf("%s/%s", t.domain, u.ID))
				break
			}
		}
		switch len(domains) {
		case 0:
			continue
		case 1:
			return hitDomain, hitID, nil
		default:
			return "", "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousUnit, token, strings.Join(domains, ", "))
		}
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnknownUnit, token)
}

// ResolvePair resolves two unit tokens to a single domain.
//
// When domain is non-empty, both tokens are looked up in that table only.
// Otherwise each token is resolved independently; if one is ambiguous, the
// other's domain is used to disambiguate it.
func ResolvePair(domain Domain, fromToken, toToken string) (*Table, UnitID, UnitID, error) {
	if domain != "" {
		t, err := GetUnitTable(domain)
		if err != nil {
			return nil, "", "", err
		}
		from, ok := t.Lookup(fromToken)
		if !ok {
			return nil, "", "", fmt.Errorf("%w: %q in %s", ErrUnknownUnit, fromToken, domain)
		}
		to, ok := t.Lookup(toToken)
		if !ok {
			return nil, "", "", fmt.Errorf("%w: %q in %s", ErrUnknownUnit, toToken, domain)
		}
		return t, from, to, nil
	}

	fromDomain, _, fromErr := Resolve(fromToken)
	toDomain, _, toErr := Resolve(toToken)

	switch {
	case fromErr == nil && toErr == nil:
		if fromDomain != toDomain {
			return nil, "", "", fmt.Errorf("%w: %q is %s, %q is %s",
				ErrDomainMismatch, fromToken, fromDomain, toToken, toDomain)
		}
		return ResolvePair(fromDomain, fromToken, toToken)
	case fromErr == nil:
		return ResolvePair(fromDomain, fromToken, toToken)
	case toErr == nil:
		return ResolvePair(toDomain, fromToken, toToken)
	default:
		return nil, "", "", fromErr
	}
}
