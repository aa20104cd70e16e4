// Package converter binds a unit table to editable converter state.
//
// A Session holds the raw input text and the from/to unit selection of one
// converter widget. Any change to one of the three re-runs the conversion
// synchronously and reformats the result, so Result is always current.
// Sessions are owned by a single caller and are not safe for concurrent use.
package converter

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/rshade/convkit/internal/units"
)

// Result is the display-ready outcome of the current session state.
type Result struct {
	// Input is the raw text the result was computed from.
	Input string `json:"input" yaml:"input"`

	// Domain is the measurement domain of both units.
	Domain units.Domain `json:"domain" yaml:"domain"`

	// From and To are the selected units.
	From units.UnitID `json:"from" yaml:"from"`
	To   units.UnitID `json:"to" yaml:"to"`

	// Value is the unrounded conversion result; NaN when Valid is false.
	Value float64 `json:"-" yaml:"-"`

	// Formatted is the rounded, grouped result or units.Placeholder.
	Formatted string `json:"result" yaml:"result"`

	// Valid reports whether Input parsed as a number.
	Valid bool `json:"valid" yaml:"valid"`
}

// Session is one converter instance: an input, a unit pair and a table.
type Session struct {
	table     *units.Table
	input     string
	from      units.UnitID
	to        units.UnitID
	precision int
	result    Result
	logger    zerolog.Logger
}

// Option configures a Session.
type Option func(*Session) error

// WithUnits selects the initial unit pair instead of the table defaults.
func WithUnits(from, to units.UnitID) Option {
	return func(s *Session) error {
		if err := s.checkUnit(from); err != nil {
			return err
		}
		if err := s.checkUnit(to); err != nil {
			return err
		}
		s.from, s.to = from, to
		return nil
	}
}

// WithInput sets the initial input text.
func WithInput(text string) Option {
	return func(s *Session) error {
		s.input = text
		return nil
	}
}

// WithPrecision overrides the table's maximum fraction digits.
func WithPrecision(digits int) Option {
	return func(s *Session) error {
		if digits < 0 {
			return fmt.Errorf("precision must be >= 0, got %d", digits)
		}
		s.precision = digits
		return nil
	}
}

// WithLogger attaches a logger that receives a debug event per recomputation.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) error {
		s.logger = logger
		return nil
	}
}

// NewSession creates a Session over table, starting from the table's default units.
func NewSession(table *units.Table, opts ...Option) (*Session, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil table", units.ErrUnknownDomain)
	}

	from, to := table.Defaults()
	s := &Session{
		table:     table,
		from:      from,
		to:        to,
		precision: table.Precision(),
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.recompute()
	return s, nil
}

// Table returns the session's unit table.
func (s *Session) Table() *units.Table { return s.table }

// Input returns the raw input text.
func (s *Session) Input() string { return s.input }

// Units returns the current from/to selection.
func (s *Session) Units() (from, to units.UnitID) { return s.from, s.to }

// Precision returns the maximum fraction digits used for the result.
func (s *Session) Precision() int { return s.precision }

// Result returns the outcome of the latest recomputation.
func (s *Session) Result() Result { return s.result }

// SetInput replaces the input text and recomputes.
func (s *Session) SetInput(text string) Result {
	s.input = text
	s.recompute()
	return s.result
}

// SetFrom selects the source unit and recomputes.
// An id outside the table leaves the session unchanged.
func (s *Session) SetFrom(id units.UnitID) (Result, error) {
	if err := s.checkUnit(id); err != nil {
		return s.result, err
	}
	s.from = id
	s.recompute()
	return s.result, nil
}

// SetTo selects the target unit and recomputes.
// An id outside the table leaves the session unchanged.
func (s *Session) SetTo(id units.UnitID) (Result, error) {
	if err := s.checkUnit(id); err != nil {
		return s.result, err
	}
	s.to = id
	s.recompute()
	return s.result, nil
}

// Swap exchanges the from and to units in one step, keeps the input, and recomputes.
// Swapping twice restores the original selection.
func (s *Session) Swap() Result {
	s.from, s.to = s.to, s.from
	s.recompute()
	return s.result
}

// SetTable switches the session to another domain. The units reset to the
// new table's defaults, the precision to the table's precision, and the
// input text is kept.
func (s *Session) SetTable(table *units.Table) (Result, error) {
	if table == nil {
		return s.result, fmt.Errorf("%w: nil table", units.ErrUnknownDomain)
	}
	s.table = table
	s.from, s.to = table.Defaults()
	s.precision = table.Precision()
	s.recompute()
	return s.result, nil
}

// SetPrecision changes the maximum fraction digits and recomputes.
func (s *Session) SetPrecision(digits int) (Result, error) {
	if digits < 0 {
		return s.result, fmt.Errorf("precision must be >= 0, got %d", digits)
	}
	s.precision = digits
	s.recompute()
	return s.result, nil
}

// checkUnit returns units.ErrUnknownUnit when id is not in the session's table.
func (s *Session) checkUnit(id units.UnitID) error {
	if !s.table.Has(id) {
		return fmt.Errorf("%w: %q in %s", units.ErrUnknownUnit, id, s.table.Domain())
	}
	return nil
}

// recompute parses the input, converts, and formats. Unparsable input
// produces the placeholder result rather than an error.
func (s *Session) recompute() {
	res := Result{
		Input:  s.input,
		Domain: s.table.Domain(),
		From:   s.from,
		To:     s.to,
		Value:  math.NaN(),
	}

	value, ok := units.ParseInput(s.input)
	if ok {
		// Both units are table members, so Convert cannot fail here.
		converted, err := s.table.Convert(value, s.from, s.to)
		if err == nil {
			res.Value = converted
			res.Valid = !math.IsNaN(converted)
		}
	}
	res.Formatted = units.FormatResult(res.Value, s.precision)
	s.result = res

	s.logger.Debug().
		Str("domain", res.Domain.String()).
		Str("from", res.From.String()).
		Str("to", res.To.String()).
		Bool("valid", res.Valid).
		Str("result", res.Formatted).
		Msg("recomputed conversion")
}
