package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is displayed in place of a result when the input is not a number.
const Placeholder = "-"

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatResult formats a conversion result for display.
//
// The value is rounded to at most maxFractionDigits fraction digits, grouped
// with thousand separators, and trailing fractional zeros are dropped:
// FormatResult(1609.344, 2) returns "1,609.34" and FormatResult(212, 2)
// returns "212". NaN renders as Placeholder.
func FormatResult(value float64, maxFractionDigits int) string {
	if math.IsNaN(value) {
		return Placeholder
	}

	digits := min(max(maxFractionDigits, 0), MaxPrecision)
	format := fmt.Sprintf("%%.%df", digits)
	formatted := printer.Sprintf(format, value)

	formatted = trimFraction(formatted)
	if formatted == "-0" {
		formatted = "0"
	}
	return formatted
}

// trimFraction drops trailing zeros after the decimal point, and the point itself
// when nothing remains.
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseInput parses user-supplied text as a floating-point number.
//
// Surrounding whitespace is ignored. Only plain decimal notation with an
// optional exponent is accepted, plus "Inf" and "Infinity"; Go literal
// forms such as hex floats and digit underscores are not. Empty or
// unparsable text yields (NaN, false); callers display Placeholder rather
// than an error.
func ParseInput(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !isDecimalLiteral(text) {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// isDecimalLiteral reports whether s uses only decimal number characters,
// or is a signed infinity.
func isDecimalLiteral(s string) bool {
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "inf", "infinity":
		return true
	}
	return strings.Trim(s, "0123456789.eE+-") == ""
}
