package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		digits int
		want   string
	}{
		{
			name:   "integer result has no fraction",
			value:  212,
			digits: 2,
			want:   "212",
		},
		{
			name:   "rounded to max fraction digits",
			value:  1609.344,
			digits: 2,
			want:   "1,609.34",
		},
		{
			name:   "trailing zeros trimmed",
			value:  0.5,
			digits: 6,
			want:   "0.5",
		},
		{
			name:   "floating point noise hidden",
			value:  0.1 + 0.2,
			digits: 10,
			want:   "0.3",
		},
		{
			name:   "millions grouped",
			value:  1234567.891,
			digits: 2,
			want:   "1,234,567.89",
		},
		{
			name:   "negative value",
			value:  -40,
			digits: 2,
			want:   "-40",
		},
		{
			name:   "negative value rounding to zero",
			value:  -0.0001,
			digits: 2,
			want:   "0",
		},
		{
			name:   "zero digits rounds to integer",
			value:  18248.56,
			digits: 0,
			want:   "18,249",
		},
		{
			name:   "negative digits treated as zero",
			value:  2.6,
			digits: -3,
			want:   "3",
		},
		{
			name:   "zero",
			value:  0,
			digits: 4,
			want:   "0",
		},
		{
			name:   "NaN renders placeholder",
			value:  math.NaN(),
			digits: 2,
			want:   Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.value, tt.digits))
		})
	}
}

func TestFormatResult_NeverNaN(t *testing.T) {
	for digits := range MaxPrecision + 1 {
		assert.NotContains(t, FormatResult(math.NaN(), digits), "NaN")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOK bool
	}{
		{"100", 100, true},
		{"  -40.5 ", -40.5, true},
		{"1e3", 1000, true},
		{".25", 0.25, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1,000", 0, false},
		{"NaN", 0, false},
		{"1_000", 0, false},
		{"0x1p-2", 0, false},
		{"0X10", 0, false},
		{"1E-2", 0.01, true},
		{"+7", 7, true},
		{"--1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseInput(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseInput_Infinity(t *testing.T) {
	for _, text := range []string{"Inf", "+inf", "Infinity"} {
		got, ok := ParseInput(text)
		assert.True(t, ok, text)
		assert.True(t, math.IsInf(got, 1), text)
	}

	got, ok := ParseInput("-Inf")
	assert.True(t, ok)
	assert.True(t, math.IsInf(got, -1))
}

func TestEndToEnd_CelsiusToFahrenheit(t *testing.T) {
	table := MustTable(GetUnitTable(DomainTemperature))

	render := func(text string) string {
		v, _ := ParseInput(text)
		out, err := table.Convert(v, Celsius, Fahrenheit)
		if err != nil {
			return err.Error()
		}
		return FormatResult(out, table.Precision())
	}

	assert.Equal(t, "212", render("100"))
	assert.Equal(t, Placeholder, render(""))
	assert.Equal(t, Placeholder, render("abc"))
}
