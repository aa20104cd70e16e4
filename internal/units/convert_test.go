package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValues covers zero, negatives, fractions and large magnitudes.
//
//nolint:gochecknoglobals // Shared test fixture.
var sampleValues = []float64{0, 1, -1, 0.5, -40, 37.5, 100, 1234.5678, 1e6, -2.75e9}

func TestConvert_RoundTripEveryPair(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Domain().String(), func(t *testing.T) {
			for _, a := range table.IDs() {
				for _, b := range table.IDs() {
					for _, x := range sampleValues {
						there, err := table.Convert(x, a, b)
						require.NoError(t, err)
						back, err := table.Convert(there, b, a)
						require.NoError(t, err)

						tolerance := 1e-9 * math.Max(1, math.Abs(x))
						assert.InDelta(t, x, back, tolerance, "%s -> %s -> %s for %v", a, b, a, x)
					}
				}
			}
		})
	}
}

func TestConvert_SameUnitIsExact(t *testing.T) {
	for _, table := range Tables() {
		for _, id := range table.IDs() {
			for _, x := range sampleValues {
				got, err := table.Convert(x, id, id)
				require.NoError(t, err)
				assert.Equal(t, x, got, "%s/%s", table.Domain(), id)
			}
		}
	}
}

func TestConvert_NaNPropagates(t *testing.T) {
	for _, table := range Tables() {
		from, to := table.Defaults()
		got, err := table.Convert(math.NaN(), from, to)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got), "%s", table.Domain())
		assert.Equal(t, Placeholder, FormatResult(got, table.Precision()))
	}
}

func TestConvert_FixedPoints(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		value  float64
		from   UnitID
		to     UnitID
		want   float64
		delta  float64
	}{
		// Temperature
		{"0 C is 32 F", DomainTemperature, 0, Celsius, Fahrenheit, 32, 0},
		{"100 C is 212 F", DomainTemperature, 100, Celsius, Fahrenheit, 212, 0},
		{"0 C is 273.15 K", DomainTemperature, 0, Celsius, Kelvin, 273.15, 0},
		{"273.15 K is 0 C", DomainTemperature, 273.15, Kelvin, Celsius, 0, 0},
		{"212 F is 100 C", DomainTemperature, 212, Fahrenheit, Celsius, 100, 1e-12},
		{"-40 C is -40 F", DomainTemperature, -40, Celsius, Fahrenheit, -40, 1e-12},
		{"32 F is 273.15 K", DomainTemperature, 32, Fahrenheit, Kelvin, 273.15, 1e-9},
		{"negative kelvin is not rejected", DomainTemperature, -10, Kelvin, Celsius, -283.15, 1e-9},

		// Length
		{"1 km is 1000 m", DomainLength, 1, Kilometer, Meter, 1000, 0},
		{"1 mile is 1609.34 m", DomainLength, 1, Mile, Meter, 1609.34, 0.01},
		{"12 in is 1 ft", DomainLength, 12, Inch, Foot, 1, 1e-12},
		{"1 nmi is 1852 m", DomainLength, 1, NauticalMile, Meter, 1852, 0},

		// Data storage
		{"1 byte is 8 bits", DomainData, 1, Byte, Bit, 8, 0},
		{"1 GB is 1000 MB", DomainData, 1, Gigabyte, Megabyte, 1000, 0},
		{"1 GiB is 1024 MiB", DomainData, 1, Gibibyte, Mebibyte, 1024, 0},
		{"1 KiB is 1024 bytes", DomainData, 1, Kibibyte, Byte, 1024, 0},

		// Others
		{"1 hectare is 10000 m2", DomainArea, 1, Hectare, SquareMeter, 10_000, 0},
		{"1 gallon is 3.785 L", DomainVolume, 1, Gallon, Liter, 3.785411784, 1e-12},
		{"1 lb is 16 oz", DomainWeight, 1, Pound, Ounce, 16, 1e-9},
		{"100 km/h is 62.137 mph", DomainSpeed, 100, KilometerPerHour, MilePerHour, 62.137119, 1e-6},
		{"1 atm is 1.01325 bar", DomainPressure, 1, Atmosphere, Bar, 1.01325, 1e-12},
		{"1 atm is 760 torr", DomainPressure, 1, Atmosphere, Torr, 760, 1e-9},
		{"pi rad is 180 deg", DomainAngle, math.Pi, Radian, Degree, 180, 1e-12},
		{"1 turn is 400 grad", DomainAngle, 1, Turn, Gradian, 400, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to, tt.domain)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestConvert_UnknownDomain(t *testing.T) {
	_, err := Convert(1, Meter, Kilometer, "luminosity")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestBuiltinTables_Invariants(t *testing.T) {
	seen := make(map[UnitID]Domain)
	for _, table := range Tables() {
		assert.GreaterOrEqual(t, table.Len(), 2, "%s", table.Domain())
		assert.True(t, table.Has(table.Base()), "%s base", table.Domain())

		for _, u := range table.Units() {
			if other, dup := seen[u.ID]; dup {
				t.Errorf("unit %q appears in %s and %s", u.ID, other, table.Domain())
			}
			seen[u.ID] = table.Domain()
			assert.NotEmpty(t, u.Label, "%s label", u.ID)
			assert.NotEmpty(t, u.Symbol, "%s symbol", u.ID)

			if table.Affine() {
				continue
			}
			assert.Greater(t, u.Factor, 0.0, "%s factor", u.ID)
			if u.ID == table.Base() {
				assert.InDelta(t, 1.0, u.Factor, 0, "%s base factor", u.ID)
			}
		}
	}
}

func TestDomains_Order(t *testing.T) {
	assert.Equal(t, []Domain{
		DomainLength, DomainArea, DomainVolume, DomainWeight, DomainTemperature,
		DomainSpeed, DomainPressure, DomainAngle, DomainData,
	}, Domains())
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain(" Temperature ")
	require.NoError(t, err)
	assert.Equal(t, DomainTemperature, d)
	assert.Equal(t, "Temperature", d.Title())

	_, err = ParseDomain("currency")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDomain)
}
