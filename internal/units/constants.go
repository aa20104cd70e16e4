package units

import "math"

// Length factors, in meters per unit.
const (
	MetersPerMillimeter   = 0.001
	MetersPerCentimeter   = 0.01
	MetersPerKilometer    = 1000.0
	MetersPerInch         = 0.0254
	MetersPerFoot         = 0.3048
	MetersPerYard         = 0.9144
	MetersPerMile         = 1609.344
	MetersPerNauticalMile = 1852.0
)

// Area factors, in square meters per unit.
const (
	SquareMetersPerSquareMillimeter = 1e-6
	SquareMetersPerSquareCentimeter = 1e-4
	SquareMetersPerHectare          = 10_000.0
	SquareMetersPerSquareKilometer  = 1_000_000.0
	SquareMetersPerSquareInch       = 0.00064516
	SquareMetersPerSquareFoot       = 0.09290304
	SquareMetersPerSquareYard       = 0.83612736
	SquareMetersPerAcre             = 4046.8564224
	SquareMetersPerSquareMile       = 2_589_988.110336
)

// Volume factors, in liters per unit. US customary measures.
const (
	LitersPerMilliliter      = 0.001
	LitersPerCubicMeter      = 1000.0
	LitersPerCubicCentimeter = 0.001
	LitersPerTeaspoon        = 0.00492892159375
	LitersPerTablespoon      = 0.01478676478125
	LitersPerFluidOunce      = 0.0295735295625
	LitersPerCup             = 0.2365882365
	LitersPerPint            = 0.473176473
	LitersPerQuart           = 0.946352946
	LitersPerGallon          = 3.785411784
	LitersPerCubicInch       = 0.016387064
	LitersPerCubicFoot       = 28.316846592
)

// Weight factors, in kilograms per unit.
const (
	KilogramsPerMilligram  = 1e-6
	KilogramsPerGram       = 0.001
	KilogramsPerMetricTon  = 1000.0
	KilogramsPerOunce      = 0.028349523125
	KilogramsPerPound      = 0.45359237
	KilogramsPerStone      = 6.35029318
	KilogramsPerShortTon   = 907.18474
	KilogramsPerLongTon    = 1016.0469088
	KilogramsPerCarat      = 0.0002
	KilogramsPerTroyOunce  = 0.0311034768
	KilogramsPerMicrogram  = 1e-9
	KilogramsPerHundredwgt = 45.359237
)

// Temperature offsets and ratios for the affine conversions.
const (
	// KelvinOffset is 0 °C expressed in kelvin.
	KelvinOffset = 273.15

	// FahrenheitOffset is 0 °C expressed in degrees Fahrenheit.
	FahrenheitOffset = 32.0

	// FahrenheitPerCelsiusNum and FahrenheitPerCelsiusDen form the 9/5 ratio.
	FahrenheitPerCelsiusNum = 9.0
	FahrenheitPerCelsiusDen = 5.0
)

// Speed factors, in meters per second per unit.
const (
	MetersPerSecondPerKilometerPerHour = 1000.0 / 3600.0
	MetersPerSecondPerMilePerHour      = 0.44704
	MetersPerSecondPerKnot             = 1852.0 / 3600.0
	MetersPerSecondPerFootPerSecond    = 0.3048
	MetersPerSecondPerMach             = 340.29
)

// Pressure factors, in pascals per unit.
const (
	PascalsPerKilopascal   = 1000.0
	PascalsPerMegapascal   = 1_000_000.0
	PascalsPerBar          = 100_000.0
	PascalsPerMillibar     = 100.0
	PascalsPerAtmosphere   = 101_325.0
	PascalsPerPSI          = 6894.757293168
	PascalsPerTorr         = PascalsPerAtmosphere / 760.0
	PascalsPerMillimeterHg = 133.322387415
	PascalsPerInchHg       = 3386.389
)

// Angle factors, in degrees per unit.
const (
	DegreesPerRadian      = 180.0 / math.Pi
	DegreesPerMilliradian = DegreesPerRadian / 1000.0
	DegreesPerGradian     = 0.9
	DegreesPerArcminute   = 1.0 / 60.0
	DegreesPerArcsecond   = 1.0 / 3600.0
	DegreesPerTurn        = 360.0
)

// Data storage factors, in bytes per unit. Decimal (SI) and binary (IEC) prefixes.
const (
	BytesPerBit      = 0.125
	BytesPerKilobyte = 1e3
	BytesPerMegabyte = 1e6
	BytesPerGigabyte = 1e9
	BytesPerTerabyte = 1e12
	BytesPerPetabyte = 1e15
	BytesPerKibibyte = 1 << 10
	BytesPerMebibyte = 1 << 20
	BytesPerGibibyte = 1 << 30
	BytesPerTebibyte = 1 << 40
)

// Display precision (maximum fraction digits) per domain.
const (
	DefaultPrecision     = 6
	TemperaturePrecision = 2
	SpeedPrecision       = 4
	PressurePrecision    = 4
	DataPrecision        = 10

	// MaxPrecision bounds the fraction digits FormatResult will emit.
	MaxPrecision = 20
)
