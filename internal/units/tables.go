package units

// Length units.
const (
	Millimeter   UnitID = "millimeter"
	Centimeter   UnitID = "centimeter"
	Meter        UnitID = "meter"
	Kilometer    UnitID = "kilometer"
	Inch         UnitID = "inch"
	Foot         UnitID = "foot"
	Yard         UnitID = "yard"
	Mile         UnitID = "mile"
	NauticalMile UnitID = "nautical_mile"
)

// Area units.
const (
	SquareMillimeter UnitID = "square_millimeter"
	SquareCentimeter UnitID = "square_centimeter"
	SquareMeter      UnitID = "square_meter"
	Hectare          UnitID = "hectare"
	SquareKilometer  UnitID = "square_kilometer"
	SquareInch       UnitID = "square_inch"
	SquareFoot       UnitID = "square_foot"
	SquareYard       UnitID = "square_yard"
	Acre             UnitID = "acre"
	SquareMile       UnitID = "square_mile"
)

// Volume units.
const (
	Milliliter      UnitID = "milliliter"
	Liter           UnitID = "liter"
	CubicMeter      UnitID = "cubic_meter"
	CubicCentimeter UnitID = "cubic_centimeter"
	Teaspoon        UnitID = "teaspoon"
	Tablespoon      UnitID = "tablespoon"
	FluidOunce      UnitID = "fluid_ounce"
	Cup             UnitID = "cup"
	Pint            UnitID = "pint"
	Quart           UnitID = "quart"
	Gallon          UnitID = "gallon"
	CubicInch       UnitID = "cubic_inch"
	CubicFoot       UnitID = "cubic_foot"
)

// Weight units.
const (
	Microgram UnitID = "microgram"
	Milligram UnitID = "milligram"
	Gram      UnitID = "gram"
	Kilogram  UnitID = "kilogram"
	MetricTon UnitID = "metric_ton"
	Carat     UnitID = "carat"
	Ounce     UnitID = "ounce"
	TroyOunce UnitID = "troy_ounce"
	Pound     UnitID = "pound"
	Stone     UnitID = "stone"
	ShortTon  UnitID = "short_ton"
	LongTon   UnitID = "long_ton"
)

// Speed units.
const (
	MeterPerSecond   UnitID = "meter_per_second"
	KilometerPerHour UnitID = "kilometer_per_hour"
	MilePerHour      UnitID = "mile_per_hour"
	Knot             UnitID = "knot"
	FootPerSecond    UnitID = "foot_per_second"
	Mach             UnitID = "mach"
)

// Pressure units.
const (
	Pascal              UnitID = "pascal"
	Kilopascal          UnitID = "kilopascal"
	Megapascal          UnitID = "megapascal"
	Bar                 UnitID = "bar"
	Millibar            UnitID = "millibar"
	Atmosphere          UnitID = "atmosphere"
	PSI                 UnitID = "psi"
	Torr                UnitID = "torr"
	MillimeterOfMercury UnitID = "millimeter_of_mercury"
	InchOfMercury       UnitID = "inch_of_mercury"
)

// Angle units.
const (
	Degree      UnitID = "degree"
	Radian      UnitID = "radian"
	Milliradian UnitID = "milliradian"
	Gradian     UnitID = "gradian"
	Arcminute   UnitID = "arcminute"
	Arcsecond   UnitID = "arcsecond"
	Turn        UnitID = "turn"
)

// Data storage units.
const (
	Bit      UnitID = "bit"
	Byte     UnitID = "byte"
	Kilobyte UnitID = "kilobyte"
	Megabyte UnitID = "megabyte"
	Gigabyte UnitID = "gigabyte"
	Terabyte UnitID = "terabyte"
	Petabyte UnitID = "petabyte"
	Kibibyte UnitID = "kibibyte"
	Mebibyte UnitID = "mebibyte"
	Gibibyte UnitID = "gibibyte"
	Tebibyte UnitID = "tebibyte"
)

// builtinTables returns the definitions of every built-in domain in presentation order.
func builtinTables() []tableDef {
	return []tableDef{
		{
			domain: DomainLength,
			base:   Meter,
			units: []Unit{
				unit(Millimeter, "Millimeter", "mm", MetersPerMillimeter),
				unit(Centimeter, "Centimeter", "cm", MetersPerCentimeter),
				unit(Meter, "Meter", "m", 1, "metre"),
				unit(Kilometer, "Kilometer", "km", MetersPerKilometer, "kilometre"),
				unit(Inch, "Inch", "in", MetersPerInch, "inches", "\""),
				unit(Foot, "Foot", "ft", MetersPerFoot, "feet", "'"),
				unit(Yard, "Yard", "yd", MetersPerYard),
				unit(Mile, "Mile", "mi", MetersPerMile),
				unit(NauticalMile, "Nautical Mile", "nmi", MetersPerNauticalMile, "NM"),
			},
			opts: []TableOption{WithDefaults(Kilometer, Mile)},
		},
		{
			domain: DomainArea,
			base:   SquareMeter,
			units: []Unit{
				unit(SquareMillimeter, "Square Millimeter", "mm²", SquareMetersPerSquareMillimeter, "mm2", "sq_mm"),
				unit(SquareCentimeter, "Square Centimeter", "cm²", SquareMetersPerSquareCentimeter, "cm2", "sq_cm"),
				unit(SquareMeter, "Square Meter", "m²", 1, "m2", "sq_m"),
				unit(Hectare, "Hectare", "ha", SquareMetersPerHectare),
				unit(SquareKilometer, "Square Kilometer", "km²", SquareMetersPerSquareKilometer, "km2", "sq_km"),
				unit(SquareInch, "Square Inch", "in²", SquareMetersPerSquareInch, "in2", "sq_in"),
				unit(SquareFoot, "Square Foot", "ft²", SquareMetersPerSquareFoot, "ft2", "sq_ft", "square_feet"),
				unit(SquareYard, "Square Yard", "yd²", SquareMetersPerSquareYard, "yd2", "sq_yd"),
				unit(Acre, "Acre", "ac", SquareMetersPerAcre),
				unit(SquareMile, "Square Mile", "mi²", SquareMetersPerSquareMile, "mi2", "sq_mi"),
			},
			opts: []TableOption{WithDefaults(SquareMeter, SquareFoot)},
		},
		{
			domain: DomainVolume,
			base:   Liter,
			units: []Unit{
				unit(Milliliter, "Milliliter", "mL", LitersPerMilliliter, "ml", "millilitre"),
				unit(Liter, "Liter", "L", 1, "l", "litre"),
				unit(CubicMeter, "Cubic Meter", "m³", LitersPerCubicMeter, "m3"),
				unit(CubicCentimeter, "Cubic Centimeter", "cm³", LitersPerCubicCentimeter, "cm3", "cc"),
				unit(Teaspoon, "Teaspoon", "tsp", LitersPerTeaspoon),
				unit(Tablespoon, "Tablespoon", "tbsp", LitersPerTablespoon),
				unit(FluidOunce, "Fluid Ounce", "fl oz", LitersPerFluidOunce, "floz", "fl_oz"),
				unit(Cup, "Cup", "cup", LitersPerCup),
				unit(Pint, "Pint", "pt", LitersPerPint),
				unit(Quart, "Quart", "qt", LitersPerQuart),
				unit(Gallon, "Gallon", "gal", LitersPerGallon),
				unit(CubicInch, "Cubic Inch", "in³", LitersPerCubicInch, "in3"),
				unit(CubicFoot, "Cubic Foot", "ft³", LitersPerCubicFoot, "ft3", "cubic_feet"),
			},
			opts: []TableOption{WithDefaults(Liter, Gallon)},
		},
		{
			domain: DomainWeight,
			base:   Kilogram,
			units: []Unit{
				unit(Microgram, "Microgram", "µg", KilogramsPerMicrogram, "ug", "mcg"),
				unit(Milligram, "Milligram", "mg", KilogramsPerMilligram),
				unit(Gram, "Gram", "g", KilogramsPerGram),
				unit(Kilogram, "Kilogram", "kg", 1),
				unit(MetricTon, "Metric Ton", "t", KilogramsPerMetricTon, "tonne"),
				unit(Carat, "Carat", "ct", KilogramsPerCarat),
				unit(Ounce, "Ounce", "oz", KilogramsPerOunce),
				unit(TroyOunce, "Troy Ounce", "ozt", KilogramsPerTroyOunce),
				unit(Pound, "Pound", "lb", KilogramsPerPound, "lbs"),
				unit(Stone, "Stone", "st", KilogramsPerStone),
				unit(ShortTon, "Short Ton", "tn", KilogramsPerShortTon, "us_ton"),
				unit(LongTon, "Long Ton", "LT", KilogramsPerLongTon, "uk_ton"),
			},
			opts: []TableOption{WithDefaults(Kilogram, Pound)},
		},
		{
			domain: DomainTemperature,
			base:   Celsius,
			units: []Unit{
				unit(Celsius, "Celsius", "°C", 0, "C", "degC"),
				unit(Fahrenheit, "Fahrenheit", "°F", 0, "F", "degF"),
				unit(Kelvin, "Kelvin", "K", 0),
			},
			opts: []TableOption{
				WithDefaults(Celsius, Fahrenheit),
				WithPrecision(TemperaturePrecision),
				WithConvertFunc(convertTemperature),
			},
		},
		{
			domain: DomainSpeed,
			base:   MeterPerSecond,
			units: []Unit{
				unit(MeterPerSecond, "Meter per Second", "m/s", 1, "mps"),
				unit(KilometerPerHour, "Kilometer per Hour", "km/h", MetersPerSecondPerKilometerPerHour, "kph", "kmh"),
				unit(MilePerHour, "Mile per Hour", "mph", MetersPerSecondPerMilePerHour),
				unit(Knot, "Knot", "kn", MetersPerSecondPerKnot, "kt"),
				unit(FootPerSecond, "Foot per Second", "ft/s", MetersPerSecondPerFootPerSecond, "fps"),
				unit(Mach, "Mach", "Ma", MetersPerSecondPerMach),
			},
			opts: []TableOption{
				WithDefaults(KilometerPerHour, MilePerHour),
				WithPrecision(SpeedPrecision),
			},
		},
		{
			domain: DomainPressure,
			base:   Pascal,
			units: []Unit{
				unit(Pascal, "Pascal", "Pa", 1),
				unit(Kilopascal, "Kilopascal", "kPa", PascalsPerKilopascal),
				unit(Megapascal, "Megapascal", "MPa", PascalsPerMegapascal),
				unit(Bar, "Bar", "bar", PascalsPerBar),
				unit(Millibar, "Millibar", "mbar", PascalsPerMillibar, "hPa"),
				unit(Atmosphere, "Atmosphere", "atm", PascalsPerAtmosphere),
				unit(PSI, "Pound per Square Inch", "psi", PascalsPerPSI),
				unit(Torr, "Torr", "Torr", PascalsPerTorr),
				unit(MillimeterOfMercury, "Millimeter of Mercury", "mmHg", PascalsPerMillimeterHg),
				unit(InchOfMercury, "Inch of Mercury", "inHg", PascalsPerInchHg),
			},
			opts: []TableOption{
				WithDefaults(Bar, PSI),
				WithPrecision(PressurePrecision),
			},
		},
		{
			domain: DomainAngle,
			base:   Degree,
			units: []Unit{
				unit(Degree, "Degree", "°", 1, "deg"),
				unit(Radian, "Radian", "rad", DegreesPerRadian),
				unit(Milliradian, "Milliradian", "mrad", DegreesPerMilliradian, "mil"),
				unit(Gradian, "Gradian", "grad", DegreesPerGradian, "gon"),
				unit(Arcminute, "Arcminute", "′", DegreesPerArcminute, "arcmin"),
				unit(Arcsecond, "Arcsecond", "″", DegreesPerArcsecond, "arcsec"),
				unit(Turn, "Turn", "tr", DegreesPerTurn, "rev"),
			},
			opts: []TableOption{WithDefaults(Degree, Radian)},
		},
		{
			domain: DomainData,
			base:   Byte,
			units: []Unit{
				unit(Bit, "Bit", "b", BytesPerBit),
				unit(Byte, "Byte", "B", 1),
				unit(Kilobyte, "Kilobyte", "kB", BytesPerKilobyte),
				unit(Megabyte, "Megabyte", "MB", BytesPerMegabyte),
				unit(Gigabyte, "Gigabyte", "GB", BytesPerGigabyte),
				unit(Terabyte, "Terabyte", "TB", BytesPerTerabyte),
				unit(Petabyte, "Petabyte", "PB", BytesPerPetabyte),
				unit(Kibibyte, "Kibibyte", "KiB", BytesPerKibibyte),
				unit(Mebibyte, "Mebibyte", "MiB", BytesPerMebibyte),
				unit(Gibibyte, "Gibibyte", "GiB", BytesPerGibibyte),
				unit(Tebibyte, "Tebibyte", "TiB", BytesPerTebibyte),
			},
			opts: []TableOption{
				WithDefaults(Megabyte, Gigabyte),
				WithPrecision(DataPrecision),
			},
		},
	}
}

// tableDef is the declarative form of a built-in table.
type tableDef struct {
	domain Domain
	base   UnitID
	units  []Unit
	opts   []TableOption
}
