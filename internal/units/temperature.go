package units

import "math"

// Temperature unit identifiers. These are the only three temperature variants.
const (
	Celsius    UnitID = "celsius"
	Fahrenheit UnitID = "fahrenheit"
	Kelvin     UnitID = "kelvin"
)

// convertTemperature maps value to Celsius and then onto the target scale.
// Each scale is an independent affine map, so no shared factor exists.
// Values below absolute zero are converted like any other.
func convertTemperature(value float64, from, to UnitID) float64 {
	return fromCelsius(toCelsius(value, from), to)
}

// toCelsius converts a reading on the given scale to Celsius.
func toCelsius(value float64, from UnitID) float64 {
	switch from {
	case Celsius:
		return value
	case Fahrenheit:
		return (value - FahrenheitOffset) * FahrenheitPerCelsiusDen / FahrenheitPerCelsiusNum
	case Kelvin:
		return value - KelvinOffset
	default:
		return math.NaN()
	}
}

// fromCelsius converts a Celsius reading to the given scale.
func fromCelsius(celsius float64, to UnitID) float64 {
	switch to {
	case Celsius:
		return celsius
	case Fahrenheit:
		return celsius*FahrenheitPerCelsiusNum/FahrenheitPerCelsiusDen + FahrenheitOffset
	case Kelvin:
		return celsius + KelvinOffset
	default:
		return math.NaN()
	}
}
