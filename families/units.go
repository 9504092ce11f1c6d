package families

import (
	"math"

	"github.com/katalvlaran/lvmeasure/measure"
)

// Conversion constants (exact international definitions).
const (
	poundInKilograms = 0.45359237
	inchInMeters     = 0.0254
	footInMeters     = 12 * inchInMeters
	yardInMeters     = 3 * footInMeters
	mileInMeters     = 1760 * yardInMeters

	celsiusZeroInKelvin     = 273.15
	fahrenheitZeroInRankine = 459.67
)

// Mass units. Standard: kilograms, [0, +Inf).
var (
	Kilograms  = measure.MustStandardUnit(Mass, 0, math.Inf(1), measure.WithName("kilograms"))
	Grams      = measure.MustUnit(Mass, 1e-3, 0, measure.WithName("grams"))
	Milligrams = measure.MustUnit(Mass, 1e-6, 0, measure.WithName("milligrams"))
	Tonnes     = measure.MustUnit(Mass, 1e3, 0, measure.WithName("tonnes"))
	Pounds     = measure.MustUnit(Mass, poundInKilograms, 0, measure.WithName("pounds"))
	Ounces     = measure.MustUnit(Mass, poundInKilograms/16, 0, measure.WithName("ounces"))
)

// Distance units. Standard: meters, [0, +Inf).
var (
	Meters      = measure.MustStandardUnit(Distance, 0, math.Inf(1), measure.WithName("meters"))
	Millimeters = measure.MustUnit(Distance, 1e-3, 0, measure.WithName("millimeters"))
	Centimeters = measure.MustUnit(Distance, 1e-2, 0, measure.WithName("centimeters"))
	Kilometers  = measure.MustUnit(Distance, 1e3, 0, measure.WithName("kilometers"))
	Inches      = measure.MustUnit(Distance, inchInMeters, 0, measure.WithName("inches"))
	Feet        = measure.MustUnit(Distance, footInMeters, 0, measure.WithName("feet"))
	Yards       = measure.MustUnit(Distance, yardInMeters, 0, measure.WithName("yards"))
	Miles       = measure.MustUnit(Distance, mileInMeters, 0, measure.WithName("miles"))
)

// Time units. Standard: seconds, [0, +Inf). Simulation time never runs backwards.
var (
	Seconds      = measure.MustStandardUnit(Time, 0, math.Inf(1), measure.WithName("seconds"))
	Milliseconds = measure.MustUnit(Time, 1e-3, 0, measure.WithName("milliseconds"))
	Minutes      = measure.MustUnit(Time, 60, 0, measure.WithName("minutes"))
	Hours        = measure.MustUnit(Time, 3600, 0, measure.WithName("hours"))
	Days         = measure.MustUnit(Time, 86400, 0, measure.WithName("days"))
)

// Temperature units. Standard: kelvin, [0, +Inf).
//
// The offset is the standard-unit displacement of the unit's origin:
// 0 °C is 273.15 K, so Celsius carries offset -273.15.
var (
	Kelvin     = measure.MustStandardUnit(Temperature, 0, math.Inf(1), measure.WithName("kelvin"))
	Celsius    = measure.MustUnit(Temperature, 1, -celsiusZeroInKelvin, measure.WithName("celsius"))
	Fahrenheit = measure.MustUnit(Temperature, 5.0/9.0, -fahrenheitZeroInRankine*5.0/9.0, measure.WithName("fahrenheit"))
	Rankine    = measure.MustUnit(Temperature, 5.0/9.0, 0, measure.WithName("rankine"))
)

// Angle units. Standard: radians, unbounded, normalised into [0, 2π).
var (
	Radians = measure.MustStandardUnit(Angle, math.Inf(-1), math.Inf(1),
		measure.WithName("radians"),
		measure.WithNormalizer(measure.Wrap(0, 2*math.Pi)),
	)
	Degrees  = measure.MustUnit(Angle, math.Pi/180, 0, measure.WithName("degrees"))
	Gradians = measure.MustUnit(Angle, math.Pi/200, 0, measure.WithName("gradians"))
	Turns    = measure.MustUnit(Angle, 2*math.Pi, 0, measure.WithName("turns"))
)

// Elevation units. Standard: meters above the datum, unbounded.
// MetersBelowDatum runs the opposite way (scale -1), so its bounds swap.
var (
	MetersAboveDatum = measure.MustStandardUnit(Elevation, math.Inf(-1), math.Inf(1), measure.WithName("meters-above-datum"))
	MetersBelowDatum = measure.MustUnit(Elevation, -1, 0, measure.WithName("meters-below-datum"))
)
