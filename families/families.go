// SPDX-License-Identifier: MIT
//
// File: families.go
// Role: Family identifiers and the All() enumeration used by catalog/CLI.
//
// Initialisation order:
//   - Every unit in this package is a package-level variable built with
//     measure.MustStandardUnit / measure.MustUnit against measure.Default().
//   - Within each family the standard unit is declared first, and Go runs
//     package-level initialisers in dependency-then-declaration order, so the
//     standard unit is always registered before its alternates are derived.

package families

import "github.com/katalvlaran/lvmeasure/measure"

// Family identifiers.
const (
	Mass        measure.Family = "mass"
	Distance    measure.Family = "distance"
	Time        measure.Family = "time"
	Temperature measure.Family = "temperature"
	Angle       measure.Family = "angle"
	Elevation   measure.Family = "elevation"
)

// All returns every unit defined by this package, grouped by family, with
// the standard unit first in each group.
func All() map[measure.Family][]*measure.Unit {
	return map[measure.Family][]*measure.Unit{
		Mass:        {Kilograms, Grams, Milligrams, Tonnes, Pounds, Ounces},
		Distance:    {Meters, Millimeters, Centimeters, Kilometers, Inches, Feet, Yards, Miles},
		Time:        {Seconds, Milliseconds, Minutes, Hours, Days},
		Temperature: {Kelvin, Celsius, Fahrenheit, Rankine},
		Angle:       {Radians, Degrees, Gradians, Turns},
		Elevation:   {MetersAboveDatum, MetersBelowDatum},
	}
}
