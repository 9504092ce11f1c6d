// SPDX-License-Identifier: MIT

// Package lvmeasure converts values between units of the same measurement
// family and validates them against each family's physical range.
//
// What is lvmeasure?
//
//	A small, thread-safe library built around one idea: every family
//	(mass, distance, temperature, ...) has exactly one standard unit, and
//	every other unit is an affine map onto it:
//
//		standard = value*scale - offset
//		value    = (standard + offset) / scale
//
//	Bounds are declared once on the standard unit and derived for every
//	alternate unit, so "-5 grams" and "-500 celsius" are rejected without
//	per-unit bookkeeping.
//
// Subpackages:
//
//	measure/  - Family, Unit, Registry, conversion, bounds, normalization
//	families/ - stock families: mass, distance, time, temperature, angle, elevation
//	quantity/ - value+unit pairs stored in standard units, with arithmetic
//	catalog/  - unit lookup by name and YAML-declared extra families
//	cmd/unitconv - command-line front end
//
// Quick start:
//
//	c := families.Celsius
//	k := c.ToStandard(25)                  // 298.15 kelvin
//	f, _ := measure.Convert(25, c, families.Fahrenheit) // 77
//
//	go get github.com/katalvlaran/lvmeasure/measure
package lvmeasure
