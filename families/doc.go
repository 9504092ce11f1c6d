// Package families defines the stock measurement-unit families of lvmeasure:
// mass, distance, time, temperature, angle and elevation.
//
// Importing the package registers every family's standard unit in
// measure.Default(); the units are plain *measure.Unit variables:
//
//	kg := families.Pounds.ToStandard(10)     // 4.5359237
//	c, _ := measure.Convert(212, families.Fahrenheit, families.Celsius)
//
// Angle values are normalised into [0, 2π) radians; elevation demonstrates an
// order-reversing unit (meters below datum).
package families
