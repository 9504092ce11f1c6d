// Package measure is the unit-family core of lvmeasure: one standard unit per
// physical-quantity family, any number of affine alternate units, bounds
// validation and conversion to and from the standard representation.
//
// Model:
//
//	standard = value*scale - offset        // Unit.ToStandard
//	value    = (standard + offset) / scale // Unit.FromStandard
//
// The standard unit has scale 1 and offset 0 and is recorded in a Registry
// under its Family. Every other unit derives its valid range from the
// standard unit's range; a negative scale reverses ordering, so the converted
// bounds are swapped.
//
// Defining a family:
//
//	const Mass measure.Family = "mass"
//
//	var (
//		Kilograms = measure.MustStandardUnit(Mass, 0, math.Inf(1), measure.WithName("kilograms"))
//		Grams     = measure.MustUnit(Mass, 0.001, 0, measure.WithName("grams"))
//	)
//
// Package-level constructors use the process-wide Default() registry. Tests
// and embedders that need isolation create their own with NewRegistry.
//
// Errors:
//
//	ErrInvalidFamilyDefinition - class: bad bounds, scale, offset, family, or a second standard unit.
//	  ErrDuplicateStandardUnit, ErrInvalidBounds, ErrInvalidScale,
//	  ErrInvalidOffset, ErrEmptyFamily, ErrNotStandard wrap it.
//	ErrUnknownFamily           - class: no standard unit registered for the family.
//	  ErrNoStandardUnit wraps it.
//	ErrFamilyMismatch          - Convert across families.
//	ErrNilUnit                 - nil *Unit argument.
//
// Must* variants panic with the same errors; they exist for package-level
// declarations, where a failure is a defect in the family definition.
//
// Concurrency: a Registry is safe for concurrent use; a *Unit is immutable.
package measure
