// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Family, Unit, Normalizer and the functional options that configure them.
//
// Invariants (held by every *Unit produced by this package):
//   - scale is finite and non-zero; offset is finite.
//   - minValue < maxValue, both expressed in the unit's own representation.
//   - IsStandard() ⇔ scale == 1 && offset == 0, and at most one such unit per
//     family is ever registered.
//   - A *Unit is immutable after construction; share it freely across goroutines.

package measure

// Family identifies one physical-quantity family (mass, distance, ...).
//
// A Family is a caller-chosen, stable token. Declare one constant per family
// and never reuse its value for another family:
//
//	const Mass measure.Family = "mass"
type Family string

// String returns the family identifier.
func (f Family) String() string { return string(f) }

// Normalizer folds a value, in standard units, into the family's canonical
// representative range (for example an angle into [0, 2π)).
// Implementations must be pure and deterministic.
type Normalizer func(standard float64) float64

// Unit is one measurement unit within a family.
//
// A Unit relates its own representation to the family's standard unit by an
// affine transform:
//
//	standard = value*scale - offset
//	value    = (standard + offset) / scale
//
// Units are created only through NewStandardUnit / NewUnit (or their Registry
// and Must* forms); the zero Unit is not usable.
type Unit struct {
	family Family
	name   string

	scale  float64 // standard units per one of these units
	offset float64 // standard-unit displacement between the two origins

	minValue float64 // inclusive, in these units
	maxValue float64 // inclusive, in these units

	normalize Normalizer // nil ⇒ identity
	standard  *Unit      // family's standard unit; self for a standard unit
}

// UnitOption configures a Unit during construction.
type UnitOption func(u *Unit)

// WithName attaches a human-readable label to the unit (e.g. "kilograms").
// The label is informational; lookups by name live in the catalog package.
func WithName(name string) UnitOption {
	return func(u *Unit) { u.name = name }
}

// WithNormalizer installs a family-specific normalisation strategy.
// Non-standard units inherit the standard unit's normalizer unless they set
// their own. Passing nil keeps the identity.
func WithNormalizer(fn Normalizer) UnitOption {
	return func(u *Unit) { u.normalize = fn }
}
