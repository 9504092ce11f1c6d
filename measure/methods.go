// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Conversion, validation and normalisation on an immutable *Unit.
//
// Numeric contract:
//   - ToStandard and FromStandard are algebraic inverses with exactly the
//     shapes v*scale - offset and (v + offset)/scale; round trips are stable
//     up to float64 rounding.
//   - No method clamps. Out-of-range values convert like any other value;
//     IsValid is the check.
//   - All methods are allocation-free and lock-free.

package measure

import "math"

// ToStandard converts value, expressed in u, to the family's standard unit.
// For the standard unit this is the identity.
func (u *Unit) ToStandard(value float64) float64 {
	return value*u.scale - u.offset
}

// FromStandard converts value, expressed in the family's standard unit, to u.
// For the standard unit this is the identity.
func (u *Unit) FromStandard(value float64) float64 {
	return (value + u.offset) / u.scale
}

// Normalize folds a standard-unit value into the family's canonical range.
// Families without a Normalizer return value unchanged.
func (u *Unit) Normalize(value float64) float64 {
	if u.normalize == nil {
		return value
	}

	return u.normalize(value)
}

// IsValid reports whether value, expressed in u, lies in [MinValue, MaxValue].
// Both ends are inclusive. NaN is never valid.
func (u *Unit) IsValid(value float64) bool {
	return u.minValue <= value && value <= u.maxValue
}

// Convert re-expresses value from one unit to another unit of the same family,
// pivoting through the standard unit. The value is not validated; call
// from.IsValid first when that matters.
//
// Errors:
//   - ErrNilUnit if either unit is nil.
//   - ErrFamilyMismatch if the units belong to different families, or to
//     same-named families with different standard units (separate registries).
func Convert(value float64, from, to *Unit) (float64, error) {
	if from == nil || to == nil {
		return 0, ErrNilUnit
	}
	if !from.SameFamily(to) {
		return 0, measureErrorf("Convert", from.family, ErrFamilyMismatch)
	}
	if from == to {
		return value, nil
	}

	return to.FromStandard(from.ToStandard(value)), nil
}

// Wrap returns a Normalizer that folds standard values into the half-open
// interval [origin, origin+period), e.g. Wrap(0, 2*math.Pi) for angles.
//
// NaN and ±Inf are returned unchanged: they have no representative.
// Wrap panics if period is not finite and positive, or origin is not finite;
// both are programmer errors in a family definition.
func Wrap(origin, period float64) Normalizer {
	if !(period > 0) || math.IsInf(period, 0) {
		panic("measure: Wrap period must be finite and positive")
	}
	if math.IsNaN(origin) || math.IsInf(origin, 0) {
		panic("measure: Wrap origin must be finite")
	}

	return func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		r := math.Mod(v-origin, period)
		if r < 0 {
			r += period
		}
		// r+period can round up to exactly period for tiny negative r,
		// and origin+r can round up to origin+period.
		if r >= period {
			return origin
		}
		if out := origin + r; out < origin+period {
			return out
		}

		return origin
	}
}
