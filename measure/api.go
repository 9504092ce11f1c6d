// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors on *Unit. No hidden state, no locking: every
//       field is fixed at construction.

package measure

import "fmt"

// Family returns the family the unit belongs to.
func (u *Unit) Family() Family { return u.family }

// Name returns the label given with WithName, or "".
func (u *Unit) Name() string { return u.name }

// Scale returns the number of standard units in one of these units.
func (u *Unit) Scale() float64 { return u.scale }

// Offset returns the displacement, in standard units, between this unit's
// origin and the standard unit's origin.
func (u *Unit) Offset() float64 { return u.offset }

// MinValue returns the smallest valid value, in these units.
func (u *Unit) MinValue() float64 { return u.minValue }

// MaxValue returns the largest valid value, in these units.
func (u *Unit) MaxValue() float64 { return u.maxValue }

// Bounds returns (MinValue, MaxValue).
func (u *Unit) Bounds() (minValue, maxValue float64) { return u.minValue, u.maxValue }

// IsStandard reports whether u is its family's standard unit,
// i.e. scale == 1 and offset == 0.
func (u *Unit) IsStandard() bool {
	return u.scale == 1.0 && u.offset == 0.0
}

// Standard returns the family's standard unit (u itself when u is standard).
func (u *Unit) Standard() *Unit { return u.standard }

// SameFamily reports whether u and o share one standard unit, so values
// convert between them. Units of same-named families built in different
// registries do not.
func (u *Unit) SameFamily(o *Unit) bool {
	if u == nil || o == nil {
		return false
	}

	return u.family == o.family && u.standard == o.standard
}

// String returns the unit's name, or a family/scale/offset description for
// unnamed units. Intended for diagnostics only.
func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}
	if u.name != "" {
		return u.name
	}

	return fmt.Sprintf("%s(scale=%g, offset=%g)", u.family, u.scale, u.offset)
}
