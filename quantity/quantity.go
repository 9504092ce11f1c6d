// SPDX-License-Identifier: MIT

// Package quantity wraps a numeric value with its measurement family.
//
// A Quantity stores its value in the family's standard unit, normalised, and
// converts on the way in and out through measure.Unit. Arithmetic is limited
// to quantities of one family; there is no dimensional analysis.
//
// Errors:
//
//	ErrNotANumber  - NaN was supplied.
//	ErrOutOfRange  - the value is outside the unit's valid range.
//	measure.ErrNilUnit, measure.ErrFamilyMismatch - passed through from measure.
package quantity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmeasure/measure"
)

var (
	// ErrNotANumber indicates a NaN value.
	ErrNotANumber = errors.New("quantity: value is not a number")

	// ErrOutOfRange indicates a value outside its unit's [MinValue, MaxValue].
	ErrOutOfRange = errors.New("quantity: value out of range")
)

// Quantity is an immutable value of one measurement family.
// The zero Quantity has no family and is only useful as a placeholder.
type Quantity struct {
	value    float64       // standard units, normalised
	standard *measure.Unit // family's standard unit
}

// New creates a Quantity from value expressed in u.
//
// The value is validated in u's own representation, converted to standard
// units and normalised by the family's normalizer.
func New(value float64, u *measure.Unit) (Quantity, error) {
	if u == nil {
		return Quantity{}, measure.ErrNilUnit
	}
	if math.IsNaN(value) {
		return Quantity{}, fmt.Errorf("New(%s): %w", u, ErrNotANumber)
	}
	if !u.IsValid(value) {
		return Quantity{}, fmt.Errorf("New(%g %s): %w [%g, %g]", value, u, ErrOutOfRange, u.MinValue(), u.MaxValue())
	}

	// Validity was decided in u's representation; re-checking in standard
	// units could reject a boundary value that conversion moved by an ulp.
	return Quantity{value: u.Normalize(u.ToStandard(value)), standard: u.Standard()}, nil
}

// MustNew is like New but panics on error.
func MustNew(value float64, u *measure.Unit) Quantity {
	q, err := New(value, u)
	if err != nil {
		panic(err)
	}

	return q
}

// fromStandard validates a standard-unit value against the standard unit.
func fromStandard(value float64, std *measure.Unit) (Quantity, error) {
	if math.IsNaN(value) {
		return Quantity{}, fmt.Errorf("quantity(%s): %w", std.Family(), ErrNotANumber)
	}
	if !std.IsValid(value) {
		return Quantity{}, fmt.Errorf("quantity(%s): %g %w [%g, %g]", std.Family(), value, ErrOutOfRange, std.MinValue(), std.MaxValue())
	}

	return Quantity{value: value, standard: std}, nil
}

// Value returns the quantity in the family's standard unit.
func (q Quantity) Value() float64 { return q.value }

// Family returns the quantity's family, or "" for the zero Quantity.
func (q Quantity) Family() measure.Family {
	if q.standard == nil {
		return ""
	}

	return q.standard.Family()
}

// In returns the quantity expressed in u.
func (q Quantity) In(u *measure.Unit) (float64, error) {
	if u == nil {
		return 0, measure.ErrNilUnit
	}
	if !u.SameFamily(q.standard) {
		return 0, fmt.Errorf("In(%s): %w", u, measure.ErrFamilyMismatch)
	}

	return u.FromStandard(q.value), nil
}

// Add returns q + o. The sum is normalised and validated.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if err := q.sameFamily(o); err != nil {
		return Quantity{}, err
	}

	return fromStandard(q.standard.Normalize(q.value+o.value), q.standard)
}

// Sub returns q - o. The difference is normalised and validated, so
// subtracting a larger mass from a smaller one fails with ErrOutOfRange.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if err := q.sameFamily(o); err != nil {
		return Quantity{}, err
	}

	return fromStandard(q.standard.Normalize(q.value-o.value), q.standard)
}

// Compare returns -1, 0 or +1 as q is less than, equal to, or greater than o.
func (q Quantity) Compare(o Quantity) (int, error) {
	if err := q.sameFamily(o); err != nil {
		return 0, err
	}
	switch {
	case q.value < o.value:
		return -1, nil
	case q.value > o.value:
		return 1, nil
	default:
		return 0, nil
	}
}

func (q Quantity) sameFamily(o Quantity) error {
	if q.standard == nil || o.standard == nil {
		return measure.ErrNilUnit
	}
	if !q.standard.SameFamily(o.standard) {
		return fmt.Errorf("quantity(%s, %s): %w", q.standard.Family(), o.standard.Family(), measure.ErrFamilyMismatch)
	}

	return nil
}
