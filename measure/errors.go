// SPDX-License-Identifier: MIT
// Package: lvmeasure/measure
//
// errors.go: sentinel errors for the measure package.
//
// Error policy:
//   • Two classes: ErrInvalidFamilyDefinition and ErrUnknownFamily.
//     Every other sentinel wraps exactly one of them, so callers may branch on
//     the class or on the specific condition with errors.Is.
//   • Both classes describe programmer misuse, not runtime conditions.
//     Must* constructors panic with them; plain constructors return them.
//   • Method context is attached with measureErrorf; sentinels stay unformatted.

package measure

import (
	"errors"
	"fmt"
)

// ErrInvalidFamilyDefinition is the class of errors raised while a family is
// being defined: bad bounds, a second standard unit, a zero or non-finite
// scale, a non-finite offset, an empty family identifier.
var ErrInvalidFamilyDefinition = errors.New("measure: invalid family definition")

// ErrUnknownFamily is the class of errors raised when a family has no
// registered standard unit yet.
var ErrUnknownFamily = errors.New("measure: unknown family")

var (
	// ErrDuplicateStandardUnit indicates that a family attempted to define a
	// second standard unit, either through NewStandardUnit/Register or through
	// NewUnit with scale 1 and offset 0.
	ErrDuplicateStandardUnit = fmt.Errorf("%w: duplicate standard unit", ErrInvalidFamilyDefinition)

	// ErrInvalidBounds indicates minValue >= maxValue (or a NaN bound).
	ErrInvalidBounds = fmt.Errorf("%w: minimum value must be below maximum value", ErrInvalidFamilyDefinition)

	// ErrInvalidScale indicates a zero, NaN or infinite scale factor.
	ErrInvalidScale = fmt.Errorf("%w: scale must be finite and non-zero", ErrInvalidFamilyDefinition)

	// ErrInvalidOffset indicates a NaN or infinite origin offset.
	ErrInvalidOffset = fmt.Errorf("%w: offset must be finite", ErrInvalidFamilyDefinition)

	// ErrEmptyFamily indicates the empty string was used as a family identifier.
	ErrEmptyFamily = fmt.Errorf("%w: family identifier is empty", ErrInvalidFamilyDefinition)

	// ErrNotStandard indicates Register received a nil or non-standard unit.
	ErrNotStandard = fmt.Errorf("%w: unit is not a standard unit", ErrInvalidFamilyDefinition)
)

// ErrNoStandardUnit indicates a lookup, or a non-standard unit construction,
// for a family whose standard unit has not been constructed.
var ErrNoStandardUnit = fmt.Errorf("%w: no standard unit registered", ErrUnknownFamily)

// ErrFamilyMismatch indicates a conversion between units of different families.
var ErrFamilyMismatch = errors.New("measure: units belong to different families")

// ErrNilUnit indicates a nil *Unit argument.
var ErrNilUnit = errors.New("measure: unit is nil")

// measureErrorf attaches method and family context to a sentinel.
func measureErrorf(method string, family Family, err error) error {
	return fmt.Errorf("%s(%q): %w", method, string(family), err)
}
