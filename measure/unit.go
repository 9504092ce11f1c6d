// SPDX-License-Identifier: MIT
//
// File: unit.go
// Role: Unit construction: standard units (construct, then register) and
//       non-standard units (bounds derived from the standard unit).
//
// Ordering contract:
//   - A family's standard unit must be constructed before any of its
//     non-standard units. In Go this falls out of package-level variable
//     initialisation order when the non-standard declarations reference the
//     standard one, or simply appear after it.

package measure

import (
	"math"

	"go.uber.org/zap"
)

// NewStandardUnit constructs the standard unit of family with the valid range
// [minValue, maxValue] and registers it in r.
//
// Use math.Inf(-1) / math.Inf(1) for an unbounded side.
//
// Implementation:
//   - Stage 1: newStandard builds and validates the unit (scale 1, offset 0).
//   - Stage 2: Register publishes it; a unit that fails Stage 1 is never visible.
//
// Errors:
//   - ErrEmptyFamily, ErrInvalidBounds (class ErrInvalidFamilyDefinition).
//   - ErrDuplicateStandardUnit if family already has a standard unit.
func (r *Registry) NewStandardUnit(family Family, minValue, maxValue float64, opts ...UnitOption) (*Unit, error) {
	u, err := newStandard(family, minValue, maxValue, opts...)
	if err != nil {
		return nil, err
	}
	if err = r.Register(u); err != nil {
		return nil, err
	}

	return u, nil
}

// MustStandardUnit is like NewStandardUnit but panics on error.
// It is meant for package-level variable declarations.
func (r *Registry) MustStandardUnit(family Family, minValue, maxValue float64, opts ...UnitOption) *Unit {
	u, err := r.NewStandardUnit(family, minValue, maxValue, opts...)
	if err != nil {
		panic(err)
	}

	return u
}

// NewUnit constructs a non-standard unit of family.
//
// scale is the number of standard units in one of these units; offset is the
// displacement, in standard units, between the two origins. The valid range
// is the standard unit's range expressed in these units. A negative scale
// reverses ordering, so the converted bounds are swapped to keep min < max.
//
// Errors:
//   - ErrEmptyFamily, ErrInvalidScale, ErrInvalidOffset, ErrInvalidBounds
//     (class ErrInvalidFamilyDefinition).
//   - ErrDuplicateStandardUnit if (scale, offset) == (1, 0): such a unit would
//     be indistinguishable from the standard unit without being registered.
//   - ErrNoStandardUnit (class ErrUnknownFamily) if the family's standard unit
//     does not exist yet.
func (r *Registry) NewUnit(family Family, scale, offset float64, opts ...UnitOption) (*Unit, error) {
	if family == "" {
		return nil, measureErrorf("NewUnit", family, ErrEmptyFamily)
	}
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, measureErrorf("NewUnit", family, ErrInvalidScale)
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, measureErrorf("NewUnit", family, ErrInvalidOffset)
	}
	if scale == 1 && offset == 0 {
		return nil, measureErrorf("NewUnit", family, ErrDuplicateStandardUnit)
	}

	std, err := r.Standard(family)
	if err != nil {
		return nil, measureErrorf("NewUnit", family, ErrNoStandardUnit)
	}

	u := &Unit{
		family:    family,
		scale:     scale,
		offset:    offset,
		normalize: std.normalize,
		standard:  std,
	}
	for _, opt := range opts {
		opt(u)
	}

	if scale > 0 {
		u.minValue = u.FromStandard(std.minValue)
		u.maxValue = u.FromStandard(std.maxValue)
	} else {
		u.minValue = u.FromStandard(std.maxValue)
		u.maxValue = u.FromStandard(std.minValue)
	}
	// Extreme scales can collapse or overflow a finite range.
	if !(u.minValue < u.maxValue) {
		return nil, measureErrorf("NewUnit", family, ErrInvalidBounds)
	}

	r.logger.Debug("constructed unit",
		zap.String("family", string(family)),
		zap.String("unit", u.name),
		zap.Float64("scale", scale),
		zap.Float64("offset", offset),
	)

	return u, nil
}

// MustUnit is like NewUnit but panics on error.
// It is meant for package-level variable declarations.
func (r *Registry) MustUnit(family Family, scale, offset float64, opts ...UnitOption) *Unit {
	u, err := r.NewUnit(family, scale, offset, opts...)
	if err != nil {
		panic(err)
	}

	return u
}

// newStandard builds and validates a standard unit without publishing it.
func newStandard(family Family, minValue, maxValue float64, opts ...UnitOption) (*Unit, error) {
	if family == "" {
		return nil, measureErrorf("NewStandardUnit", family, ErrEmptyFamily)
	}
	// Written as a negation so NaN bounds fail too.
	if !(minValue < maxValue) {
		return nil, measureErrorf("NewStandardUnit", family, ErrInvalidBounds)
	}

	u := &Unit{
		family:   family,
		scale:    1.0,
		offset:   0.0,
		minValue: minValue,
		maxValue: maxValue,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.standard = u

	return u, nil
}

// NewStandardUnit constructs and registers a standard unit in Default().
func NewStandardUnit(family Family, minValue, maxValue float64, opts ...UnitOption) (*Unit, error) {
	return defaultRegistry.NewStandardUnit(family, minValue, maxValue, opts...)
}

// MustStandardUnit constructs and registers a standard unit in Default(),
// panicking on error.
func MustStandardUnit(family Family, minValue, maxValue float64, opts ...UnitOption) *Unit {
	return defaultRegistry.MustStandardUnit(family, minValue, maxValue, opts...)
}

// NewUnit constructs a non-standard unit against Default().
func NewUnit(family Family, scale, offset float64, opts ...UnitOption) (*Unit, error) {
	return defaultRegistry.NewUnit(family, scale, offset, opts...)
}

// MustUnit constructs a non-standard unit against Default(), panicking on error.
func MustUnit(family Family, scale, offset float64, opts ...UnitOption) *Unit {
	return defaultRegistry.MustUnit(family, scale, offset, opts...)
}

// Standard returns the standard unit of family from Default().
func Standard(family Family) (*Unit, error) {
	return defaultRegistry.Standard(family)
}

// MustStandard returns the standard unit of family from Default(), panicking
// if the family is unknown.
func MustStandard(family Family) *Unit {
	return defaultRegistry.MustStandard(family)
}
