// SPDX-License-Identifier: MIT
// Package: lvmeasure/catalog
//
// errors.go: sentinel errors for the catalog package.
// Callers branch with errors.Is; context is attached with %w at the call site.

package catalog

import "errors"

var (
	// ErrUnitNotFound indicates no unit with the requested name exists.
	ErrUnitNotFound = errors.New("catalog: unit not found")

	// ErrAmbiguousUnit indicates an unqualified name matches units in more
	// than one family; qualify it as "family:name".
	ErrAmbiguousUnit = errors.New("catalog: unit name is ambiguous")

	// ErrDuplicateUnitName indicates a family already has a unit with that name.
	ErrDuplicateUnitName = errors.New("catalog: duplicate unit name")

	// ErrUnnamedUnit indicates a unit without a name was added to a catalog.
	ErrUnnamedUnit = errors.New("catalog: unit has no name")

	// ErrInvalidDocument indicates a malformed or inconsistent catalog document.
	ErrInvalidDocument = errors.New("catalog: invalid document")
)
