// Package catalog names units and loads extra families from YAML.
//
// A Catalog is a thread-safe index family → name → *measure.Unit. Builtin()
// indexes the stock units of the families package; Document.Register adds
// the families declared in a YAML file, registering each in a
// measure.Registry (standard unit first) and indexing the result:
//
//	doc, err := catalog.Load("units.yaml")
//	if err != nil { ... }
//	c := catalog.Builtin()
//	if err := doc.Register(measure.Default(), c); err != nil { ... }
//	kpa, err := c.Find("pressure:kilopascals")
//
// Errors:
//
//	ErrUnitNotFound, ErrAmbiguousUnit  - name resolution.
//	ErrDuplicateUnitName, ErrUnnamedUnit - Catalog.Add.
//	measure.ErrFamilyMismatch          - a family's units must share one standard unit.
//	ErrInvalidDocument                 - malformed YAML or inconsistent declarations.
//
// measure errors (ErrInvalidFamilyDefinition and friends) pass through
// Document.Register wrapped with family and unit context.
package catalog
