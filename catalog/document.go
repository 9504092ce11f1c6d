// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: YAML catalog documents: parse, validate, register into a Registry.
//
// Format:
//
//	version: "1"
//	families:
//	  - name: pressure
//	    standard: {name: pascals, min: 0}          # max defaults to .inf
//	    units:
//	      - {name: kilopascals, scale: 1000}
//	      - {name: bar, scale: 100000}
//	  - name: compass
//	    standard: {name: compass-radians, wrap: {origin: 0, period: 6.283185307179586}}
//	    units:
//	      - {name: compass-degrees, scale: 0.017453292519943295}
//
// Omitted bounds are unbounded (min -Inf, max +Inf); YAML's .inf / -.inf are
// accepted. Unknown keys are rejected.

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvmeasure/measure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Document is the root of a catalog file.
type Document struct {
	Version  string      `yaml:"version,omitempty"`
	Families []FamilyDoc `yaml:"families"`
}

// FamilyDoc declares one family: its standard unit and alternates.
type FamilyDoc struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Standard    StandardDoc `yaml:"standard"`
	Units       []UnitDoc   `yaml:"units,omitempty"`
}

// StandardDoc declares a family's standard unit.
type StandardDoc struct {
	Name string   `yaml:"name"`
	Min  *float64 `yaml:"min,omitempty"`
	Max  *float64 `yaml:"max,omitempty"`
	Wrap *WrapDoc `yaml:"wrap,omitempty"`
}

// WrapDoc declares a cyclic normalisation into [origin, origin+period).
type WrapDoc struct {
	Origin float64 `yaml:"origin"`
	Period float64 `yaml:"period"`
}

// UnitDoc declares a non-standard unit.
type UnitDoc struct {
	Name   string  `yaml:"name"`
	Scale  float64 `yaml:"scale"`
	Offset float64 `yaml:"offset,omitempty"`
}

// Load reads and parses a catalog file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}

		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the document without touching any registry: non-empty,
// unique family names; named units, unique within a family; finite wrap
// parameters with a positive period; declared standard bounds with min < max;
// unit scales finite and non-zero, offsets finite, and no unit equal to the
// standard (scale 1, offset 0).
//
// Numeric failures wrap both ErrInvalidDocument and the matching measure
// sentinel (measure.ErrInvalidScale, measure.ErrInvalidOffset,
// measure.ErrInvalidBounds, measure.ErrDuplicateStandardUnit).
func (d *Document) Validate() error {
	if len(d.Families) == 0 {
		return fmt.Errorf("%w: no families", ErrInvalidDocument)
	}

	seen := make(map[string]bool, len(d.Families))
	for i, f := range d.Families {
		if f.Name == "" {
			return fmt.Errorf("%w: families[%d]: missing name", ErrInvalidDocument, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: family %q declared twice", ErrInvalidDocument, f.Name)
		}
		seen[f.Name] = true

		if f.Standard.Name == "" {
			return fmt.Errorf("%w: family %q: standard unit has no name", ErrInvalidDocument, f.Name)
		}
		if w := f.Standard.Wrap; w != nil {
			if !(w.Period > 0) || math.IsInf(w.Period, 0) || math.IsNaN(w.Origin) || math.IsInf(w.Origin, 0) {
				return fmt.Errorf("%w: family %q: wrap needs a finite origin and a finite positive period", ErrInvalidDocument, f.Name)
			}
		}
		if minValue, maxValue := f.Standard.bounds(); !(minValue < maxValue) {
			return fmt.Errorf("%w: family %q: %w", ErrInvalidDocument, f.Name, measure.ErrInvalidBounds)
		}

		names := map[string]bool{f.Standard.Name: true}
		for j, u := range f.Units {
			if u.Name == "" {
				return fmt.Errorf("%w: family %q: units[%d]: missing name", ErrInvalidDocument, f.Name, j)
			}
			if names[u.Name] {
				return fmt.Errorf("%w: family %q: unit %q declared twice", ErrInvalidDocument, f.Name, u.Name)
			}
			names[u.Name] = true

			switch {
			case u.Scale == 0 || math.IsNaN(u.Scale) || math.IsInf(u.Scale, 0):
				return fmt.Errorf("%w: family %q: unit %q: %w", ErrInvalidDocument, f.Name, u.Name, measure.ErrInvalidScale)
			case math.IsNaN(u.Offset) || math.IsInf(u.Offset, 0):
				return fmt.Errorf("%w: family %q: unit %q: %w", ErrInvalidDocument, f.Name, u.Name, measure.ErrInvalidOffset)
			case u.Scale == 1 && u.Offset == 0:
				return fmt.Errorf("%w: family %q: unit %q: %w", ErrInvalidDocument, f.Name, u.Name, measure.ErrDuplicateStandardUnit)
			}
		}
	}

	return nil
}

// bounds returns the declared range, unbounded where omitted.
func (s StandardDoc) bounds() (minValue, maxValue float64) {
	minValue, maxValue = math.Inf(-1), math.Inf(1)
	if s.Min != nil {
		minValue = *s.Min
	}
	if s.Max != nil {
		maxValue = *s.Max
	}

	return minValue, maxValue
}

// Register defines every family of d in r and indexes the resulting units in c.
//
// The document is validated first, and every family is checked against r and
// c, so a document declaring an existing family registers nothing.
// Registration then proceeds family by family, standard unit first. The
// registry is insert-only: should a unit still fail in measure (a derived
// range that collapses under rounding), families and units registered before
// it stay registered.
//
// Errors:
//   - Validate's errors.
//   - measure.ErrDuplicateStandardUnit: r already has one of the families.
//   - measure.ErrFamilyMismatch: c already catalogues one of the families.
//   - errors from measure and Catalog.Add, wrapped with family and unit context.
func (d *Document) Register(r *measure.Registry, c *Catalog) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, f := range d.Families {
		family := measure.Family(f.Name)
		if r.Has(family) {
			return fmt.Errorf("family %q: %w", f.Name, measure.ErrDuplicateStandardUnit)
		}
		if len(c.Units(family)) > 0 {
			return fmt.Errorf("family %q: already catalogued with another standard unit: %w", f.Name, measure.ErrFamilyMismatch)
		}
	}

	for _, f := range d.Families {
		family := measure.Family(f.Name)

		opts := []measure.UnitOption{measure.WithName(f.Standard.Name)}
		if w := f.Standard.Wrap; w != nil {
			opts = append(opts, measure.WithNormalizer(measure.Wrap(w.Origin, w.Period)))
		}
		minValue, maxValue := f.Standard.bounds()

		std, err := r.NewStandardUnit(family, minValue, maxValue, opts...)
		if err != nil {
			return fmt.Errorf("family %q: standard unit %q: %w", f.Name, f.Standard.Name, err)
		}
		if err = c.Add(std); err != nil {
			return fmt.Errorf("family %q: %w", f.Name, err)
		}

		for _, ud := range f.Units {
			u, err := r.NewUnit(family, ud.Scale, ud.Offset, measure.WithName(ud.Name))
			if err != nil {
				return fmt.Errorf("family %q: unit %q: %w", f.Name, ud.Name, err)
			}
			if err = c.Add(u); err != nil {
				return fmt.Errorf("family %q: %w", f.Name, err)
			}
		}

		c.logger.Debug("registered family from catalog",
			zap.String("family", f.Name),
			zap.String("standard", f.Standard.Name),
			zap.Int("units", len(f.Units)+1),
		)
	}

	return nil
}
