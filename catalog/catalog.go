// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Name index over *measure.Unit values, grouped by family.
//
// Concurrency:
//   - One sync.RWMutex guards both maps; Add takes the write lock, every
//     query takes the read lock.
//
// Determinism:
//   - Families() is sorted ascending; Units(f) keeps insertion order, which
//     puts the standard unit first for catalogs built by Register/Builtin.

package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/lvmeasure/families"
	"github.com/katalvlaran/lvmeasure/measure"
	"go.uber.org/zap"
)

// QualifierSeparator separates family and unit in a qualified name ("mass:grams").
const QualifierSeparator = ":"

// Catalog indexes units by family and name.
type Catalog struct {
	mu     sync.RWMutex
	byName map[measure.Family]map[string]*measure.Unit
	order  map[measure.Family][]*measure.Unit

	logger *zap.Logger
}

// Option configures a Catalog.
type Option func(c *Catalog)

// WithLogger routes catalog diagnostics to logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty Catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		byName: make(map[measure.Family]map[string]*measure.Unit),
		order:  make(map[measure.Family][]*measure.Unit),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Builtin returns a catalog of every unit in the families package.
func Builtin(opts ...Option) *Catalog {
	c := New(opts...)
	all := families.All()

	fams := make([]measure.Family, 0, len(all))
	for f := range all {
		fams = append(fams, f)
	}
	sort.Slice(fams, func(i, j int) bool { return fams[i] < fams[j] })

	for _, f := range fams {
		for _, u := range all[f] {
			if err := c.Add(u); err != nil {
				// Stock unit names are unique per family.
				panic(err)
			}
		}
	}

	return c
}

// Add indexes u under its family and name.
//
// Errors:
//   - measure.ErrNilUnit: u is nil.
//   - ErrUnnamedUnit: u.Name() is empty.
//   - ErrDuplicateUnitName: the family already has a unit with that name.
//   - measure.ErrFamilyMismatch: the family is catalogued with a different
//     standard unit (a same-named family from another registry).
func (c *Catalog) Add(u *measure.Unit) error {
	if u == nil {
		return measure.ErrNilUnit
	}
	name := u.Name()
	if name == "" {
		return fmt.Errorf("Add(%s): %w", u, ErrUnnamedUnit)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// One standard unit per family: every unit must share the catalogued one.
	if known := c.order[u.Family()]; len(known) > 0 && !known[0].SameFamily(u) {
		return fmt.Errorf("Add(%s%s%s): standard %s is not the catalogued %s: %w",
			u.Family(), QualifierSeparator, name, u.Standard(), known[0].Standard(), measure.ErrFamilyMismatch)
	}

	names, ok := c.byName[u.Family()]
	if !ok {
		names = make(map[string]*measure.Unit)
		c.byName[u.Family()] = names
	}
	if _, exists := names[name]; exists {
		return fmt.Errorf("Add(%s%s%s): %w", u.Family(), QualifierSeparator, name, ErrDuplicateUnitName)
	}
	names[name] = u
	c.order[u.Family()] = append(c.order[u.Family()], u)

	c.logger.Debug("catalogued unit",
		zap.String("family", string(u.Family())),
		zap.String("unit", name),
		zap.Bool("standard", u.IsStandard()),
	)

	return nil
}

// Lookup returns the unit called name in family.
func (c *Catalog) Lookup(family measure.Family, name string) (*measure.Unit, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if u, ok := c.byName[family][name]; ok {
		return u, nil
	}

	return nil, fmt.Errorf("Lookup(%s%s%s): %w", family, QualifierSeparator, name, ErrUnitNotFound)
}

// Find resolves a unit by name across all families.
//
// A qualified name "family:name" is looked up directly. An unqualified name
// must match exactly one family's unit, otherwise ErrAmbiguousUnit.
func (c *Catalog) Find(name string) (*measure.Unit, error) {
	if family, unit, ok := strings.Cut(name, QualifierSeparator); ok {
		return c.Lookup(measure.Family(family), unit)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		found   *measure.Unit
		matches []string
	)
	for f, names := range c.byName {
		if u, ok := names[name]; ok {
			found = u
			matches = append(matches, string(f))
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("Find(%s): %w", name, ErrUnitNotFound)
	case 1:
		return found, nil
	default:
		sort.Strings(matches)

		return nil, fmt.Errorf("Find(%s): %w (families: %s)", name, ErrAmbiguousUnit, strings.Join(matches, ", "))
	}
}

// Units returns the units of family in insertion order, or nil.
func (c *Catalog) Units(family measure.Family) []*measure.Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	src := c.order[family]
	if len(src) == 0 {
		return nil
	}
	out := make([]*measure.Unit, len(src))
	copy(out, src)

	return out
}

// Families returns every family with at least one catalogued unit, sorted.
func (c *Catalog) Families() []measure.Family {
	c.mu.RLock()
	out := make([]measure.Family, 0, len(c.order))
	for f := range c.order {
		out = append(out, f)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the total number of catalogued units.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, units := range c.order {
		n += len(units)
	}

	return n
}
