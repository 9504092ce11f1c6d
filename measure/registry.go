// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Family registry: Family → standard *Unit, insert-only.
//
// Concurrency:
//   - One sync.RWMutex guards the map. Register takes the write lock for the
//     whole check-and-insert, so two racing first-time registrations of the
//     same family resolve to exactly one winner and one ErrDuplicateStandardUnit.
//   - Lookups take the read lock; registration is rare and happens during
//     package initialisation, so readers dominate.
//
// Determinism:
//   - Families() returns identifiers sorted ascending.

package measure

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps each family to its single standard unit.
//
// Entries are never removed or replaced. The zero Registry is not usable;
// create one with NewRegistry, or use the process-wide Default().
type Registry struct {
	mu        sync.RWMutex
	standards map[Family]*Unit

	logger *zap.Logger
}

// RegistryOption configures a Registry before first use.
type RegistryOption func(r *Registry)

// WithLogger routes registry diagnostics to logger.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty Registry.
// Complexity: O(len(opts)).
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		standards: make(map[Family]*Unit),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register publishes u as the standard unit of u.Family().
//
// Register is the second half of standard-unit construction; NewStandardUnit
// calls it after the unit has been fully validated. It is exported so that
// callers holding a standard unit built for one registry can publish it
// explicitly, and so the invariant "registered ⇒ fully valid" is checkable.
//
// Errors:
//   - ErrNotStandard: u is nil or its scale/offset are not (1, 0).
//   - ErrEmptyFamily: u carries the empty family.
//   - ErrDuplicateStandardUnit: the family already has a standard unit.
//
// Complexity: O(1) amortised.
func (r *Registry) Register(u *Unit) error {
	if u == nil || !u.IsStandard() {
		return measureErrorf("Register", "", ErrNotStandard)
	}
	if u.family == "" {
		return measureErrorf("Register", u.family, ErrEmptyFamily)
	}
	if !(u.minValue < u.maxValue) {
		return measureErrorf("Register", u.family, ErrInvalidBounds)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.standards[u.family]; exists {
		r.logger.Warn("rejected second standard unit",
			zap.String("family", string(u.family)),
			zap.String("registered", prev.name),
			zap.String("rejected", u.name),
		)

		return measureErrorf("Register", u.family, ErrDuplicateStandardUnit)
	}
	r.standards[u.family] = u

	r.logger.Debug("registered standard unit",
		zap.String("family", string(u.family)),
		zap.String("unit", u.name),
		zap.Float64("min", u.minValue),
		zap.Float64("max", u.maxValue),
	)

	return nil
}

// Standard returns the standard unit registered for family.
//
// Errors:
//   - ErrNoStandardUnit (class ErrUnknownFamily): nothing registered yet.
//
// Complexity: O(1).
func (r *Registry) Standard(family Family) (*Unit, error) {
	r.mu.RLock()
	u, ok := r.standards[family]
	r.mu.RUnlock()

	if !ok {
		return nil, measureErrorf("Standard", family, ErrNoStandardUnit)
	}

	return u, nil
}

// MustStandard is like Standard but panics if the family is unknown.
func (r *Registry) MustStandard(family Family) *Unit {
	u, err := r.Standard(family)
	if err != nil {
		panic(err)
	}

	return u
}

// Has reports whether family has a registered standard unit.
func (r *Registry) Has(family Family) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.standards[family]

	return ok
}

// Families returns every registered family, sorted ascending.
// Complexity: O(F·log F).
func (r *Registry) Families() []Family {
	r.mu.RLock()
	out := make([]Family, 0, len(r.standards))
	for f := range r.standards {
		out = append(out, f)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of registered families.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.standards)
}

// defaultRegistry is created at package initialisation and lives for the
// process lifetime. Concrete families register into it from their own
// package-level variable declarations.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// constructors (NewStandardUnit, NewUnit, Standard, ...).
func Default() *Registry { return defaultRegistry }
