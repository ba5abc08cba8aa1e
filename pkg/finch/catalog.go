// Package finch is a finite-domain constraint-satisfaction solver. Problems
// are stated as variables ranging over small named domains plus constraints
// relating them; the solver propagates constraints to a fixpoint and performs
// randomized backtracking search, producing a lazy sequence of complete
// assignments.
//
// Domains hold at most 64 values so that a variable's candidate set fits in a
// single 64-bit mask, giving constant-time cardinality, uniqueness, and
// membership tests on the search hot path.
//
// Typical usage:
//
//	colors := finch.MustCatalog("Red", "Green", "Blue")
//	s := finch.NewSolver(finch.WithSeed(42))
//	wa := s.NewVariable("WA", colors)
//	nt := s.NewVariable("NT", colors)
//	s.AddConstraint(finch.NewNotEqual(wa, nt))
//	sol, err := s.SolveInitial()
package finch

import (
	"errors"
	"fmt"
)

// Errors reported during problem definition.
var (
	// ErrInvalidDomain is returned when a catalog is constructed with zero
	// values, more than 64 values, or duplicate names.
	ErrInvalidDomain = errors.New("domain must hold between 1 and 64 distinct values")

	// ErrUnknownElement is returned by lookups for a name the catalog does
	// not contain.
	ErrUnknownElement = errors.New("value is not a member of the domain")
)

// Catalog is an immutable, ordered list of named atomic values for one
// problem dimension (colors, days, shifts). Each value owns one bit position
// of a 64-bit mask, fixed for the catalog's lifetime, which is why a catalog
// is limited to 64 values.
//
// A catalog is created once at problem-definition time and shared by every
// variable ranging over it.
type Catalog struct {
	names []string
	index map[string]int
}

// NewCatalog builds a catalog from an ordered list of distinct value names.
// The i-th name is assigned bit position i.
func NewCatalog(names ...string) (*Catalog, error) {
	if len(names) == 0 || len(names) > 64 {
		return nil, fmt.Errorf("%w: got %d values", ErrInvalidDomain, len(names))
	}
	c := &Catalog{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate value %q", ErrInvalidDomain, name)
		}
		c.index[name] = i
	}
	return c, nil
}

// MustCatalog is NewCatalog for statically known value lists; it panics on a
// malformed list.
func MustCatalog(names ...string) *Catalog {
	c, err := NewCatalog(names...)
	if err != nil {
		panic(err)
	}
	return c
}

// Size returns the number of values in the catalog.
func (c *Catalog) Size() int { return len(c.names) }

// Index returns the bit position assigned to name.
func (c *Catalog) Index(name string) (int, error) {
	i, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	return i, nil
}

// Name returns the value name at bit position i. It panics if i is out of
// range, mirroring slice indexing.
func (c *Catalog) Name(i int) string { return c.names[i] }

// Bit returns the single-bit mask for name.
func (c *Catalog) Bit(name string) (uint64, error) {
	i, err := c.Index(name)
	if err != nil {
		return 0, err
	}
	return 1 << uint(i), nil
}

// Mask returns the mask with the bit of every given name set. Constraints use
// it to express value sets ("weekend days", "warm colors") as a single word.
func (c *Catalog) Mask(names ...string) (uint64, error) {
	var m uint64
	for _, name := range names {
		b, err := c.Bit(name)
		if err != nil {
			return 0, err
		}
		m |= b
	}
	return m, nil
}

// FullMask returns the mask with every catalog value set, the initial state
// of a fresh variable.
func (c *Catalog) FullMask() uint64 {
	if len(c.names) == 64 {
		return ^uint64(0)
	}
	return 1<<uint(len(c.names)) - 1
}
