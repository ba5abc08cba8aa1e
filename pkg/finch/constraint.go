package finch

// constraint.go: the narrowing contract constraints must obey, plus the
// small built-in relations most problems are assembled from.

// Constraint is a relation over one or more variables. The solver invokes
// Narrow whenever a watched variable's domain shrinks; Narrow may call
// TryNarrow on any watched variable (including the one that triggered it)
// and must return ErrNarrowingFailed when a narrowing empties a domain.
//
// Implementations must be monotone: repeated application to fixed variable
// states only ever removes candidates, never adds them. The propagation loop
// relies on this to terminate, since every effective narrowing strictly
// reduces the total candidate count across all variables.
type Constraint interface {
	// Variables returns the variables this constraint watches.
	Variables() []*Variable

	// Narrow re-establishes the constraint after a watched variable
	// narrowed, pruning other watched variables as needed.
	Narrow(s *Solver) error

	// IsSatisfied reports whether the constraint holds for the current,
	// fully narrowed assignment.
	IsSatisfied() bool
}

// Rebinder is implemented by constraints that can participate in
// Solver.Clone, producing a copy bound to the cloned variables. All built-in
// constraints implement it.
type Rebinder interface {
	Rebind(vars map[*Variable]*Variable) Constraint
}

// pruneDistinct removes from's unique value from to's candidates.
func pruneDistinct(from, to *Variable) error {
	if !from.IsUnique() || !to.ContainsAny(from.Value) {
		return nil
	}
	if !to.TryNarrow(^from.Value) {
		return ErrNarrowingFailed
	}
	return nil
}

// NotEqual constrains two variables over the same catalog to take different
// values.
type NotEqual struct {
	a, b *Variable
}

// NewNotEqual builds an inequality constraint between a and b.
func NewNotEqual(a, b *Variable) *NotEqual { return &NotEqual{a: a, b: b} }

func (c *NotEqual) Variables() []*Variable { return []*Variable{c.a, c.b} }

func (c *NotEqual) Narrow(s *Solver) error {
	if err := pruneDistinct(c.a, c.b); err != nil {
		return err
	}
	return pruneDistinct(c.b, c.a)
}

func (c *NotEqual) IsSatisfied() bool {
	return c.a.IsUnique() && c.b.IsUnique() && c.a.Value != c.b.Value
}

func (c *NotEqual) Rebind(vars map[*Variable]*Variable) Constraint {
	return &NotEqual{a: vars[c.a], b: vars[c.b]}
}

// Same constrains two variables over the same catalog to take the same value.
type Same struct {
	a, b *Variable
}

// NewSame builds an equality constraint between a and b.
func NewSame(a, b *Variable) *Same { return &Same{a: a, b: b} }

func (c *Same) Variables() []*Variable { return []*Variable{c.a, c.b} }

func (c *Same) Narrow(s *Solver) error {
	common := c.a.Value & c.b.Value
	if !c.a.TryNarrow(common) || !c.b.TryNarrow(common) {
		return ErrNarrowingFailed
	}
	return nil
}

func (c *Same) IsSatisfied() bool {
	return c.a.IsUnique() && c.a.Value == c.b.Value
}

func (c *Same) Rebind(vars map[*Variable]*Variable) Constraint {
	return &Same{a: vars[c.a], b: vars[c.b]}
}

// AllDifferent constrains every pair of its variables to take different
// values, with singleton-based pairwise pruning.
type AllDifferent struct {
	vars []*Variable
}

// NewAllDifferent builds an all-different constraint over vars.
func NewAllDifferent(vars ...*Variable) *AllDifferent {
	return &AllDifferent{vars: append([]*Variable(nil), vars...)}
}

func (c *AllDifferent) Variables() []*Variable { return c.vars }

func (c *AllDifferent) Narrow(s *Solver) error {
	for _, v := range c.vars {
		if !v.IsUnique() {
			continue
		}
		for _, other := range c.vars {
			if other == v {
				continue
			}
			if err := pruneDistinct(v, other); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *AllDifferent) IsSatisfied() bool {
	var seen uint64
	for _, v := range c.vars {
		if !v.IsUnique() || seen&v.Value != 0 {
			return false
		}
		seen |= v.Value
	}
	return true
}

func (c *AllDifferent) Rebind(vars map[*Variable]*Variable) Constraint {
	out := make([]*Variable, len(c.vars))
	for i, v := range c.vars {
		out[i] = vars[v]
	}
	return &AllDifferent{vars: out}
}

// Is restricts a variable to a fixed set of values, expressed as a mask
// built with Catalog.Mask or Catalog.Bit.
type Is struct {
	v   *Variable
	set uint64
}

// NewIs builds a unary constraint keeping only the values of set.
func NewIs(v *Variable, set uint64) *Is { return &Is{v: v, set: set} }

func (c *Is) Variables() []*Variable { return []*Variable{c.v} }

func (c *Is) Narrow(s *Solver) error {
	if !c.v.TryNarrow(c.set) {
		return ErrNarrowingFailed
	}
	return nil
}

func (c *Is) IsSatisfied() bool { return c.v.IsUnique() && c.v.Value&c.set == c.v.Value }

func (c *Is) Rebind(vars map[*Variable]*Variable) Constraint {
	return &Is{v: vars[c.v], set: c.set}
}

// IsNot excludes a fixed set of values from a variable.
type IsNot struct {
	v   *Variable
	set uint64
}

// NewIsNot builds a unary constraint removing the values of set.
func NewIsNot(v *Variable, set uint64) *IsNot { return &IsNot{v: v, set: set} }

func (c *IsNot) Variables() []*Variable { return []*Variable{c.v} }

func (c *IsNot) Narrow(s *Solver) error {
	if !c.v.TryNarrow(^c.set) {
		return ErrNarrowingFailed
	}
	return nil
}

func (c *IsNot) IsSatisfied() bool { return c.v.IsUnique() && c.v.Value&c.set == 0 }

func (c *IsNot) Rebind(vars map[*Variable]*Variable) Constraint {
	return &IsNot{v: vars[c.v], set: c.set}
}
