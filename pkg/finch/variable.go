package finch

import (
	"iter"
	"math/bits"
	"strings"
)

// Variable is a finite-domain variable: a 64-bit mask over a Catalog in which
// bit i is set exactly when the i-th catalog value is still a candidate. The
// mask only ever shrinks between rollbacks; every mutation goes through
// TryNarrow so that the owning solver's trail can undo it.
//
// Variables are created with Solver.NewVariable and live for one solve.
type Variable struct {
	name    string
	catalog *Catalog
	id      int // index into the owning solver's variable arena
	solver  *Solver

	// Value is the current candidate mask. Read freely; mutate only through
	// TryNarrow or the solver's rollback.
	Value uint64

	// Previous is the mask as it was before the most recent narrowing.
	Previous uint64
}

// Name returns the variable's diagnostic name.
func (v *Variable) Name() string { return v.name }

// Catalog returns the domain catalog the variable ranges over.
func (v *Variable) Catalog() *Catalog { return v.catalog }

// Candidates returns the number of values still possible. Population count is
// the branch-free bits.OnesCount64, since this runs on every propagation and
// branch decision.
func (v *Variable) Candidates() int { return bits.OnesCount64(v.Value) }

// IsUnique reports whether exactly one candidate remains.
func (v *Variable) IsUnique() bool { return v.Value != 0 && v.Value&(v.Value-1) == 0 }

// IsEmpty reports whether no candidate remains, i.e. the current branch is
// contradictory.
func (v *Variable) IsEmpty() bool { return v.Value == 0 }

// NarrowedElements returns the mask of values whose membership changed in the
// most recent narrowing step.
func (v *Variable) NarrowedElements() uint64 { return v.Value ^ v.Previous }

// ContainsAny reports whether any value of set is still a candidate. No side
// effects; constraints use it to decide whether narrowing is needed.
func (v *Variable) ContainsAny(set uint64) bool { return v.Value&set != 0 }

// ContainsAll reports whether every value of set is still a candidate.
func (v *Variable) ContainsAll(set uint64) bool { return v.Value&set == set }

// TryNarrow intersects the candidate mask with set. When the intersection
// removes values, the prior mask is recorded on the solver's trail and every
// constraint watching the variable is scheduled for re-propagation. When the
// intersection is empty the narrowing fails, the variable is left empty, and
// the caller must roll back to the enclosing checkpoint; this is how
// constraint violations surface during search.
func (v *Variable) TryNarrow(set uint64) bool {
	next := v.Value & set
	if next == v.Value {
		v.Previous = v.Value
		return true
	}
	v.solver.record(v)
	v.Previous = v.Value
	v.Value = next
	if next == 0 {
		return false
	}
	v.solver.enqueue(v)
	return true
}

// UniqueName returns the remaining value's name when the variable is unique.
func (v *Variable) UniqueName() (string, bool) {
	if !v.IsUnique() {
		return "", false
	}
	return v.catalog.Name(bits.TrailingZeros64(v.Value)), true
}

// Names returns the remaining candidate names in catalog order.
func (v *Variable) Names() []string {
	out := make([]string, 0, v.Candidates())
	for rest := v.Value; rest != 0; rest &= rest - 1 {
		out = append(out, v.catalog.Name(bits.TrailingZeros64(rest)))
	}
	return out
}

// UniqueValues enumerates commit points for the variable, the primitive every
// search branch is built on. An already-unique variable yields its single
// value once, without narrowing. Otherwise each remaining candidate is
// visited in the order of a fresh Permutation: the solver state is
// checkpointed, the variable is narrowed to that one value, and control is
// yielded to the caller, which observes the variable bound and may search
// deeper. When the caller comes back for the next element the checkpoint is
// rolled back first, so abandoning a branch is automatic.
//
// The sequence yields each candidate's bit position, is finite, and is not
// restartable: it mutates shared solver state in place.
func (v *Variable) UniqueValues() iter.Seq[int] {
	return func(yield func(int) bool) {
		if v.IsUnique() {
			yield(bits.TrailingZeros64(v.Value))
			return
		}
		perm := NewPermutation(v.catalog.Size(), v.solver.rng)
		for {
			i, ok := perm.Next()
			if !ok {
				return
			}
			bit := uint64(1) << uint(i)
			if v.Value&bit == 0 {
				continue
			}
			mark := v.solver.Checkpoint()
			if v.TryNarrow(bit) && !yield(i) {
				v.solver.Rollback(mark)
				return
			}
			v.solver.Rollback(mark)
		}
	}
}

// String renders the variable for diagnostics: "name = value" when unique,
// "name = { v1, v2 }" with candidates in catalog order otherwise. Tooling
// built on the solver parses this form, so it is part of the contract.
func (v *Variable) String() string {
	if name, ok := v.UniqueName(); ok {
		return v.name + " = " + name
	}
	if v.IsEmpty() {
		return v.name + " = { }"
	}
	return v.name + " = { " + strings.Join(v.Names(), ", ") + " }"
}
