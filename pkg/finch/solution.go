package finch

import (
	"iter"
	"strings"
)

// Binding pairs a variable name with its solved value.
type Binding struct {
	Variable string
	Value    string
}

// Solution is one complete assignment: every registered variable bound to a
// single value, ordered by variable declaration. Solutions are immutable
// snapshots; they stay valid after the solver moves on to other branches.
type Solution struct {
	bindings []Binding
}

// Len returns the number of bound variables.
func (s Solution) Len() int { return len(s.bindings) }

// Value returns the solved value for the named variable.
func (s Solution) Value(variable string) (string, bool) {
	for _, b := range s.bindings {
		if b.Variable == variable {
			return b.Value, true
		}
	}
	return "", false
}

// All iterates the bindings in variable declaration order.
func (s Solution) All() iter.Seq[Binding] {
	return func(yield func(Binding) bool) {
		for _, b := range s.bindings {
			if !yield(b) {
				return
			}
		}
	}
}

// String renders the assignment as "a = v1, b = v2", each binding in the
// same "name = value" form variables use for diagnostics.
func (s Solution) String() string {
	var b strings.Builder
	for i, bind := range s.bindings {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(bind.Variable)
		b.WriteString(" = ")
		b.WriteString(bind.Value)
	}
	return b.String()
}
