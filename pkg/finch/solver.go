package finch

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
)

var (
	// ErrNoSolution is returned by SolveInitial when the search space is
	// exhausted without a complete assignment.
	ErrNoSolution = errors.New("no solution satisfies the constraints")

	// ErrNarrowingFailed is the signal a Constraint returns from Narrow when
	// a TryNarrow call emptied a domain. It is normal search control flow:
	// the nearest branch point rolls back and tries the next candidate. It
	// never escapes to consumers of Solutions.
	ErrNarrowingFailed = errors.New("narrowing emptied a domain")

	// ErrNotCloneable is returned by Clone when a registered constraint does
	// not implement Rebinder.
	ErrNotCloneable = errors.New("constraint does not support rebinding")
)

// Solver owns the variables and constraints of one problem, drives
// propagation to a fixpoint, and enumerates satisfying assignments by
// randomized depth-first backtracking search.
//
// A Solver is single-use: iterating Solutions mutates variable state in
// place, so searching again requires building a new Solver. It is not safe
// for concurrent use; see SolveParallel for branch-level parallelism over
// independent clones.
type Solver struct {
	vars        []*Variable
	constraints []Constraint
	watchers    [][]int // variable id -> indices into constraints
	queue       []int   // variable ids awaiting propagation
	trail       []trailEntry
	rng         *rand.Rand
	logger      *slog.Logger
	stats       *Stats
	ctx         context.Context // non-nil only inside SolveAll
}

// SolverOption configures a Solver at construction time.
type SolverOption func(*Solver)

// WithSeed fixes the random source used for value ordering. Two solvers
// built with the same seed over the same problem enumerate solutions in the
// same order; without a seed the order varies between runs while the set of
// solutions stays the same.
func WithSeed(seed uint64) SolverOption {
	return func(s *Solver) { s.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithLogger enables debug logging of branch, backtrack, and solution events.
func WithLogger(l *slog.Logger) SolverOption {
	return func(s *Solver) { s.logger = l }
}

// WithStats attaches a statistics collector populated during search.
func WithStats(st *Stats) SolverOption {
	return func(s *Solver) { s.stats = st }
}

// NewSolver builds an empty solver. Without WithSeed the value-trial order is
// randomized from a fresh seed on every construction.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// NewVariable registers a fresh variable over catalog with the full domain.
// Declaration order is preserved and doubles as the branching tie-break, so
// registering variables in a fixed order keeps seeded solves reproducible.
func (s *Solver) NewVariable(name string, catalog *Catalog) *Variable {
	v := &Variable{
		name:     name,
		catalog:  catalog,
		id:       len(s.vars),
		solver:   s,
		Value:    catalog.FullMask(),
		Previous: catalog.FullMask(),
	}
	s.vars = append(s.vars, v)
	s.watchers = append(s.watchers, nil)
	return v
}

// Variables returns the registered variables in declaration order.
func (s *Solver) Variables() []*Variable { return s.vars }

// AddConstraint registers c and schedules its watched variables for the
// initial propagation pass.
func (s *Solver) AddConstraint(c Constraint) {
	ci := len(s.constraints)
	s.constraints = append(s.constraints, c)
	for _, v := range c.Variables() {
		s.watchers[v.id] = append(s.watchers[v.id], ci)
		s.enqueue(v)
	}
}

func (s *Solver) enqueue(v *Variable) { s.queue = append(s.queue, v.id) }

// propagate drains the worklist: for each changed variable, every constraint
// watching it is re-narrowed; narrowings re-enqueue the variables they
// change. The loop ends at a fixpoint (empty worklist) or as soon as a
// domain empties, which aborts the current branch.
func (s *Solver) propagate() error {
	for len(s.queue) > 0 {
		vid := s.queue[0]
		s.queue = s.queue[1:]
		for _, ci := range s.watchers[vid] {
			if err := s.constraints[ci].Narrow(s); err != nil {
				s.queue = s.queue[:0]
				return err
			}
		}
	}
	if s.stats != nil {
		s.stats.Propagations++
	}
	return nil
}

// selectVariable returns the first non-unique variable in declaration order,
// or nil when the assignment is complete. The fixed tie-break keeps seeded
// solves reproducible.
func (s *Solver) selectVariable() *Variable {
	for _, v := range s.vars {
		if !v.IsUnique() {
			return v
		}
	}
	return nil
}

// Solutions returns the lazy sequence of complete assignments. Production is
// demand-driven: search suspends at every solution and resumes where it left
// off, and stopping iteration early stops the search. The sequence is
// single-use because variable masks are narrowed in place during traversal.
func (s *Solver) Solutions() iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		if err := s.propagate(); err != nil {
			s.debugf("initial propagation failed", slog.String("cause", err.Error()))
			return
		}
		s.search(0, yield)
	}
}

// search implements one Select/Branch step: when every variable is unique
// the assignment is yielded and the caller backtracks to keep enumerating;
// otherwise the selected variable's UniqueValues sequence supplies commit
// points, each of which is re-propagated and searched recursively. The
// boolean result reports whether the consumer still wants solutions.
func (s *Solver) search(depth int, yield func(Solution) bool) bool {
	if s.ctx != nil && s.ctx.Err() != nil {
		return false
	}
	branch := s.selectVariable()
	if branch == nil {
		if s.stats != nil {
			s.stats.SolutionsFound++
		}
		sol := s.snapshot()
		s.debugf("solution", slog.Int("depth", depth), slog.String("assignment", sol.String()))
		return yield(sol)
	}
	if s.stats != nil {
		s.stats.NodesExplored++
		if depth > s.stats.MaxDepth {
			s.stats.MaxDepth = depth
		}
	}
	for i := range branch.UniqueValues() {
		s.debugf("branch", slog.Int("depth", depth), slog.String("variable", branch.Name()), slog.String("value", branch.catalog.Name(i)))
		if err := s.propagate(); err != nil {
			if s.stats != nil {
				s.stats.Backtracks++
			}
			s.debugf("backtrack", slog.Int("depth", depth), slog.String("variable", branch.Name()))
			continue
		}
		if !s.search(depth+1, yield) {
			return false
		}
		if s.stats != nil {
			s.stats.Backtracks++
		}
	}
	return true
}

// snapshot captures the current all-unique assignment.
func (s *Solver) snapshot() Solution {
	bindings := make([]Binding, len(s.vars))
	for i, v := range s.vars {
		name, _ := v.UniqueName()
		bindings[i] = Binding{Variable: v.name, Value: name}
	}
	return Solution{bindings: bindings}
}

// SolveInitial returns the first solution found, or ErrNoSolution when the
// search space is exhausted.
func (s *Solver) SolveInitial() (Solution, error) {
	for sol := range s.Solutions() {
		return sol, nil
	}
	return Solution{}, ErrNoSolution
}

// SolveAll collects up to limit solutions (0 meaning all), honoring ctx
// cancellation between search nodes. The solutions found before cancellation
// are returned alongside the context's error.
func (s *Solver) SolveAll(ctx context.Context, limit int) ([]Solution, error) {
	s.ctx = ctx
	defer func() { s.ctx = nil }()
	var out []Solution
	for sol := range s.Solutions() {
		out = append(out, sol)
		if limit > 0 && len(out) >= limit {
			return out, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// Clone builds an independent copy of the solver: fresh variables carrying
// the current masks, rebound constraints, and an empty trail. The clone's
// random source is split off the parent's so clones do not replay each
// other's value ordering. Every registered constraint must implement
// Rebinder.
//
// Clones are what make parallel branch exploration safe: the checkpoint and
// rollback protocol assumes no concurrent mutation, so each branch must own
// all of its variable state.
func (s *Solver) Clone() (*Solver, error) {
	out := &Solver{
		rng:    rand.New(rand.NewPCG(s.rng.Uint64(), s.rng.Uint64())),
		logger: s.logger,
	}
	mapping := make(map[*Variable]*Variable, len(s.vars))
	for _, v := range s.vars {
		nv := out.NewVariable(v.name, v.catalog)
		nv.Value = v.Value
		nv.Previous = v.Value
		mapping[v] = nv
	}
	// NewVariable pre-seeds watchers; constraints re-register below.
	for _, c := range s.constraints {
		r, ok := c.(Rebinder)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrNotCloneable, c)
		}
		out.AddConstraint(r.Rebind(mapping))
	}
	return out, nil
}

func (s *Solver) debugf(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
