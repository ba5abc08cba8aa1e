package finch

// trail.go: checkpoint/rollback machinery for backtracking.
//
// Every narrowing appends the variable's prior mask to a single append-only
// log owned by the solver. A checkpoint is just the log's length at that
// moment; rolling back truncates the log in reverse, restoring each saved
// mask, which undoes every narrowing of every variable performed since the
// mark was taken. Centralizing the log keeps mutation single-writer and
// avoids per-variable undo stacks.

// Mark identifies a point in the narrowing history of one solve. Marks are
// strictly increasing while a solve runs and are only meaningful for the
// solver that issued them.
type Mark int

type trailEntry struct {
	vid  int
	mask uint64
}

// record saves v's current mask before a narrowing mutates it.
func (s *Solver) record(v *Variable) {
	s.trail = append(s.trail, trailEntry{vid: v.id, mask: v.Value})
	if s.stats != nil && len(s.trail) > s.stats.PeakTrail {
		s.stats.PeakTrail = len(s.trail)
	}
}

// Checkpoint returns a mark for the current state of every variable.
func (s *Solver) Checkpoint() Mark { return Mark(len(s.trail)) }

// Rollback restores every variable narrowed since mark was taken and
// discards the undone history. Rolling back twice to the same mark is the
// same as rolling back once.
func (s *Solver) Rollback(mark Mark) {
	for i := len(s.trail) - 1; i >= int(mark); i-- {
		e := s.trail[i]
		v := s.vars[e.vid]
		v.Value = e.mask
		v.Previous = e.mask
	}
	s.trail = s.trail[:mark]
}
