package finch

// stats.go: counters describing one solve, attached with WithStats.

import "fmt"

// Stats collects search and propagation counters for a single solve. The
// core is single-threaded, so the fields are plain ints updated in place;
// read them after the Solutions sequence ends (or between pulls).
type Stats struct {
	NodesExplored  int // branch points entered
	Backtracks     int // abandoned candidates, including post-solution ones
	SolutionsFound int // complete assignments yielded
	MaxDepth       int // deepest branch point reached
	Propagations   int // fixpoint passes completed
	PeakTrail      int // high-water mark of the undo trail
}

// String returns a one-line summary of the counters.
func (st *Stats) String() string {
	return fmt.Sprintf(
		"search: %d nodes, %d backtracks, %d solutions, max depth %d; propagation: %d passes; memory: peak trail %d",
		st.NodesExplored, st.Backtracks, st.SolutionsFound, st.MaxDepth,
		st.Propagations, st.PeakTrail,
	)
}
