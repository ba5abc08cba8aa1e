package finch

import "math/rand/v2"

// Permutation draws the indices 0..n-1 exactly once each, in uniformly random
// order, without replacement. Search uses one instance per branching decision
// so that repeated solves do not always try candidate values in the same
// order, and no branch is biased toward low indices.
//
// The draw is a partial Fisher-Yates shuffle: each Next performs one swap, so
// a branch that is abandoned early never pays for the indices it did not
// request.
//
// A Permutation is not safe for concurrent use.
type Permutation struct {
	rng   *rand.Rand
	order []int
	next  int
}

// NewPermutation prepares a random permutation of 0..n-1 drawn from rng.
func NewPermutation(n int, rng *rand.Rand) *Permutation {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return &Permutation{rng: rng, order: order}
}

// Next returns the next undrawn index. The second result is false once all n
// indices have been drawn.
func (p *Permutation) Next() (int, bool) {
	if p.next >= len(p.order) {
		return 0, false
	}
	j := p.next + p.rng.IntN(len(p.order)-p.next)
	p.order[p.next], p.order[j] = p.order[j], p.order[p.next]
	i := p.order[p.next]
	p.next++
	return i, true
}

// Remaining reports how many indices have not been drawn yet.
func (p *Permutation) Remaining() int { return len(p.order) - p.next }
