package finch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAustralia models 3-coloring the map of Australia: seven regions, no
// two adjacent regions sharing a color. It has exactly 18 solutions.
func buildAustralia(opts ...SolverOption) *Solver {
	colors := MustCatalog("Red", "Green", "Blue")
	s := NewSolver(opts...)
	wa := s.NewVariable("WA", colors)
	nt := s.NewVariable("NT", colors)
	sa := s.NewVariable("SA", colors)
	q := s.NewVariable("Q", colors)
	nsw := s.NewVariable("NSW", colors)
	v := s.NewVariable("V", colors)
	s.NewVariable("T", colors) // island, unconstrained

	for _, edge := range [][2]*Variable{
		{wa, nt}, {wa, sa},
		{nt, sa}, {nt, q},
		{sa, q}, {sa, nsw}, {sa, v},
		{q, nsw},
		{nsw, v},
	} {
		s.AddConstraint(NewNotEqual(edge[0], edge[1]))
	}
	return s
}

func TestSolveParallelMatchesSequential(t *testing.T) {
	sequential, err := buildAustralia(WithSeed(11)).SolveAll(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, sequential, 18)

	parallel, err := buildAustralia(WithSeed(11)).SolveParallel(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t,
		sortedSolutionStrings(sequential),
		sortedSolutionStrings(parallel))
}

func TestSolveParallelOnSolvedProblem(t *testing.T) {
	c := MustCatalog("Red")
	s := NewSolver(WithSeed(1))
	s.NewVariable("A", c)

	sols, err := s.SolveParallel(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, "A = Red", sols[0].String())
}

func TestSolveParallelUnsatisfiable(t *testing.T) {
	c := MustCatalog("1")
	s := NewSolver(WithSeed(1))
	a := s.NewVariable("A", c)
	b := s.NewVariable("B", c)
	s.AddConstraint(NewNotEqual(a, b))

	sols, err := s.SolveParallel(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, sols)
}
