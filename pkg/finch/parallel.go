package finch

// parallel.go: branch-level parallel search over independent solver clones.
//
// The sequential core shares one trail across all branches, so two live
// branches must never touch the same variable mask. Parallelism therefore
// happens one level up: the first branch variable's candidates are dealt out
// to full clones of the solver, and each clone runs the ordinary sequential
// search over its own variables and trail.

import (
	"context"
	"sync"

	"github.com/finchsolver/finch/internal/parallel"
)

// SolveParallel enumerates every solution by exploring the candidates of the
// first branch variable concurrently, one cloned solver per candidate, on a
// pool of at most workers goroutines (0 meaning NumCPU). Solution order is
// nondeterministic; the set of solutions matches a sequential SolveAll.
//
// Every registered constraint must implement Rebinder, since each branch
// needs its own constraint graph over the cloned variables.
func (s *Solver) SolveParallel(ctx context.Context, workers int) ([]Solution, error) {
	if err := s.propagate(); err != nil {
		return nil, nil
	}
	branch := s.selectVariable()
	if branch == nil {
		return []Solution{s.snapshot()}, nil
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	var (
		mu  sync.Mutex
		out []Solution
		wg  sync.WaitGroup
	)
	for rest := branch.Value; rest != 0; rest &= rest - 1 {
		bit := rest & -rest
		clone, err := s.Clone()
		if err != nil {
			return nil, err
		}
		bound := clone.vars[branch.id]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if !bound.TryNarrow(bit) {
				return
			}
			sols, err := clone.SolveAll(ctx, 0)
			if err != nil {
				return
			}
			mu.Lock()
			out = append(out, sols...)
			mu.Unlock()
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}
