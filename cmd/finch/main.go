// Command finch runs the built-in constraint-solving demos: map coloring and
// shift scheduling. It exists to exercise the solver end to end and to show
// how problems are modeled; see the examples/ directory for minimal programs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finchsolver/finch/pkg/finch"
)

var (
	flagSeed     uint64
	flagLimit    int
	flagParallel bool
	flagStats    bool
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:          "finch",
		Short:        "Finite-domain constraint solver demos",
		SilenceUsage: true,
	}
	root.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "random seed for value ordering (0 picks a fresh seed)")
	root.PersistentFlags().IntVar(&flagLimit, "limit", 0, "stop after this many solutions (0 = all)")
	root.PersistentFlags().BoolVar(&flagParallel, "parallel", false, "explore first-level branches in parallel")
	root.PersistentFlags().BoolVar(&flagStats, "stats", false, "print search statistics")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log branch and backtrack decisions")

	root.AddCommand(colorCmd(), scheduleCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func solverOptions(st *finch.Stats) []finch.SolverOption {
	var opts []finch.SolverOption
	if flagSeed != 0 {
		opts = append(opts, finch.WithSeed(flagSeed))
	}
	if flagVerbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, finch.WithLogger(slog.New(handler)))
	}
	if st != nil {
		opts = append(opts, finch.WithStats(st))
	}
	return opts
}

func runAndPrint(s *finch.Solver, st *finch.Stats) error {
	var (
		sols []finch.Solution
		err  error
	)
	if flagParallel {
		sols, err = s.SolveParallel(context.Background(), 0)
	} else {
		sols, err = s.SolveAll(context.Background(), flagLimit)
	}
	if err != nil {
		return err
	}

	highlight := color.New(color.FgGreen)
	for i, sol := range sols {
		fmt.Printf("%3d: ", i+1)
		highlight.Println(sol.String())
	}
	if len(sols) == 0 {
		color.New(color.FgRed).Println("no solution")
	}
	if flagStats && st != nil {
		fmt.Println(st.String())
	}
	return nil
}

func colorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "3-color the map of Australia",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := &finch.Stats{}
			colors := finch.MustCatalog("Red", "Green", "Blue")
			s := finch.NewSolver(solverOptions(st)...)

			wa := s.NewVariable("WA", colors)
			nt := s.NewVariable("NT", colors)
			sa := s.NewVariable("SA", colors)
			q := s.NewVariable("Q", colors)
			nsw := s.NewVariable("NSW", colors)
			v := s.NewVariable("V", colors)
			s.NewVariable("T", colors)

			for _, edge := range [][2]*finch.Variable{
				{wa, nt}, {wa, sa},
				{nt, sa}, {nt, q},
				{sa, q}, {sa, nsw}, {sa, v},
				{q, nsw},
				{nsw, v},
			} {
				s.AddConstraint(finch.NewNotEqual(edge[0], edge[1]))
			}
			return runAndPrint(s, st)
		},
	}
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Assign four staff to distinct weekdays",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := &finch.Stats{}
			days := finch.MustCatalog("Mon", "Tue", "Wed", "Thu", "Fri")
			s := finch.NewSolver(solverOptions(st)...)

			ana := s.NewVariable("ana", days)
			ben := s.NewVariable("ben", days)
			chloe := s.NewVariable("chloe", days)
			dev := s.NewVariable("dev", days)

			s.AddConstraint(finch.NewAllDifferent(ana, ben, chloe, dev))

			// Ana only works early in the week; Ben never works Friday.
			early, err := days.Mask("Mon", "Tue")
			if err != nil {
				return err
			}
			s.AddConstraint(finch.NewIs(ana, early))

			fri, err := days.Bit("Fri")
			if err != nil {
				return err
			}
			s.AddConstraint(finch.NewIsNot(ben, fri))

			return runAndPrint(s, st)
		},
	}
}
