package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/logdot/bottle-solver/game"
	"github.com/logdot/bottle-solver/level"
	"github.com/logdot/bottle-solver/solver"
)

type solveFlags struct {
	strategy  string
	maxStates int
	timeout   time.Duration
	verify    bool
	jobs      int
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [level...]",
		Short: "Solve built-in levels or level files",
		Long: `Each argument is the name of a built-in level (see "levels") or the path
of a YAML level file. Several levels are solved concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.strategy, "strategy", solver.Memoized.String(), "search strategy (memo, bfs)")
	fl.IntVar(&f.maxStates, "max-states", 0, "abort a search after storing this many states (0 = unlimited)")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort a search after this long (0 = unlimited)")
	fl.BoolVar(&f.verify, "verify", false, "replay every solution and compare its length with a breadth-first search")
	fl.IntVar(&f.jobs, "jobs", 0, "levels solved at once (0 = one per CPU)")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	strategy, err := solver.ParseStrategy(f.strategy)
	if err != nil {
		return err
	}

	levels := make([]*level.Level, len(args))
	games := make([]game.Game, len(args))
	for i, arg := range args {
		if levels[i], err = resolveLevel(arg); err != nil {
			return err
		}
		if games[i], err = levels[i].Game(); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}

	opts := []solver.Option{
		solver.WithMaxStates(f.maxStates),
		solver.WithTimeLimit(f.timeout),
		solver.WithLogger(a.logger),
	}
	started := time.Now()
	outcomes, err := solver.SolveAll(cmd.Context(), games, f.jobs, append(opts, solver.WithStrategy(strategy))...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	failed := 0
	for i, o := range outcomes {
		name := levels[i].Name
		if o.Err != nil {
			failed++
			a.logger.Warn("level not solved", "level", name, "err", o.Err)
			fmt.Fprintf(w, "%s: %v\n", name, o.Err)
			continue
		}
		a.logger.Info("level solved",
			"level", name,
			"moves", o.Result.Moves,
			"expanded", o.Result.Stats.Expanded,
			"states", o.Result.Stats.States,
		)
		writeSolution(w, name, o.Result)
		if f.verify {
			if err := verify(cmd.Context(), w, o.Result, strategy, opts); err != nil {
				failed++
				fmt.Fprintf(w, "%s: %v\n", name, err)
			}
		}
	}
	a.logger.Debug("solve finished", "levels", len(args), "failed", failed, "elapsed", time.Since(started))

	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(args))
	}

	return nil
}

// resolveLevel loads a built-in level by name, or a level file when arg
// looks like a path.
func resolveLevel(arg string) (*level.Level, error) {
	ext := filepath.Ext(arg)
	if strings.ContainsAny(arg, `/\`) || ext == ".yaml" || ext == ".yml" {
		return level.LoadFile(arg)
	}

	return level.Builtin(arg)
}

// verify replays res onto its start and, for memoized results, compares the
// length with a breadth-first search under the same budgets.
func verify(ctx context.Context, w io.Writer, res *solver.Result, used solver.Strategy, opts []solver.Option) error {
	cur := res.Start
	for i, m := range res.Steps {
		next, moved, err := cur.Apply(m)
		if err != nil {
			return fmt.Errorf("verify: step %d: %w", i+1, err)
		}
		if !moved || !next.Equal(res.Path[i]) {
			return fmt.Errorf("verify: step %d (%s) does not reproduce the reported state", i+1, m)
		}
		cur = next
	}
	if !cur.IsSolved() {
		return errors.New("verify: final state is not solved")
	}
	if used == solver.BreadthFirst {
		fmt.Fprintln(w, "verify: replay ok")
		return nil
	}

	nearest, err := solver.Solve(res.Start, append(opts, solver.WithContext(ctx), solver.WithStrategy(solver.BreadthFirst))...)
	if err != nil {
		return fmt.Errorf("verify: breadth-first search: %w", err)
	}
	if err := checkMinimal(res.Moves, nearest.Moves); err != nil {
		return err
	}
	fmt.Fprintf(w, "verify: replay ok, %d moves is minimal\n", res.Moves)

	return nil
}

// checkMinimal fails when a found solution is longer than the nearest one.
func checkMinimal(moves, nearest int) error {
	if nearest < moves {
		return fmt.Errorf("verify: solution has %d moves, nearest has %d", moves, nearest)
	}

	return nil
}
