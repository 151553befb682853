package solver

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/logdot/bottle-solver/game"
)

// Outcome pairs the Result of one puzzle with its error.
type Outcome struct {
	Result *Result
	Err    error
}

// SolveAll solves every game independently, running up to jobs searches at
// once (0 means GOMAXPROCS). Outcomes are returned in input order; per-game
// failures such as ErrUnsolvable are reported in Outcome.Err and do not stop
// the other searches. Cancelling ctx stops every search still running, and
// SolveAll then also returns the context error.
//
// Each search owns its memo table. Hooks passed in opts are called from
// several goroutines and must be safe for concurrent use.
func SolveAll(ctx context.Context, games []game.Game, jobs int, opts ...Option) ([]Outcome, error) {
	if jobs < 0 {
		return nil, fmt.Errorf("%w: jobs cannot be negative (%d)", ErrOptionViolation, jobs)
	}
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	out := make([]Outcome, len(games))
	var eg errgroup.Group
	eg.SetLimit(jobs)
	for i, g := range games {
		eg.Go(func() error {
			perGame := append(slices.Clone(opts), WithContext(ctx))
			res, err := Solve(g, perGame...)
			out[i] = Outcome{Result: res, Err: err}
			return ctx.Err()
		})
	}

	return out, eg.Wait()
}
