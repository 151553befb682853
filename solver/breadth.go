package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/logdot/bottle-solver/game"
	"github.com/logdot/bottle-solver/statespace"
)

// breadthFirst explores level by level until the first solved state and
// returns the canonical states after the start.
func breadthFirst(ctx context.Context, initial game.Game, o Options) ([]game.Game, Stats, error) {
	var stats Stats
	g, err := statespace.Explore(initial,
		statespace.WithContext(ctx),
		statespace.WithMaxStates(o.MaxStates),
		statespace.WithStopAtSolved(),
		statespace.WithOnVisit(func(state game.Game, depth int) error {
			stats.Expanded++
			stats.MaxDepth = max(stats.MaxDepth, depth)
			return o.OnExpand(state, depth)
		}),
	)
	if g != nil {
		stats.States = g.StateCount()
	}
	if err != nil {
		if errors.Is(err, statespace.ErrStateLimit) {
			return nil, stats, fmt.Errorf("%w: %w", ErrStateLimit, err)
		}
		return nil, stats, err
	}

	path, err := g.SolutionPath()
	if errors.Is(err, statespace.ErrNoPath) {
		return nil, stats, ErrUnsolvable
	}
	if err != nil {
		return nil, stats, err
	}
	stats.SolvedSeen = len(g.Solved())
	o.OnSolved(path[len(path)-1])

	return path[1:], stats, nil
}
