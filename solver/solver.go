package solver

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/logdot/bottle-solver/game"
)

var tracer = otel.Tracer("bottle-solver.solver")

// Solve searches for a shortest sequence of pours that turns initial into a
// solved game.
//
// On success the Result holds the move count, the pours in initial's bottle
// positions and the state after each pour. An already solved game yields
// zero moves. When no solution exists Solve returns ErrUnsolvable; when a
// budget or the context stops the search first it returns ErrStateLimit,
// ErrTimeLimit or the context error. In both cases the returned Result is
// non-nil and carries the search Stats.
//
// Invalid games (see game.Game.Validate) and invalid options are rejected
// before searching, with a nil Result.
func Solve(initial game.Game, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(o.Ctx, "solver.Solve",
		trace.WithAttributes(
			attribute.String("strategy", o.Strategy.String()),
			attribute.Int("bottles", len(initial)),
			attribute.Int("max_states", o.MaxStates),
		))
	defer span.End()

	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, o.TimeLimit, ErrTimeLimit)
		defer cancel()
	}

	started := time.Now()
	res := &Result{Start: initial.Clone()}
	chain, stats, err := search(ctx, initial, o)
	res.Stats = stats
	err = budgetError(ctx, err)
	if err == nil {
		res.Steps, res.Path, err = replay(initial, chain)
		res.Moves = len(res.Steps)
	}

	o.Logger.Debug("search finished",
		"strategy", o.Strategy.String(),
		"moves", res.Moves,
		"expanded", stats.Expanded,
		"states", stats.States,
		"memo_hits", stats.MemoHits,
		"elapsed", time.Since(started),
		"err", err,
	)
	span.SetAttributes(
		attribute.Int("moves", res.Moves),
		attribute.Int("expanded", stats.Expanded),
		attribute.Int("states", stats.States),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return res, err
	}

	return res, nil
}

// search dispatches to the configured strategy and returns the canonical
// states after the start, ending with a solved one.
func search(ctx context.Context, initial game.Game, o Options) ([]game.Game, Stats, error) {
	if o.Strategy == BreadthFirst {
		return breadthFirst(ctx, initial, o)
	}
	s := newMemoSearch(ctx, o)
	chain, err := s.run(initial)
	s.stats.States = len(s.memo)

	return chain, s.stats, err
}

// budgetError maps the deadline installed by WithTimeLimit to ErrTimeLimit.
func budgetError(ctx context.Context, err error) error {
	if err != nil && errors.Is(err, context.DeadlineExceeded) && errors.Is(context.Cause(ctx), ErrTimeLimit) {
		return ErrTimeLimit
	}

	return err
}
