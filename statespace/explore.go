package statespace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/logdot/bottle-solver/game"
)

var tracer = otel.Tracer("bottle-solver.statespace")

// queueItem pairs a canonical state with its key and BFS depth.
type queueItem struct {
	key   string
	state game.Game
	depth int
}

// walker encapsulates mutable exploration state.
type walker struct {
	opts  Options
	ctx   context.Context
	queue []queueItem
	g     *Graph
	done  bool // a solved state ended exploration early
}

// Explore runs breadth-first search over the states reachable from start.
//
// The returned Graph is non-nil whenever start is valid, including when
// exploration stops early with an error; it then holds everything reached
// so far.
func Explore(start game.Game, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(o.Ctx, "statespace.Explore",
		trace.WithAttributes(
			attribute.Int("bottles", len(start)),
			attribute.Int("max_states", o.MaxStates),
			attribute.Bool("stop_at_solved", o.StopAtSolved),
		))
	defer span.End()

	w := &walker{
		opts: o,
		ctx:  ctx,
		g:    newGraph(64),
	}
	canon, key := start.Canonicalize()
	w.enqueue(key, canon, 0, "")

	err := w.loop()
	span.SetAttributes(
		attribute.Int("states", w.g.StateCount()),
		attribute.Int("edges", w.g.EdgeCount()),
		attribute.Bool("solved", w.g.Target() != ""),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return w.g, err
}

// enqueue records a newly discovered state and schedules it.
func (w *walker) enqueue(key string, state game.Game, d int, parent string) {
	w.g.addState(key, state, d, parent)
	if w.opts.StopAtSolved && state.IsSolved() {
		w.done = true
		return
	}
	w.queue = append(w.queue, queueItem{key: key, state: state, depth: d})
}

// loop processes the queue until empty, early stop, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("statespace: OnVisit error at depth %d: %w", item.depth, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand records every pour out of item and enqueues unseen successors.
func (w *walker) expand(item queueItem) error {
	for _, s := range item.state.Successors() {
		canon, key := s.Game.Canonicalize()
		w.g.addEdge(Edge{From: item.key, To: key, Move: s.Move})
		if w.g.HasState(key) {
			continue
		}
		if w.opts.MaxStates > 0 && w.g.StateCount() >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d states", ErrStateLimit, w.opts.MaxStates)
		}
		w.enqueue(key, canon, item.depth+1, item.key)
		if w.done {
			return nil
		}
	}

	return nil
}
