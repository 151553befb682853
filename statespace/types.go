package statespace

import (
	"context"
	"errors"
	"fmt"

	"github.com/logdot/bottle-solver/game"
)

// Sentinel errors for state-space exploration and queries.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("statespace: invalid option supplied")

	// ErrStateLimit is returned when exploration exceeds MaxStates.
	ErrStateLimit = errors.New("statespace: state limit exceeded")

	// ErrStateNotFound is returned when a key is not part of the graph.
	ErrStateNotFound = errors.New("statespace: state not found")

	// ErrNoPath is returned when no solved state was reached.
	ErrNoPath = errors.New("statespace: no solved state reachable")
)

// Edge is one pour between two canonical states.
type Edge struct {
	From string
	To   string
	// Move addresses bottles of the canonical From state.
	Move game.Move
}

// Option configures Explore via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Explore.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxStates, if > 0, bounds the number of stored states.
	MaxStates int

	// StopAtSolved ends exploration at the first solved state discovered.
	StopAtSolved bool

	// OnVisit is called for every dequeued state with its depth. A non-nil
	// error aborts exploration.
	OnVisit func(state game.Game, depth int) error

	err error
}

// DefaultOptions returns background context, no state limit, full
// exploration and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
		OnVisit:   func(game.Game, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates bounds the number of stored states.
//
//	n > 0: limit to n states
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithStopAtSolved ends exploration at the first solved state discovered.
func WithStopAtSolved() Option {
	return func(o *Options) { o.StopAtSolved = true }
}

// WithOnVisit registers a callback run on every dequeued state.
func WithOnVisit(fn func(state game.Game, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
