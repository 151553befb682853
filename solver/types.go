package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/logdot/bottle-solver/game"
)

// Sentinel errors for solving.
var (
	// ErrUnsolvable is returned when no solved state is reachable. It is a
	// definitive verdict, unlike the budget errors.
	ErrUnsolvable = errors.New("solver: no solution reachable")

	// ErrStateLimit is returned when the search stores more states than allowed.
	ErrStateLimit = errors.New("solver: state limit exceeded")

	// ErrTimeLimit is returned when the time budget runs out.
	ErrTimeLimit = errors.New("solver: time limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnknownStrategy is returned for strategies outside the enumeration.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Strategy selects the exhaustive search used by Solve.
type Strategy int

const (
	// Memoized is depth-first search with a per-state memo table.
	Memoized Strategy = iota
	// BreadthFirst is level-order search; always returns a nearest solution.
	BreadthFirst
)

var strategyNames = map[Strategy]string{
	Memoized:     "memo",
	BreadthFirst: "bfs",
}

// String returns the short strategy name used on the command line.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "memo" or "bfs" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Solve.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects the search algorithm.
	Strategy Strategy

	// MaxStates, if > 0, bounds the number of states the search stores.
	MaxStates int

	// TimeLimit, if > 0, bounds the wall-clock time of one search.
	TimeLimit time.Duration

	// OnExpand is called when a state's successors are generated, with the
	// number of pours between the start and that state on the current
	// search path. A non-nil error aborts the search.
	OnExpand func(state game.Game, depth int) error

	// OnSolved is called every time the search reaches a solved state.
	OnSolved func(state game.Game)

	// Logger receives debug progress lines.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns background context, the Memoized strategy, no
// budgets, no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Memoized,
		OnExpand: func(game.Game, int) error { return nil },
		OnSolved: func(game.Game) {},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
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

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if _, ok := strategyNames[s]; !ok {
			o.err = fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
			return
		}
		o.Strategy = s
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

// WithTimeLimit bounds the duration of one search. Zero disables the limit;
// negative durations are rejected.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithOnExpand registers a callback run on every expanded state.
func WithOnExpand(fn func(state game.Game, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnSolved registers a callback run on every solved state reached.
func WithOnSolved(fn func(state game.Game)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolved = fn
		}
	}
}

// WithLogger sets the logger for debug progress lines.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats reports how much work one search did.
type Stats struct {
	// Expanded counts states whose successors were generated.
	Expanded int
	// MemoHits counts lookups answered by the memo table (Memoized only).
	MemoHits int
	// SolvedSeen counts how many times a solved state was reached.
	SolvedSeen int
	// MaxDepth is the deepest search path (Memoized) or BFS level (BreadthFirst).
	MaxDepth int
	// States is the number of distinct canonical states stored.
	States int
}

// Result is the outcome of Solve.
type Result struct {
	// Start is a copy of the game passed to Solve.
	Start game.Game

	// Moves is the number of pours in the solution.
	Moves int

	// Steps are the pours, in Start's bottle positions.
	Steps []game.Move

	// Path holds the state after each step; the last one is solved.
	Path []game.Game

	// Stats is filled in whether or not a solution was found.
	Stats Stats
}

// Final returns the solved state, or Start when no pour was needed.
func (r *Result) Final() game.Game {
	if len(r.Path) == 0 {
		return r.Start
	}

	return r.Path[len(r.Path)-1]
}
