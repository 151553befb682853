package solver

import (
	"context"
	"fmt"

	"github.com/logdot/bottle-solver/game"
)

// progressEvery is the number of expansions between debug progress lines.
const progressEvery = 100_000

type entryStatus uint8

const (
	inProgress entryStatus = iota // successors are being explored
	unsolvable                    // no continuation found
	solvable                      // moves and next are set
	solved                        // the state itself is solved
)

// memoEntry is the memo table record for one canonical state.
type memoEntry struct {
	state  game.Game
	status entryStatus
	moves  int    // pours to a solved state when solvable
	next   string // key of the best successor when solvable
}

// frame is one level of the explicit work-stack.
type frame struct {
	key     string
	depth   int
	succ    []game.Successor
	pos     int    // next successor to explore
	best    int    // shortest continuation so far, -1 if none
	bestKey string // successor that achieves best
}

// memoSearch holds the state of one memoized search. It is owned by a
// single Solve call and never shared.
type memoSearch struct {
	opts  Options
	ctx   context.Context
	memo  map[string]*memoEntry
	stack []*frame
	stats Stats
	ticks int // sparse cancellation checks counter
}

func newMemoSearch(ctx context.Context, o Options) *memoSearch {
	return &memoSearch{
		opts: o,
		ctx:  ctx,
		memo: make(map[string]*memoEntry, 1024),
	}
}

// run searches from start and returns the canonical states after it.
func (s *memoSearch) run(start game.Game) ([]game.Game, error) {
	canon, rootKey := start.Canonicalize()
	if _, _, err := s.enter(canon, rootKey, 0); err != nil {
		return nil, err
	}

	for len(s.stack) > 0 {
		if err := s.checkCancel(); err != nil {
			return nil, err
		}

		top := s.stack[len(s.stack)-1]
		if top.pos == len(top.succ) {
			s.leave(top)
			continue
		}
		next := top.succ[top.pos]
		top.pos++

		canon, key := next.Game.Canonicalize()
		moves, found, err := s.enter(canon, key, top.depth+1)
		if err != nil {
			return nil, err
		}
		if found {
			top.offer(key, moves)
		}
	}

	return s.chain(rootKey)
}

// enter resolves a state reached at the given depth. found reports an
// immediate answer (memo hit on a solvable state, or a solved state). A
// state met for the first time is marked in progress and pushed; its
// answer reaches the parent frame when it is left.
func (s *memoSearch) enter(state game.Game, key string, depth int) (moves int, found bool, err error) {
	if e, ok := s.memo[key]; ok {
		switch e.status {
		case solved:
			s.reachedSolved(e.state)
			return 0, true, nil
		case solvable:
			s.stats.MemoHits++
			return e.moves, true, nil
		default:
			// unsolvable, or in progress on the current path
			s.stats.MemoHits++
			return 0, false, nil
		}
	}

	if s.opts.MaxStates > 0 && len(s.memo) >= s.opts.MaxStates {
		return 0, false, fmt.Errorf("%w: %d states", ErrStateLimit, s.opts.MaxStates)
	}
	if state.IsSolved() {
		s.memo[key] = &memoEntry{state: state, status: solved}
		s.reachedSolved(state)
		return 0, true, nil
	}

	s.memo[key] = &memoEntry{state: state, status: inProgress}
	if err := s.opts.OnExpand(state, depth); err != nil {
		return 0, false, fmt.Errorf("solver: OnExpand error at depth %d: %w", depth, err)
	}
	s.stats.Expanded++
	s.stats.MaxDepth = max(s.stats.MaxDepth, depth)
	if s.stats.Expanded%progressEvery == 0 {
		s.opts.Logger.Debug("search progress",
			"expanded", s.stats.Expanded,
			"states", len(s.memo),
			"depth", depth,
		)
	}
	s.stack = append(s.stack, &frame{key: key, depth: depth, succ: state.Successors(), best: -1})

	return 0, false, nil
}

// leave pops f, overwrites its in-progress marker with the final answer and
// hands a found continuation to the parent frame.
func (s *memoSearch) leave(f *frame) {
	s.stack = s.stack[:len(s.stack)-1]
	e := s.memo[f.key]
	if f.best < 0 {
		e.status = unsolvable
	} else {
		e.status = solvable
		e.moves = f.best
		e.next = f.bestKey
	}
	f.succ = nil

	if e.status == solvable && len(s.stack) > 0 {
		s.stack[len(s.stack)-1].offer(f.key, e.moves)
	}
}

// offer records a continuation through key if it is strictly shorter.
func (f *frame) offer(key string, moves int) {
	if cand := moves + 1; f.best < 0 || cand < f.best {
		f.best = cand
		f.bestKey = key
	}
}

func (s *memoSearch) reachedSolved(state game.Game) {
	s.stats.SolvedSeen++
	s.opts.OnSolved(state)
}

// checkCancel polls the context every 1024 iterations.
func (s *memoSearch) checkCancel() error {
	s.ticks++
	if s.ticks&1023 != 1 {
		return nil
	}
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

// chain follows best-next links from the root to a solved state.
func (s *memoSearch) chain(rootKey string) ([]game.Game, error) {
	e := s.memo[rootKey]
	switch e.status {
	case solved:
		return nil, nil
	case solvable:
	default:
		return nil, ErrUnsolvable
	}

	out := make([]game.Game, 0, e.moves)
	for e.status != solved {
		e = s.memo[e.next]
		out = append(out, e.state)
	}

	return out, nil
}
