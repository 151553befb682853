// Package solver finds a minimum-length sequence of pours that sorts a
// liquid-sorting puzzle.
//
// What
//
//   - Solve(initial, opts...) searches the canonical state space reachable
//     from initial and returns a Result with the move count, the pours (in
//     the caller's bottle positions) and every intermediate state.
//   - Memoized (default strategy): depth-first search that stores, per
//     canonical state, the shortest continuation found to a solved state. A
//     state is marked in progress before its successors are explored, so
//     pour cycles read as "unsolvable from here" instead of recursing forever.
//   - BreadthFirst strategy: level-order search through package statespace;
//     the first solved state discovered is provably nearest.
//   - SolveAll runs independent searches for several puzzles concurrently.
//
// Memoized search
//
//	find(state):
//	    if state in memo:   return memo[state]   // hit, possibly "unsolvable"
//	    if state is solved: return 0 moves
//	    memo[state] = in progress
//	    best = none
//	    for succ in successors(state):
//	        if r := find(succ); r found and (best is none or r+1 < best):
//	            best = r+1 via succ
//	    memo[state] = best
//
//	The recursion is run on an explicit work-stack, so the call stack does
//	not grow with the search depth. Each memo entry stores its best next
//	state; the solution is rebuilt by following those links from the root.
//
// Result layout
//
//	Path excludes the start and ends with the solved state; len(Path) ==
//	len(Steps) == Moves. The search works on canonical (sorted) states; the
//	result is replayed on the caller's game so that Steps address the
//	caller's bottles and Path keeps the caller's bottle order.
//
// Options
//
//   - WithContext(ctx)        cancellation.
//   - WithStrategy(s)         Memoized or BreadthFirst.
//   - WithMaxStates(n)        abort with ErrStateLimit past n stored states (0 = no limit).
//   - WithTimeLimit(d)        abort with ErrTimeLimit after d (0 = no limit).
//   - WithOnExpand(fn)        hook on every expanded state; an error aborts.
//   - WithOnSolved(fn)        hook on every solved state reached.
//   - WithLogger(l)           debug progress lines (default: discarded).
//
// Errors
//
//   - ErrUnsolvable           no sequence of pours reaches a solved state.
//   - ErrStateLimit, ErrTimeLimit, context errors: the search did not finish;
//     no verdict.
//   - game.ErrInvalidGame     malformed input; no search is run.
//   - ErrOptionViolation, ErrUnknownStrategy for bad options.
package solver
