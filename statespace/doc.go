// Package statespace builds the graph of puzzle states reachable from a
// start game and finds the shortest route to a solved state by
// breadth-first search.
//
// What
//
//   - Vertices are canonical games, identified by game.Key.
//   - Edges are pours between canonical states; Edge.Move indexes the
//     bottles of the canonical From state.
//   - Explore expands states in non-decreasing pour count from the start,
//     recording depth and BFS parent links.
//   - The first solved state discovered is the Target; PathTo and
//     SolutionPath rebuild the route from the Root.
//
// Why
//
//	The memoized search in package solver favors speed on revisits; this
//	package is the exact, exhaustive reference. Because every pour costs
//	one move, breadth-first order discovers a nearest solved state first.
//
// Determinism
//
//	Successors are generated in row-major (From, To) order over canonical
//	states, so the visit order, depths, parents and Target are reproducible.
//
// Complexity (S = reachable states, n = bottles)
//
//   - Time:   O(S · n²) pours plus key encoding.
//   - Memory: O(S · n²) for adjacency, O(S) for depth and parents.
//
// Options
//
//   - WithContext(ctx):     cancellation.
//   - WithMaxStates(n):     stop with ErrStateLimit once n states are stored (0 = no limit).
//   - WithStopAtSolved():   stop as soon as a solved state is discovered.
//   - WithOnVisit(fn):      hook on dequeue; returning an error aborts.
//
// Errors
//
//   - game.ErrInvalidGame  if the start game is malformed.
//   - ErrOptionViolation   for invalid options.
//   - ErrStateLimit        when the state budget is exhausted.
//   - ErrStateNotFound     for queries on unknown keys.
//   - ErrNoPath            when no solved state was reached.
//   - context errors and wrapped OnVisit errors.
//
// A Graph is safe for concurrent readers once Explore has returned.
package statespace
