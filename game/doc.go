// Package game models a liquid-sorting puzzle state as an ordered set of
// bottles and provides the canonical form, the structural state key and
// move generation used by the search engines.
//
// Positions are significant only for addressing moves (which bottle pours
// into which). Two games that differ only by a permutation of their bottles
// are the same puzzle state: Canonical sorts the bottles by the bottle total
// order, and Key encodes the canonical sequence into a compact string that
// can be used as a map key.
//
// Successors enumerates every ordered pair (i, j), i != j, in row-major
// order, applies bottle.Pour and keeps only the pours that move liquid.
// There is no move-ordering heuristic.
package game
