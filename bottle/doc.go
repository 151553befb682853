// Package bottle implements the pour engine of the liquid-sorting puzzle:
// the Color palette, the immutable Bottle value and the Pour rule.
//
// What
//
//   - Color: a small, totally ordered palette (declaration order).
//   - Bottle: a fixed-capacity stack of colors; the last element is the top.
//   - Pour: moves the contiguous top run of one color from a pourer onto a
//     pouree, as far as the pouree has room and the colors match.
//
// Rules (applied in order)
//
//  1. A full pouree takes nothing; both inputs are returned unchanged.
//  2. A full, uniformly colored pourer is frozen; both inputs are returned unchanged.
//  3. Otherwise units move one at a time while the pourer is non-empty, the
//     pouree is not full, and the pouree is empty or shows the same top color.
//
// Value semantics
//
//	Bottles never change after construction. Pour returns new values whose
//	backing arrays are never shared with its arguments, so a Bottle can be
//	held by any number of game states at once.
//
// Usage
//
//	pourer := bottle.New(4, bottle.Red, bottle.Blue, bottle.Blue)
//	pouree := bottle.New(4)
//	pourer, pouree = bottle.Pour(pourer, pouree)
//	// pourer = [Red _ _ _], pouree = [Blue Blue _ _]
//
// Errors
//
//   - ErrBadCapacity   if a bottle's capacity is not positive.
//   - ErrOverfilled    if a bottle holds more units than its capacity.
//   - ErrUnknownColor  if a color is outside the palette or a name does not parse.
package bottle
