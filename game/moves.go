package game

import (
	"fmt"

	"github.com/logdot/bottle-solver/bottle"
)

// Apply pours bottle m.From into bottle m.To and returns the resulting game.
// moved is false when the pour transfers nothing; the returned game then
// equals g. g itself is never modified.
func (g Game) Apply(m Move) (next Game, moved bool, err error) {
	if m.From < 0 || m.From >= len(g) || m.To < 0 || m.To >= len(g) {
		return nil, false, fmt.Errorf("%w: %s with %d bottles", ErrMoveOutOfRange, m, len(g))
	}
	if m.From == m.To {
		return nil, false, fmt.Errorf("%w: %s", ErrSelfPour, m)
	}
	if bottle.Transfer(g[m.From], g[m.To]) == 0 {
		return g.Clone(), false, nil
	}

	return g.pour(m), true, nil
}

// pour applies m unconditionally on a copy of g.
func (g Game) pour(m Move) Game {
	next := g.Clone()
	next[m.From], next[m.To] = bottle.Pour(g[m.From], g[m.To])

	return next
}

// Successors returns every game reachable from g by one pour that moves at
// least one unit, in row-major (From, To) order. Pours that would leave the
// game unchanged are discarded.
func (g Game) Successors() []Successor {
	var out []Successor
	for i := range g {
		for j := range g {
			if i == j || bottle.Transfer(g[i], g[j]) == 0 {
				continue
			}
			m := Move{From: i, To: j}
			out = append(out, Successor{Move: m, Game: g.pour(m)})
		}
	}

	return out
}
