package game

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/logdot/bottle-solver/bottle"
)

// New returns a game holding the given bottles in order.
func New(bottles ...bottle.Bottle) Game {
	return Game(slices.Clone(bottles))
}

// Clone returns a copy of the bottle sequence. Bottles are immutable values,
// so the copy is fully independent.
func (g Game) Clone() Game { return slices.Clone(g) }

// IsSolved reports whether every bottle is either empty or solved.
func (g Game) IsSolved() bool {
	for _, b := range g {
		if !b.IsEmpty() && !b.IsSolved() {
			return false
		}
	}

	return true
}

// Equal reports position-wise structural equality.
func (g Game) Equal(o Game) bool {
	return slices.EqualFunc(g, o, bottle.Bottle.Equal)
}

// Canonical returns a copy of g with its bottles sorted by bottle.Compare.
func (g Game) Canonical() Game {
	c := slices.Clone(g)
	slices.SortFunc(c, bottle.Bottle.Compare)

	return c
}

// Key returns the structural key of g's canonical form. Games that are
// permutations of each other share a key; any other pair does not.
func (g Game) Key() string {
	return g.Canonical().encode()
}

// Canonicalize returns the canonical form of g together with its key.
func (g Game) Canonicalize() (Game, string) {
	c := g.Canonical()

	return c, c.encode()
}

// encode serializes the bottles in their current order: for each bottle its
// capacity and length as uvarints followed by one byte per color.
func (g Game) encode() string {
	buf := make([]byte, 0, len(g)*8)
	for _, b := range g {
		buf = binary.AppendUvarint(buf, uint64(b.Capacity()))
		buf = binary.AppendUvarint(buf, uint64(b.Len()))
		for i := 0; i < b.Len(); i++ {
			buf = append(buf, byte(b.At(i)))
		}
	}

	return string(buf)
}

// Validate checks that g holds at least one bottle and that every bottle
// satisfies its invariants. Errors wrap ErrInvalidGame.
func (g Game) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: no bottles", ErrInvalidGame)
	}
	for i, b := range g {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: bottle %d: %w", ErrInvalidGame, i, err)
		}
	}

	return nil
}

// String renders one bottle per line, prefixed with its position.
func (g Game) String() string {
	var sb strings.Builder
	for i, b := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: %s", i, b)
	}

	return sb.String()
}
