package bottle

import (
	"fmt"
	"slices"
	"strings"
)

// New returns a bottle of the given capacity holding contents, bottom first.
// The contents are copied. New does not validate; see Validate.
func New(capacity int, contents ...Color) Bottle {
	return Bottle{contents: cloneContents(contents), capacity: capacity}
}

// Full returns a bottle filled to capacity with c.
func Full(capacity int, c Color) Bottle {
	return Repeat(capacity, c, capacity)
}

// Repeat returns a bottle of the given capacity holding n units of c.
func Repeat(capacity int, c Color, n int) Bottle {
	if n <= 0 {
		return Bottle{capacity: capacity}
	}
	contents := make([]Color, n)
	for i := range contents {
		contents[i] = c
	}

	return Bottle{contents: contents, capacity: capacity}
}

// cloneContents copies s, normalizing empty input to nil.
func cloneContents(s []Color) []Color {
	if len(s) == 0 {
		return nil
	}

	return slices.Clone(s)
}

// Capacity returns the maximum number of units the bottle holds.
func (b Bottle) Capacity() int { return b.capacity }

// Len returns the number of units currently in the bottle.
func (b Bottle) Len() int { return len(b.contents) }

// Free returns the number of units that still fit.
func (b Bottle) Free() int { return b.capacity - len(b.contents) }

// Contents returns a copy of the stack, bottom first.
func (b Bottle) Contents() []Color { return cloneContents(b.contents) }

// At returns the unit at depth i, counting from the bottom (0).
// It panics if i is out of range, like a slice index.
func (b Bottle) At(i int) Color { return b.contents[i] }

// Top returns the top color; ok is false for an empty bottle.
func (b Bottle) Top() (c Color, ok bool) {
	if len(b.contents) == 0 {
		return 0, false
	}

	return b.contents[len(b.contents)-1], true
}

// IsEmpty reports whether the bottle holds no units.
func (b Bottle) IsEmpty() bool { return len(b.contents) == 0 }

// IsFull reports whether the bottle is filled to capacity.
func (b Bottle) IsFull() bool { return len(b.contents) == b.capacity }

// IsUniform reports whether every unit has the same color.
// An empty bottle is trivially uniform.
func (b Bottle) IsUniform() bool {
	for _, c := range b.contents {
		if c != b.contents[0] {
			return false
		}
	}

	return true
}

// IsSolved reports whether the bottle is full and uniform.
// An empty bottle is not solved.
func (b Bottle) IsSolved() bool {
	return len(b.contents) > 0 && b.IsFull() && b.IsUniform()
}

// topRun returns the length of the contiguous run of the top color.
func (b Bottle) topRun() int {
	n := len(b.contents)
	if n == 0 {
		return 0
	}
	top := b.contents[n-1]
	run := 1
	for i := n - 2; i >= 0 && b.contents[i] == top; i-- {
		run++
	}

	return run
}

// Equal reports whether b and o have the same capacity and contents.
func (b Bottle) Equal(o Bottle) bool {
	return b.capacity == o.capacity && slices.Equal(b.contents, o.contents)
}

// Compare orders bottles totally and returns -1, 0 or +1.
//
// Empty bottles come first. Non-empty bottles are ordered by top color,
// then by capacity, then by length, then by contents from the bottom up.
// Compare returns 0 exactly when Equal reports true.
func (b Bottle) Compare(o Bottle) int {
	bt, bok := b.Top()
	ot, ook := o.Top()
	switch {
	case !bok && ook:
		return -1
	case bok && !ook:
		return 1
	case bt != ot:
		if bt < ot {
			return -1
		}
		return 1
	}
	if b.capacity != o.capacity {
		if b.capacity < o.capacity {
			return -1
		}
		return 1
	}
	if len(b.contents) != len(o.contents) {
		if len(b.contents) < len(o.contents) {
			return -1
		}
		return 1
	}

	return slices.Compare(b.contents, o.contents)
}

// Validate checks the bottle invariants: positive capacity, contents that
// fit, and colors from the palette.
func (b Bottle) Validate() error {
	if b.capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCapacity, b.capacity)
	}
	if len(b.contents) > b.capacity {
		return fmt.Errorf("%w: %d units in capacity %d", ErrOverfilled, len(b.contents), b.capacity)
	}
	for i, c := range b.contents {
		if !c.Valid() {
			return fmt.Errorf("%w: %s at depth %d", ErrUnknownColor, c, i)
		}
	}

	return nil
}

// String renders the bottle bottom first, with "_" for each free slot,
// e.g. [Red Blue _ _].
func (b Bottle) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range b.contents {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	for i := len(b.contents); i < b.capacity; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('_')
	}
	sb.WriteByte(']')

	return sb.String()
}
