package bottle

// Transfer reports how many units Pour(pourer, pouree) would move.
//
// It is zero when the pouree is full, when the pourer is empty or frozen
// (full and solved), or when the pouree's top color differs from the
// pourer's. Otherwise it is the smaller of the pourer's top run and the
// pouree's free space.
func Transfer(pourer, pouree Bottle) int {
	if pouree.IsFull() || pourer.IsSolved() {
		return 0
	}
	top, ok := pourer.Top()
	if !ok {
		return 0
	}
	if t, ok := pouree.Top(); ok && t != top {
		return 0
	}

	return min(pourer.topRun(), pouree.Free())
}

// Pour pours pourer into pouree and returns both resulting bottles.
//
// Units move from the top of pourer to the top of pouree while the pourer is
// non-empty, the pouree has room, and the pouree is empty or its top color
// matches the pourer's top color. A full pouree or a full, solved pourer
// leaves both bottles unchanged. Every moved unit has the same color.
//
// Pour never mutates its arguments and never shares their backing arrays
// with the results. Self-pours are the caller's concern.
func Pour(pourer, pouree Bottle) (Bottle, Bottle) {
	n := Transfer(pourer, pouree)
	if n == 0 {
		return pourer, pouree
	}

	split := len(pourer.contents) - n
	moved := pourer.contents[split:]

	filled := make([]Color, 0, len(pouree.contents)+n)
	filled = append(filled, pouree.contents...)
	filled = append(filled, moved...)

	return Bottle{contents: cloneContents(pourer.contents[:split]), capacity: pourer.capacity},
		Bottle{contents: filled, capacity: pouree.capacity}
}
