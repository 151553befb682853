package bottle_test

import (
	"fmt"

	"github.com/logdot/bottle-solver/bottle"
)

// ExamplePour pours the top run of Blue from a mixed bottle into an empty one.
func ExamplePour() {
	pourer := bottle.New(6, bottle.Red, bottle.Red, bottle.Red, bottle.Blue, bottle.Blue, bottle.Blue)
	pouree := bottle.New(6)

	pourer, pouree = bottle.Pour(pourer, pouree)
	fmt.Println(pourer)
	fmt.Println(pouree)
	// Output:
	// [Red Red Red _ _ _]
	// [Blue Blue Blue _ _ _]
}

// ExamplePour_frozen shows that a finished bottle is never disturbed.
func ExamplePour_frozen() {
	pourer := bottle.Full(4, bottle.Green)
	pouree := bottle.New(4)

	fmt.Println(bottle.Transfer(pourer, pouree))
	pourer, pouree = bottle.Pour(pourer, pouree)
	fmt.Println(pourer, pouree)
	// Output:
	// 0
	// [Green Green Green Green] [_ _ _ _]
}
