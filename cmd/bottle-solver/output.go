package main

import (
	"fmt"
	"io"

	"github.com/logdot/bottle-solver/solver"
)

// writeSolution prints the start state, every pour with the state it
// leaves, and the move count.
func writeSolution(w io.Writer, name string, res *solver.Result) {
	fmt.Fprintf(w, "== %s ==\n", name)
	fmt.Fprintf(w, "start:\n%s\n", res.Start)
	for i, m := range res.Steps {
		fmt.Fprintf(w, "\npour %d -> %d\n%s\n", m.From, m.To, res.Path[i])
	}
	fmt.Fprintf(w, "\nsolved in %d moves\n", res.Moves)
}
