// Package bottlesolver solves liquid-sorting puzzles: bottles of stacked
// colored liquid that must be poured around until every bottle is either
// empty or full of a single color.
//
// The module is organized as one package per concern:
//
//	bottle/       Color palette, the immutable Bottle value and the Pour rule
//	game/         a puzzle state, its canonical form and structural key, move generation
//	solver/       memoized shortest-path search, breadth-first strategy, batch solving
//	statespace/   breadth-first state graph with depths and parent links
//	level/        YAML level files and the built-in levels
//	cmd/bottle-solver  command-line front end
//
// Quick start:
//
//	l, _ := level.Builtin("sortpuz-119")
//	g, _ := l.Game()
//	res, err := solver.Solve(g, solver.WithTimeLimit(time.Minute))
//	if err != nil {
//		// solver.ErrUnsolvable, or a budget error
//	}
//	for i, m := range res.Steps {
//		fmt.Println(m, res.Path[i])
//	}
package bottlesolver
