package solver

import (
	"fmt"

	"github.com/logdot/bottle-solver/game"
)

// replay maps a chain of canonical states back onto the caller's bottle
// layout. For every target it picks the first pour, in row-major order, of
// the current game that lands on the target's canonical key.
func replay(start game.Game, chain []game.Game) ([]game.Move, []game.Game, error) {
	steps := make([]game.Move, 0, len(chain))
	path := make([]game.Game, 0, len(chain))
	cur := start
	for i, target := range chain {
		want := target.Key()
		found := false
		for _, s := range cur.Successors() {
			if s.Game.Key() == want {
				steps = append(steps, s.Move)
				path = append(path, s.Game)
				cur = s.Game
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("solver: replay diverged at step %d", i+1)
		}
	}

	return steps, path, nil
}
