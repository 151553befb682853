package statespace

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/logdot/bottle-solver/game"
)

// Graph is the explored portion of a puzzle's state space.
//
// mu guards every field. All enumerations are returned sorted (Keys,
// Solved) or in the order they were recorded (Neighbors), never in map
// iteration order.
type Graph struct {
	mu sync.RWMutex

	states    map[string]game.Game // canonical state per key
	adjacency map[string][]Edge    // outgoing pours in generation order
	depth     map[string]int       // pours from the root
	parent    map[string]string    // BFS tree; root has no entry
	solved    map[string]bool
	edges     int

	root   string
	target string // first solved state discovered, "" if none
}

func newGraph(hint int) *Graph {
	return &Graph{
		states:    make(map[string]game.Game, hint),
		adjacency: make(map[string][]Edge, hint),
		depth:     make(map[string]int, hint),
		parent:    make(map[string]string, hint),
		solved:    make(map[string]bool),
	}
}

// addState registers a state discovered at depth d from parent ("" for the root).
func (g *Graph) addState(key string, state game.Game, d int, parent string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.states[key] = state
	g.depth[key] = d
	if parent == "" {
		g.root = key
	} else {
		g.parent[key] = parent
	}
	if state.IsSolved() {
		g.solved[key] = true
		if g.target == "" {
			g.target = key
		}
	}
}

// addEdge records a pour from e.From to e.To.
func (g *Graph) addEdge(e Edge) {
	g.mu.Lock()
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	g.edges++
	g.mu.Unlock()
}

// HasState reports whether key was reached.
func (g *Graph) HasState(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.states[key]

	return ok
}

// State returns the canonical game stored under key.
func (g *Graph) State(key string) (game.Game, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.states[key]
	if !ok {
		return nil, ErrStateNotFound
	}

	return s.Clone(), nil
}

// Neighbors returns the recorded pours out of key, in generation order.
// States discovered but not yet expanded have no neighbors.
func (g *Graph) Neighbors(key string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.states[key]; !ok {
		return nil, ErrStateNotFound
	}

	return slices.Clone(g.adjacency[key]), nil
}

// Depth returns the number of pours from the root to key.
func (g *Graph) Depth(key string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d, ok := g.depth[key]
	if !ok {
		return 0, ErrStateNotFound
	}

	return d, nil
}

// StateCount returns the number of stored states.
func (g *Graph) StateCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.states)
}

// EdgeCount returns the number of recorded pours.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Keys returns every stored key in ascending order.
func (g *Graph) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]string, 0, len(g.states))
	for k := range g.states {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Solved returns the keys of every solved state reached, ascending.
func (g *Graph) Solved() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]string, 0, len(g.solved))
	for k := range g.solved {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Root returns the key of the start state.
func (g *Graph) Root() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.root
}

// Target returns the key of the nearest solved state, or "" if none was reached.
func (g *Graph) Target() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.target
}

// PathTo reconstructs the keys from the root to dest along BFS parents.
func (g *Graph) PathTo(dest string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.states[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %q", ErrStateNotFound, dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := g.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// SolutionPath returns the canonical states from the root to the Target,
// both included. It returns ErrNoPath when no solved state was reached.
func (g *Graph) SolutionPath() ([]game.Game, error) {
	target := g.Target()
	if target == "" {
		return nil, ErrNoPath
	}
	keys, err := g.PathTo(target)
	if err != nil {
		return nil, err
	}
	out := make([]game.Game, len(keys))
	for i, k := range keys {
		if out[i], err = g.State(k); err != nil {
			return nil, err
		}
	}

	return out, nil
}
