package game

import (
	"errors"
	"fmt"

	"github.com/logdot/bottle-solver/bottle"
)

// Sentinel errors for game validation and move application.
var (
	// ErrInvalidGame wraps every validation failure of a game.
	ErrInvalidGame = errors.New("game: invalid game")

	// ErrMoveOutOfRange is returned when a move addresses a missing bottle.
	ErrMoveOutOfRange = errors.New("game: move index out of range")

	// ErrSelfPour is returned when a move pours a bottle into itself.
	ErrSelfPour = errors.New("game: bottle cannot pour into itself")
)

// Game is one state of the puzzle: a fixed, ordered sequence of bottles.
type Game []bottle.Bottle

// Move pours bottle From into bottle To. Indices refer to positions of the
// game the move is applied to.
type Move struct {
	From int
	To   int
}

// String renders the move as "from->to".
func (m Move) String() string { return fmt.Sprintf("%d->%d", m.From, m.To) }

// Successor pairs a legal move with the game it produces.
type Successor struct {
	Move Move
	Game Game
}
