package sim

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by grid operations on coordinates outside
// the declared dimensions. It is the only recoverable simulation error;
// it signals a level-construction mistake, not a game over.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Cause identifies how a session ended.
type Cause int

const (
	// CauseCollision: the intended destination was solid or off the map.
	CauseCollision Cause = iota
	// CauseCannibalism: the body occupies the same voxel twice after a move.
	CauseCannibalism
	// CauseFell: nothing exists beneath the resolved destination.
	CauseFell
)

// String returns a stable identifier for the cause, used in storage.
func (c Cause) String() string {
	switch c {
	case CauseCollision:
		return "collision"
	case CauseCannibalism:
		return "cannibalism"
	case CauseFell:
		return "fell"
	default:
		return "unknown"
	}
}

// Message returns a player-facing description of the cause.
func (c Cause) Message() string {
	switch c {
	case CauseCollision:
		return "Crashed into a wall"
	case CauseCannibalism:
		return "Ate yourself"
	case CauseFell:
		return "Fell off the world"
	default:
		return "Game over"
	}
}

// GameOverError is returned by State.Update when the session ends.
// It carries the pre-move head and the computed destination for
// diagnostics. All causes are terminal: the host must stop the loop.
type GameOverError struct {
	Cause Cause
	Head  Vec3 // head position before the move
	Move  Vec3 // destination the move resolved to
}

// Error implements the error interface.
func (e *GameOverError) Error() string {
	return fmt.Sprintf("%s: head %s attempted move to %s", e.Cause, e.Head, e.Move)
}

func gameOver(cause Cause, head, move Vec3) *GameOverError {
	return &GameOverError{Cause: cause, Head: head, Move: move}
}
