package game

import "github.com/isosnake/isosnake/internal/sim"

// SessionState represents the current host state.
type SessionState string

const (
	StatePlaying      SessionState = "playing"
	StateLevelCleared SessionState = "level_cleared"
	StateGameOver     SessionState = "game_over"
	StateWin          SessionState = "win"
	StatePausedSmall  SessionState = "paused_small_window"
)

// Snapshot captures the complete host state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Level          int    // Current level (1-indexed for display)
	Mode           string // "campaign" or "endless"
	Score          int
	FoodEaten      int // Food eaten in current level
	SnakeLen       int
	Head           sim.Vec3
	Heading        sim.Direction
	Food           sim.Vec3
	MoveEveryTicks int
	State          SessionState
}

// Snapshot returns the current snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	var head sim.Vec3
	var heading sim.Direction
	var snakeLen int
	if g.state != nil {
		head = g.state.Snake().Head()
		heading = g.state.Snake().Heading()
		snakeLen = g.state.Snake().Len()
	}

	return Snapshot{
		Tick:           g.tick,
		Level:          g.levelIndex + 1,
		Mode:           string(g.mode),
		Score:          g.score,
		FoodEaten:      g.foodEaten,
		SnakeLen:       snakeLen,
		Head:           head,
		Heading:        heading,
		Food:           g.food,
		MoveEveryTicks: g.moveCadence(),
		State:          state,
	}
}
