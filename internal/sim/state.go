package sim

import "fmt"

// State is the authoritative simulation for one session. It owns
// exactly one Grid and one Snake and nothing else mutable.
type State struct {
	grid  *Grid
	snake *Snake
}

// NewState creates a session from a grid and a snake.
func NewState(grid *Grid, snake *Snake) *State {
	return &State{grid: grid, snake: snake}
}

// Grid returns the owned grid.
func (st *State) Grid() *Grid {
	return st.grid
}

// Snake returns the owned snake.
func (st *State) Snake() *Snake {
	return st.snake
}

// Update advances the simulation by one tick. A DirNone input keeps the
// snake's previous heading; anything else becomes the new heading and
// persists. A nil return means the move committed; a *GameOverError
// means the session is over and must not be updated again.
//
// Collision and Fell are detected before any mutation. Cannibalism is
// detected after the move has already been committed, so the host
// observes the post-move body. This ordering is deliberate.
func (st *State) Update(input Direction) error {
	if input != DirNone {
		st.snake.heading = input
	}
	heading := st.snake.heading

	head := st.snake.Head()
	next := head.Step(heading)

	cell, ok := st.grid.Get(next)
	if !ok || cell == CellBlock {
		return gameOver(CauseCollision, head, next)
	}

	// Gravity: with no block directly beneath, the snake falls through
	// and the cell below decides what the move lands on. The head is
	// still written to next, not to the lower voxel.
	below, okBelow := st.grid.Get(next.Step(DirDown))
	switch {
	case okBelow && below == CellBlock:
		// supported; cell stays as found at next
	case okBelow:
		cell = below
	default:
		return gameOver(CauseFell, head, next)
	}

	switch cell {
	case CellEmpty:
		st.snake.MoveTo(next, false)
	case CellFood:
		st.snake.MoveTo(next, true)
		if err := st.grid.Set(next, CellEmpty); err != nil {
			// next was readable above, so this cannot fail
			panic(fmt.Sprintf("sim: clearing eaten food at %s: %v", next, err))
		}
	default:
		// Block and Void were filtered before gravity resolution.
		panic(fmt.Sprintf("sim: unreachable cell %s resolved at %s", cell, next))
	}

	if st.snake.SelfIntersecting() {
		return gameOver(CauseCannibalism, head, next)
	}
	return nil
}

// Draw emits the grid's cells and then the snake's segments.
func (st *State) Draw(s Surface) {
	st.grid.Draw(s)
	st.snake.Draw(s)
}
