// Package game hosts the voxel simulation behind the registry.Game
// interface. It owns session and level management, the move cadence,
// input folding, food respawn, and composition of the projected world
// into the platform screen buffer.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/isosnake/isosnake/internal/config"
	"github.com/isosnake/isosnake/internal/core"
	"github.com/isosnake/isosnake/internal/registry"
	"github.com/isosnake/isosnake/internal/sim"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// noFood marks the absence of a tracked food voxel.
var noFood = sim.V(-1, -1, -1)

// Game drives one snake session on top of the simulation engine.
type Game struct {
	mode       Mode
	cfg        config.GameConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	score      int
	foodEaten  int // Food eaten in current level
	levelIndex int // Current level (0-indexed)
	level      *sim.Level

	baseMoveTicks int // Cadence before difficulty scaling
	moveTicker    int // Counts ticks until next move

	state   *sim.State
	pending sim.Direction // Buffered direction for the next move
	food    sim.Vec3      // Most recently spawned food, noFood if none
	end     *sim.GameOverError

	// Camera: offsets added to projected positions before drawing
	camX, camY int
	projW      int
	projH      int
	hudHeight  int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool

	// Level clear animation
	levelClearTicks int
}

// Package-level variables set by the CLI before the session starts.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy/normal/hard/fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("campaign", func() registry.Game {
		return New()
	})
	registry.Register("endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Isometric Snake (Endless)"
	}
	return "Isometric Snake"
}

// Reset initializes/restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.Load(configPath)
	if err != nil {
		gameCfg = config.DefaultGameConfig()
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.levelClearTicks = 0
	g.end = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2 // Top HUD lines

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= sim.LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

// loadLevel builds the current level's grid and spawns the snake.
func (g *Game) loadLevel() {
	level := sim.GetLevel(g.levelIndex % sim.LevelCount())
	if level == nil {
		return
	}
	g.level = level

	grid, start, err := sim.BuildLevel(level)
	if err != nil {
		// Built-in levels are validated by tests; a parse failure here
		// is a programming fault.
		panic(fmt.Sprintf("game: building level %q: %v", level.Name, err))
	}
	g.state = sim.NewState(grid, sim.NewSnake(start))
	g.pending = sim.DirNone
	g.food = g.findFood()

	// Base cadence: config override, else the level's own
	g.baseMoveTicks = level.MoveEveryTicks
	if g.cfg.Speed.MoveEveryTicks > 0 {
		g.baseMoveTicks = g.cfg.Speed.MoveEveryTicks
	}
	// In endless mode, each completed cycle through the levels speeds up
	if g.mode == ModeEndless {
		cycle := g.levelIndex / sim.LevelCount()
		g.baseMoveTicks -= cycle * g.cfg.Speed.EndlessSpeedup
	}
	if min := g.minMoveTicks(); g.baseMoveTicks < min {
		g.baseMoveTicks = min
	}

	g.moveTicker = 0
	g.foodEaten = 0
	g.levelCleared = false

	g.placeCamera(grid.Dims())
}

// findFood returns the first food voxel in the grid, or noFood.
func (g *Game) findFood() sim.Vec3 {
	grid := g.state.Grid()
	dims := grid.Dims()
	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				c := sim.V(x, y, z)
				if cell, ok := grid.Get(c); ok && cell == sim.CellFood {
					return c
				}
			}
		}
	}
	return noFood
}

// placeCamera centers the level's projected bounds on screen.
// The projection extents follow directly from the grid dimensions.
func (g *Game) placeCamera(dims sim.Vec3) {
	minPX := -(dims.Y - 1) * 2
	maxPX := (dims.X - 1) * 2
	minPY := -(dims.Z - 1)
	maxPY := (dims.X - 1) + (dims.Y - 1)
	g.projW = maxPX - minPX + 1
	g.projH = maxPY - minPY + 1

	requiredW := g.projW + 2
	requiredH := g.projH + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.camX = (g.screenW-g.projW)/2 - minPX + g.cfg.Camera.OffsetX
	g.camY = g.hudHeight + (g.screenH-g.hudHeight-g.projH)/2 - minPY + g.cfg.Camera.OffsetY
}

// Step advances the host by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Don't process if game over, paused, too small, or level cleared animation
	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Buffer directional input for the next move
	if dir := directionFor(input.LastDirectional()); dir != sim.DirNone {
		g.pending = dir
	}

	// Move snake on the scaled cadence
	g.moveTicker++
	if g.moveTicker >= g.moveCadence() {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps a platform action to a simulation direction.
// Non-directional actions map to DirNone (continue heading).
func directionFor(a core.Action) sim.Direction {
	switch a {
	case core.ActionNorth:
		return sim.DirNorth
	case core.ActionSouth:
		return sim.DirSouth
	case core.ActionWest:
		return sim.DirWest
	case core.ActionEast:
		return sim.DirEast
	case core.ActionJump:
		return sim.DirUp
	default:
		return sim.DirNone
	}
}

// moveCadence returns the move interval in ticks for this moment,
// shrunk by the difficulty progression but never below the floor.
func (g *Game) moveCadence() int {
	return g.difficulty.MoveEvery(g.baseMoveTicks, g.minMoveTicks(), g.score, int(g.tick))
}

func (g *Game) minMoveTicks() int {
	if g.cfg.Speed.MinMoveTicks < 1 {
		return 1
	}
	return g.cfg.Speed.MinMoveTicks
}

// advance runs one simulation move and reacts to its outcome.
func (g *Game) advance() {
	lenBefore := g.state.Snake().Len()

	err := g.state.Update(g.pending)
	g.pending = sim.DirNone
	if err != nil {
		var goe *sim.GameOverError
		if errors.As(err, &goe) {
			g.end = goe
		}
		g.gameOver = true
		return
	}

	// The snake only grows by eating
	if g.state.Snake().Len() > lenBefore {
		g.score++
		g.foodEaten++
		g.respawnFood()
		g.checkLevelCompletion()
	}
}

// respawnFood places a new food voxel on a uniformly chosen candidate:
// an empty cell supported by a block directly below and not occupied by
// the snake. No candidates means no respawn.
func (g *Game) respawnFood() {
	grid := g.state.Grid()
	snake := g.state.Snake()
	dims := grid.Dims()

	var candidates []sim.Vec3
	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				c := sim.V(x, y, z)
				cell, ok := grid.Get(c)
				if !ok || cell != sim.CellEmpty {
					continue
				}
				below, okBelow := grid.Get(c.Step(sim.DirDown))
				if !okBelow || below != sim.CellBlock {
					continue
				}
				if snake.Occupies(c) {
					continue
				}
				candidates = append(candidates, c)
			}
		}
	}

	if len(candidates) == 0 {
		g.food = noFood
		return
	}

	g.food = candidates[g.rng.Intn(len(candidates))]
	if err := grid.Set(g.food, sim.CellFood); err != nil {
		// Candidates are in-bounds by construction
		panic(fmt.Sprintf("game: spawning food at %s: %v", g.food, err))
	}
}

// checkLevelCompletion checks if the level is complete.
func (g *Game) checkLevelCompletion() {
	if g.mode == ModeCampaign {
		if g.level != nil && g.foodEaten >= g.level.TargetFood {
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	}
	// Endless mode: transition levels after every 10 food
	if g.mode == ModeEndless && g.foodEaten >= 10 {
		g.levelIndex++
		g.loadLevel()
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= sim.LevelCount() {
		g.won = true
	} else {
		g.loadLevel()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
		Cause:    g.endCause(),
	}
}

// endCause returns the stable identifier of how the session ended,
// empty while the session is alive.
func (g *Game) endCause() string {
	switch {
	case g.end != nil:
		return g.end.Cause.String()
	case g.won:
		return "won"
	case g.gameOver:
		return "unknown"
	default:
		return ""
	}
}
