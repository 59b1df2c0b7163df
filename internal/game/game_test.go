package game

import (
	"strings"
	"testing"

	"github.com/isosnake/isosnake/internal/core"
	"github.com/isosnake/isosnake/internal/sim"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig(12345)

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	// Run both games with same inputs for N ticks
	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		if i == 2 {
			input.Set(core.ActionEast)
		}
		if i == 20 {
			input.Set(core.ActionSouth)
		}
		if i == 40 {
			input.Set(core.ActionEast)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestInputFoldLastDirectionalWins(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Press several directions in one tick: the last one is buffered
	input := core.NewInputFrame()
	input.Set(core.ActionNorth)
	input.Set(core.ActionWest)
	input.Set(core.ActionEast)
	g.Step(input)

	if g.pending != sim.DirEast {
		t.Errorf("Expected pending direction East, got %v", g.pending)
	}

	// Jump folds to the vertical direction
	input.Clear()
	input.Set(core.ActionJump)
	g.Step(input)

	if g.pending != sim.DirUp {
		t.Errorf("Expected pending direction Up after jump, got %v", g.pending)
	}

	// A tick with no directional input keeps the buffer
	input.Clear()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.pending != sim.DirUp {
		t.Errorf("Pending direction should survive a tick without input, got %v", g.pending)
	}
}

func TestSnakeStationaryWithoutHeading(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	start := g.state.Snake().Head()

	// Run well past several move intervals with no directional input
	input := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}

	if got := g.state.Snake().Head(); got != start {
		t.Errorf("Snake moved without a heading: %s -> %s", start, got)
	}
	if g.gameOver {
		t.Error("Game should not end while the snake is stationary")
	}
}

func TestAdvanceEatsFood(t *testing.T) {
	g := New()
	g.Reset(testConfig(222))

	// Level 1: start at (0,0,1), food at (4,3,1). Walk east then south.
	for i := 0; i < 4; i++ {
		g.pending = sim.DirEast
		g.advance()
	}
	for i := 0; i < 3; i++ {
		g.pending = sim.DirSouth
		g.advance()
	}

	if g.gameOver {
		t.Fatalf("Unexpected game over: %v", g.end)
	}
	if g.score != 1 {
		t.Errorf("Score should be 1 after eating, got %d", g.score)
	}
	if g.foodEaten != 1 {
		t.Errorf("foodEaten should be 1, got %d", g.foodEaten)
	}
	if got := g.state.Snake().Len(); got != 2 {
		t.Errorf("Snake should grow to 2 segments, got %d", got)
	}

	// A replacement food was spawned somewhere valid
	if g.food == noFood {
		t.Fatal("Food should respawn after an eat")
	}
	if cell, ok := g.state.Grid().Get(g.food); !ok || cell != sim.CellFood {
		t.Errorf("Respawned food cell is %v (ok=%v)", cell, ok)
	}
}

func TestFoodRespawnValidity(t *testing.T) {
	g := New()
	g.Reset(testConfig(999))

	grid := g.state.Grid()
	snake := g.state.Snake()

	// Respawn repeatedly and verify every placement is a supported,
	// unoccupied, previously-empty cell
	for i := 0; i < 30; i++ {
		g.respawnFood()
		if g.food == noFood {
			// Board saturated with food; nothing left to check
			break
		}

		cell, ok := grid.Get(g.food)
		if !ok || cell != sim.CellFood {
			t.Fatalf("Spawn %d: food cell is %v (ok=%v)", i, cell, ok)
		}
		below, ok := grid.Get(g.food.Step(sim.DirDown))
		if !ok || below != sim.CellBlock {
			t.Errorf("Spawn %d: food at %s is unsupported (below %v, ok=%v)", i, g.food, below, ok)
		}
		if snake.Occupies(g.food) {
			t.Errorf("Spawn %d: food spawned on snake at %s", i, g.food)
		}
	}
}

func TestGameOverSurfacesCause(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Walk west off the map from the starting corner
	g.pending = sim.DirWest
	g.advance()

	if !g.gameOver {
		t.Fatal("Game should be over after walking off the map")
	}
	if g.end == nil {
		t.Fatal("Game over diagnostics missing")
	}
	if g.end.Cause != sim.CauseCollision {
		t.Errorf("Expected collision cause, got %v", g.end.Cause)
	}

	state := g.State()
	if !state.GameOver {
		t.Error("State should report game over")
	}
	if state.Cause != "collision" {
		t.Errorf("State cause should be %q, got %q", "collision", state.Cause)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))

	g.pending = sim.DirWest
	g.advance()
	if !g.gameOver {
		t.Fatal("Setup: game should be over")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("Restart should clear game over")
	}
	if g.score != 0 {
		t.Errorf("Restart should reset score, got %d", g.score)
	}
	if g.end != nil {
		t.Error("Restart should clear game over diagnostics")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	// Get the snake moving east
	input := core.NewInputFrame()
	input.Set(core.ActionEast)
	g.Step(input)

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("Game should be paused")
	}

	head := g.state.Snake().Head()
	input.Clear()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}
	if got := g.state.Snake().Head(); got != head {
		t.Errorf("Snake moved while paused: %s -> %s", head, got)
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("Pause should toggle off")
	}
}

func TestLevelCompletion(t *testing.T) {
	g := New()
	g.Reset(testConfig(123))

	level := sim.GetLevel(0)
	if level == nil {
		t.Fatal("Level 0 not found")
	}

	initialLevel := g.levelIndex
	g.foodEaten = level.TargetFood
	g.checkLevelCompletion()

	if !g.levelCleared {
		t.Error("Level should be cleared after eating TargetFood")
	}

	// Simulate level clear animation completing
	g.advanceLevel()

	if g.levelIndex != initialLevel+1 {
		t.Errorf("Expected level %d, got %d", initialLevel+1, g.levelIndex)
	}
	if g.foodEaten != 0 {
		t.Errorf("foodEaten should reset on level load, got %d", g.foodEaten)
	}
}

func TestCampaignWin(t *testing.T) {
	g := New()
	g.Reset(testConfig(321))

	g.levelIndex = sim.LevelCount() - 1
	g.advanceLevel()

	if !g.won {
		t.Error("Clearing the last level should win the campaign")
	}
	state := g.State()
	if !state.GameOver {
		t.Error("Winning should end the session")
	}
	if state.Cause != "won" {
		t.Errorf("State cause should be %q, got %q", "won", state.Cause)
	}
}

func TestEndlessProgression(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(456))

	initialCadence := g.baseMoveTicks
	initialLevel := g.levelIndex

	// In endless mode, after 10 food, level should advance
	g.foodEaten = 10
	g.checkLevelCompletion()

	if g.levelIndex != initialLevel+1 {
		t.Errorf("Expected level %d, got %d after 10 food in endless", initialLevel+1, g.levelIndex)
	}

	// After cycling through all levels, the cadence should shrink
	for i := 0; i < sim.LevelCount(); i++ {
		g.foodEaten = 10
		g.checkLevelCompletion()
	}

	if g.baseMoveTicks >= initialCadence {
		t.Errorf("Expected faster cadence after a full cycle, got %d vs initial %d",
			g.baseMoveTicks, initialCadence)
	}
}

func TestGameIDs(t *testing.T) {
	campaign := New()
	if campaign.ID() != "campaign" {
		t.Errorf("Campaign ID should be 'campaign', got %s", campaign.ID())
	}

	endless := NewEndless()
	if endless.ID() != "endless" {
		t.Errorf("Endless ID should be 'endless', got %s", endless.ID())
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:    333,
		ScreenW: 10, // Too small
		ScreenH: 5,  // Too small
	})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}

	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", snap.State)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(444))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Isosnake") {
		t.Error("HUD should contain the game name")
	}
	// The flat floor of level 1 projects visible block glyphs
	if !strings.ContainsRune(content, sim.RuneBlock) {
		t.Error("Rendered world should contain block glyphs")
	}
	if !strings.ContainsRune(content, sim.RuneSnake) {
		t.Error("Rendered world should contain the snake")
	}
	if !strings.ContainsRune(content, sim.RuneFood) {
		t.Error("Rendered world should contain food")
	}
	// Void cells are dropped at composition time
	if strings.ContainsRune(content, sim.RuneVoid) {
		t.Error("Void glyphs should never reach the screen")
	}
}
