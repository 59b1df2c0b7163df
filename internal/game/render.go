package game

import (
	"fmt"

	"github.com/isosnake/isosnake/internal/core"
	"github.com/isosnake/isosnake/internal/sim"
)

// screenSurface adapts a core.Screen to the simulation's drawing
// contract. Projected positions are shifted by the camera offset; void
// glyphs are dropped at composition time so the world floats on the
// terminal background.
type screenSurface struct {
	dst  *core.Screen
	offX int
	offY int
}

// Put implements sim.Surface.
func (s *screenSurface) Put(pos sim.ScreenPos, r rune) {
	if r == sim.RuneVoid {
		return
	}
	s.dst.SetCell(pos.X+s.offX, pos.Y+s.offY, r, glyphColor(r))
}

// glyphColor maps world glyphs to terminal colors.
func glyphColor(r rune) core.Color {
	switch r {
	case sim.RuneBlock:
		return core.ColorGray
	case sim.RuneFood:
		return core.ColorBrightRed
	case sim.RuneSnake:
		return core.ColorBrightGreen
	default:
		return core.ColorDefault
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.state != nil {
		g.state.Draw(&screenSurface{dst: dst, offX: g.camX, offY: g.camY})
	}

	switch {
	case g.levelCleared:
		name := ""
		if g.level != nil {
			name = g.level.Name
		}
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), name)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, g.gameOverTitle(), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// gameOverTitle describes how the session ended.
func (g *Game) gameOverTitle() string {
	if g.end == nil {
		return "Game Over"
	}
	return fmt.Sprintf("%s at %s", g.end.Cause.Message(), g.end.Move)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Isosnake (Endless) — Score: %d  Cadence: %d", g.score, g.moveCadence())
	} else {
		target := 0
		if g.level != nil {
			target = g.level.TargetFood
		}
		hud = fmt.Sprintf(" Isosnake — Score: %d  Level: %d/%d  Food: %d/%d",
			g.score, g.levelIndex+1, sim.LevelCount(), g.foodEaten, target)
	}

	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	box := core.Rect{
		W: maxLen + 4,
		H: 5,
	}
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
