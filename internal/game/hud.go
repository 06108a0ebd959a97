package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 24

var (
	hudBackground = rl.NewColor(18, 18, 24, 220)
	hudText       = rl.NewColor(230, 230, 236, 255)
	hudBorder     = rl.NewColor(50, 50, 65, 255)
)

// HUD draws a status bar along the bottom of the window.
type HUD struct {
	game *Game
}

// NewHUD styles raygui for the status bar. Needs an open window.
func NewHUD(g *Game) *HUD {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(hudBackground))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(hudText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(hudBorder))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
	return &HUD{game: g}
}

func (h *HUD) Draw() {
	w, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	bounds := rl.Rectangle{
		X:      0,
		Y:      float32(height - hudHeight),
		Width:  float32(w),
		Height: hudHeight,
	}
	gui.StatusBar(bounds, StatusText(h.game.Info(), rl.GetFPS()))
}

// StatusText formats the status bar line.
func StatusText(info TickInfo, fps int32) string {
	return fmt.Sprintf("tick %d  t %.2fs  ball y %.3f  vy %+.3f  bounces %d  %d fps",
		info.Tick, info.Time, info.BallPosition.Y, info.BallVelocity.Y, info.Bounces, fps)
}
