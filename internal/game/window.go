package game

import (
	"courtbounce/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibWindow is the resizable desktop window.
type RaylibWindow struct{}

// OpenWindow creates the window and GL context. It must be called from the
// main goroutine before any renderer is created.
func OpenWindow(cfg config.WindowConfig) (*RaylibWindow, error) {
	var flags uint32 = rl.FlagWindowResizable | rl.FlagVsyncHint
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrNoWindow
	}
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	return &RaylibWindow{}, nil
}

func (w *RaylibWindow) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *RaylibWindow) Resized() bool {
	return rl.IsWindowResized()
}

func (w *RaylibWindow) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *RaylibWindow) Close() {
	rl.CloseWindow()
}
