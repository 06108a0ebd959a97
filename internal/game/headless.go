package game

import (
	"courtbounce/internal/components"
	"courtbounce/internal/engine"
)

// HeadlessWindow never closes and never resizes.
type HeadlessWindow struct {
	Width, Height int
}

func (w *HeadlessWindow) ShouldClose() bool { return false }
func (w *HeadlessWindow) Resized() bool     { return false }
func (w *HeadlessWindow) Size() (int, int)  { return w.Width, w.Height }

// HeadlessRenderer keeps a surface size and counts frames without drawing.
type HeadlessRenderer struct {
	width, height int
	Frames        int
}

func (r *HeadlessRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *HeadlessRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *HeadlessRenderer) Render(*engine.Scene, *components.Camera) {
	r.Frames++
}
