package components

import (
	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight shines parallel rays from its GameObject's position
// toward Target.
type DirectionalLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Target    rl.Vector3
}

func NewDirectionalLight(color rl.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Intensity: intensity,
		Target:    rl.Vector3Zero(),
	}
}

// Direction returns the normalized direction the light travels.
func (l *DirectionalLight) Direction() rl.Vector3 {
	g := l.GetGameObject()
	if g == nil {
		return rl.Vector3{X: 0, Y: -1, Z: 0}
	}
	dir := rl.Vector3Subtract(l.Target, g.Transform.Position)
	if rl.Vector3Length(dir) == 0 {
		return rl.Vector3{X: 0, Y: -1, Z: 0}
	}
	return rl.Vector3Normalize(dir)
}

// LinearColor returns the light color in linear space scaled by intensity.
func (l *DirectionalLight) LinearColor() []float32 {
	return linearColor(l.Color, l.Intensity)
}
