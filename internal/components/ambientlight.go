package components

import (
	"math"

	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AmbientLight lights every surface evenly regardless of orientation.
type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(color rl.Color, intensity float32) *AmbientLight {
	return &AmbientLight{
		Color:     color,
		Intensity: intensity,
	}
}

// LinearColor returns the light color in linear space scaled by intensity.
func (a *AmbientLight) LinearColor() []float32 {
	return linearColor(a.Color, a.Intensity)
}

// linearColor converts an sRGB color to linear RGB, scales it by intensity
// and sets alpha to 1.
func linearColor(c rl.Color, intensity float32) []float32 {
	decode := func(v uint8) float32 {
		return float32(math.Pow(float64(v)/255.0, 2.2)) * intensity
	}
	return []float32{decode(c.R), decode(c.G), decode(c.B), 1.0}
}
