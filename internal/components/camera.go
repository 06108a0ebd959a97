package components

import (
	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a perspective projection looking from its GameObject toward Target.
// Aspect must be kept in step with the drawing surface through SetViewport.
type Camera struct {
	engine.BaseComponent
	FOV    float32 // vertical, degrees
	Near   float32
	Far    float32
	Aspect float32
	Target rl.Vector3
	Up     rl.Vector3

	projection rl.Matrix
}

func NewCamera(fov, near, far float32) *Camera {
	c := &Camera{
		FOV:    fov,
		Near:   near,
		Far:    far,
		Aspect: 1,
		Target: rl.Vector3Zero(),
		Up:     rl.Vector3{X: 0, Y: 1, Z: 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetViewport sets the aspect ratio to width/height and re-derives the
// projection. Non-positive sizes are ignored and reported as false.
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float32(width) / float32(height)
	c.UpdateProjectionMatrix()
	return true
}

// UpdateProjectionMatrix must be called after changing FOV, Near, Far or Aspect.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = rl.MatrixPerspective(c.FOV*rl.Deg2rad, c.Aspect, c.Near, c.Far)
}

func (c *Camera) ProjectionMatrix() rl.Matrix {
	return c.projection
}

// LookAt aims the camera at target.
func (c *Camera) LookAt(target rl.Vector3) {
	c.Target = target
}

func (c *Camera) Position() rl.Vector3 {
	if g := c.GetGameObject(); g != nil {
		return g.Transform.Position
	}
	return rl.Vector3Zero()
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
