package components

import (
	"courtbounce/internal/engine"
	"courtbounce/internal/physics"
)

// Rigidbody pairs a GameObject with a physics body. The body is
// authoritative; the GameObject transform only ever mirrors it.
type Rigidbody struct {
	engine.BaseComponent
	Body *physics.Body
}

func NewRigidbody(body *physics.Body) *Rigidbody {
	return &Rigidbody{Body: body}
}

// SyncTransform copies the body position and orientation verbatim onto the
// GameObject. It reports false when either side is missing.
func (r *Rigidbody) SyncTransform() bool {
	g := r.GetGameObject()
	if g == nil || r.Body == nil {
		return false
	}
	g.Transform.Position = r.Body.Position
	g.Transform.Rotation = r.Body.Quaternion
	return true
}

// Update mirrors the body pose every frame.
func (r *Rigidbody) Update(float32) {
	r.SyncTransform()
}

// InSync reports whether the GameObject pose equals the body pose exactly.
func (r *Rigidbody) InSync() bool {
	g := r.GetGameObject()
	if g == nil || r.Body == nil {
		return false
	}
	return g.Transform.Position == r.Body.Position && g.Transform.Rotation == r.Body.Quaternion
}
