package physics

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextBodyID atomic.Uint64

type BodyType int

const (
	BodyDynamic BodyType = iota
	BodyStatic
)

// Default per-second velocity damping applied to dynamic bodies.
const (
	DefaultLinearDamping  = 0.01
	DefaultAngularDamping = 0.01
)

// BodyOptions configures NewBody. A zero Mass makes the body static.
type BodyOptions struct {
	Mass     float32
	Shape    Shape
	Position rl.Vector3
	Material *Material
}

// Body is a rigid body. Position and Quaternion are authoritative; anything
// drawn on screen mirrors them.
type Body struct {
	ID              uint64
	Type            BodyType
	Mass            float32
	Shape           Shape
	Material        *Material
	Position        rl.Vector3
	Quaternion      rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // radians per second
	LinearDamping   float32
	AngularDamping  float32

	invMass    float32
	invInertia rl.Vector3
}

func NewBody(opts BodyOptions) *Body {
	b := &Body{
		ID:             nextBodyID.Add(1),
		Mass:           opts.Mass,
		Shape:          opts.Shape,
		Material:       opts.Material,
		Position:       opts.Position,
		Quaternion:     rl.QuaternionIdentity(),
		LinearDamping:  DefaultLinearDamping,
		AngularDamping: DefaultAngularDamping,
	}
	b.updateMassProperties()
	return b
}

func (b *Body) updateMassProperties() {
	if b.Mass <= 0 {
		b.Type = BodyStatic
		b.Mass = 0
		b.invMass = 0
		b.invInertia = rl.Vector3{}
		return
	}
	b.Type = BodyDynamic
	b.invMass = 1 / b.Mass
	if b.Shape == nil {
		b.invInertia = rl.Vector3{}
		return
	}
	inertia := b.Shape.LocalInertia(b.Mass)
	b.invInertia = rl.Vector3{X: invOrZero(inertia.X), Y: invOrZero(inertia.Y), Z: invOrZero(inertia.Z)}
}

func invOrZero(v float32) float32 {
	if v == 0 {
		return 0
	}
	return 1 / v
}

func (b *Body) IsStatic() bool {
	return b.Type == BodyStatic
}

func (b *Body) InvMass() float32 {
	return b.invMass
}

// SetRotationFromAxisAngle replaces the orientation with a rotation of angle
// radians about axis.
func (b *Body) SetRotationFromAxisAngle(axis rl.Vector3, angle float32) {
	b.Quaternion = rl.QuaternionFromAxisAngle(rl.Vector3Normalize(axis), angle)
}

// PlaneNormal returns the world-space normal of a plane body.
func (b *Body) PlaneNormal() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3RotateByQuaternion(planeLocalNormal, b.Quaternion))
}

// Bounds returns the world bounding box of the body's shape.
func (b *Body) Bounds() AABB {
	if b.Shape == nil {
		return AABB{Min: b.Position, Max: b.Position}
	}
	return b.Shape.Bounds(b.Position, b.Quaternion)
}

// ApplyImpulse changes velocity by impulse/mass and spin by the torque
// impulse r x impulse, where r is relative to the center of mass.
func (b *Body) ApplyImpulse(impulse, r rl.Vector3) {
	if b.IsStatic() {
		return
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, b.invMass))
	torque := rl.Vector3CrossProduct(r, impulse)
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, rl.Vector3Multiply(torque, b.invInertia))
}

// velocityAt returns the velocity of the material point at offset r.
func (b *Body) velocityAt(r rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.Velocity, rl.Vector3CrossProduct(b.AngularVelocity, r))
}

// integrate advances position and orientation with the current velocities.
func (b *Body) integrate(dt float32) {
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	b.Quaternion = integrateRotation(b.Quaternion, b.AngularVelocity, dt)
}

// integrateRotation applies q' = q + dt/2 * w * q and renormalizes.
func integrateRotation(q rl.Quaternion, w rl.Vector3, dt float32) rl.Quaternion {
	if w.X == 0 && w.Y == 0 && w.Z == 0 {
		return q
	}
	spin := rl.QuaternionMultiply(rl.Quaternion{X: w.X, Y: w.Y, Z: w.Z, W: 0}, q)
	h := dt * 0.5
	return rl.QuaternionNormalize(rl.Quaternion{
		X: q.X + spin.X*h,
		Y: q.Y + spin.Y*h,
		Z: q.Z + spin.Z*h,
		W: q.W + spin.W*h,
	})
}
