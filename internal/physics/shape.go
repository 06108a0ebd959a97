package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapePlane
)

// Shape is the collision geometry of a body, expressed in body-local space.
type Shape interface {
	Kind() ShapeKind
	// Bounds returns the world-space bounding box at the given pose.
	Bounds(position rl.Vector3, rotation rl.Quaternion) AABB
	// LocalInertia returns the diagonal of the inertia tensor for the given mass.
	LocalInertia(mass float32) rl.Vector3
}

type Sphere struct {
	Radius float32
}

func NewSphere(radius float32) *Sphere {
	return &Sphere{Radius: radius}
}

func (s *Sphere) Kind() ShapeKind { return ShapeSphere }

func (s *Sphere) Bounds(position rl.Vector3, _ rl.Quaternion) AABB {
	d := 2 * s.Radius
	return NewAABBFromCenter(position, rl.Vector3{X: d, Y: d, Z: d})
}

func (s *Sphere) LocalInertia(mass float32) rl.Vector3 {
	i := 2.0 / 5.0 * mass * s.Radius * s.Radius
	return rl.Vector3{X: i, Y: i, Z: i}
}

// Plane is an infinite half-space whose surface passes through the body
// origin. Its local normal is +Z; rotate the body to orient it.
type Plane struct{}

func NewPlane() *Plane {
	return &Plane{}
}

func (p *Plane) Kind() ShapeKind { return ShapePlane }

func (p *Plane) Bounds(rl.Vector3, rl.Quaternion) AABB {
	return InfiniteAABB
}

func (p *Plane) LocalInertia(float32) rl.Vector3 {
	return rl.Vector3{}
}

// planeLocalNormal is the surface normal of a Plane before rotation.
var planeLocalNormal = rl.Vector3{X: 0, Y: 0, Z: 1}
