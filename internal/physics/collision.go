package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ContactMargin lets bodies within this distance of touching count as in
// contact. Resting bodies stay in contact instead of re-impacting each step.
const ContactMargin = 0.005

// Contact describes one touching pair. Normal points from B toward A and
// Depth is positive when the shapes overlap.
type Contact struct {
	BodyA       *Body
	BodyB       *Body
	Normal      rl.Vector3
	Point       rl.Vector3
	Depth       float32
	ImpactSpeed float32 // closing speed along Normal before resolution
}

// bodyPair is an order-independent key for a pair of bodies.
type bodyPair struct {
	lo, hi uint64
}

func makePair(a, b *Body) bodyPair {
	if a.ID > b.ID {
		return bodyPair{lo: b.ID, hi: a.ID}
	}
	return bodyPair{lo: a.ID, hi: b.ID}
}

// detectContact runs the narrow phase for a pair. The returned contact may
// swap a and b so that the sphere is always BodyA of a sphere/plane pair.
func detectContact(a, b *Body) (Contact, bool) {
	if a.Shape == nil || b.Shape == nil {
		return Contact{}, false
	}
	switch {
	case a.Shape.Kind() == ShapeSphere && b.Shape.Kind() == ShapeSphere:
		return sphereSphere(a, b)
	case a.Shape.Kind() == ShapeSphere && b.Shape.Kind() == ShapePlane:
		return spherePlane(a, b)
	case a.Shape.Kind() == ShapePlane && b.Shape.Kind() == ShapeSphere:
		return spherePlane(b, a)
	}
	return Contact{}, false
}

func sphereSphere(a, b *Body) (Contact, bool) {
	sa := a.Shape.(*Sphere)
	sb := b.Shape.(*Sphere)

	diff := rl.Vector3Subtract(a.Position, b.Position)
	dist := rl.Vector3Length(diff)
	minDist := sa.Radius + sb.Radius
	if dist >= minDist+ContactMargin {
		return Contact{}, false
	}

	normal := rl.Vector3{X: 0, Y: 1, Z: 0}
	if dist > 1e-6 {
		normal = rl.Vector3Scale(diff, 1/dist)
	}
	return Contact{
		BodyA:  a,
		BodyB:  b,
		Normal: normal,
		Point:  rl.Vector3Add(b.Position, rl.Vector3Scale(normal, sb.Radius)),
		Depth:  minDist - dist,
	}, true
}

func spherePlane(sphere, plane *Body) (Contact, bool) {
	s := sphere.Shape.(*Sphere)
	normal := plane.PlaneNormal()

	// Signed distance from the plane surface to the sphere center
	dist := rl.Vector3DotProduct(rl.Vector3Subtract(sphere.Position, plane.Position), normal)
	depth := s.Radius - dist
	if depth <= -ContactMargin {
		return Contact{}, false
	}

	return Contact{
		BodyA:  sphere,
		BodyB:  plane,
		Normal: normal,
		Point:  rl.Vector3Subtract(sphere.Position, rl.Vector3Scale(normal, dist)),
		Depth:  depth,
	}, true
}
