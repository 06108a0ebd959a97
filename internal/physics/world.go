package physics

import (
	"log"
	"math"

	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning for contact resolution.
const (
	// RestingSpeed is the approach speed, before the step's gravity, below
	// which impacts do not bounce.
	RestingSpeed = 0.25
	// PositionCorrection is the share of penetration removed per step.
	PositionCorrection = 0.8
	// PenetrationSlop is the overlap tolerated without correction.
	PenetrationSlop = 0.001
)

// World owns a set of rigid bodies and advances them in fixed steps.
type World struct {
	Gravity rl.Vector3
	Bodies  []*Body

	// DefaultContactMaterial applies to pairs with no registered rule.
	DefaultContactMaterial *ContactMaterial

	// Contacts fires once per new touching pair, before the impact is resolved.
	Contacts engine.EventWithArg[Contact]

	contactMaterials []*ContactMaterial
	touching         map[bodyPair]bool
	stepCount        uint64
}

func NewWorld(gravity rl.Vector3) *World {
	return &World{
		Gravity:                gravity,
		Bodies:                 make([]*Body, 0),
		DefaultContactMaterial: NewContactMaterial(nil, nil, DefaultFriction, DefaultRestitution),
		contactMaterials:       make([]*ContactMaterial, 0),
		touching:               make(map[bodyPair]bool),
	}
}

func (w *World) AddBody(b *Body) {
	for _, existing := range w.Bodies {
		if existing == b {
			return
		}
	}
	w.Bodies = append(w.Bodies, b)
}

// OnContact registers fn on the Contacts event.
func (w *World) OnContact(fn func(Contact)) {
	w.Contacts.AddListener(fn)
}

// AddContactMaterial registers a rule for every future contact between its
// two materials.
func (w *World) AddContactMaterial(cm *ContactMaterial) {
	w.contactMaterials = append(w.contactMaterials, cm)
	log.Printf("Physics: contact material %s", cm)
}

func (w *World) ContactMaterials() []*ContactMaterial {
	return w.contactMaterials
}

// ContactMaterialFor returns the most recently registered rule matching the
// pair, or the world default.
func (w *World) ContactMaterialFor(a, b *Material) *ContactMaterial {
	for i := len(w.contactMaterials) - 1; i >= 0; i-- {
		if w.contactMaterials[i].Matches(a, b) {
			return w.contactMaterials[i]
		}
	}
	return w.DefaultContactMaterial
}

// StepCount returns the number of completed steps.
func (w *World) StepCount() uint64 {
	return w.stepCount
}

// Step advances the simulation by exactly dt seconds in a single step.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}

	// 1. Apply gravity to dynamic bodies
	for _, b := range w.Bodies {
		if b.IsStatic() {
			continue
		}
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(w.Gravity, dt))
	}

	// 2. Broad phase + narrow phase
	contacts := w.findContacts()

	// 3. Resolve contacts and dispatch impact events
	current := make(map[bodyPair]bool, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		pair := makePair(c.BodyA, c.BodyB)
		current[pair] = true
		w.resolveContact(c, !w.touching[pair], dt)
	}
	w.touching = current

	// 4. Damping and integration
	for _, b := range w.Bodies {
		if b.IsStatic() {
			continue
		}
		b.Velocity = rl.Vector3Scale(b.Velocity, dampingFactor(b.LinearDamping, dt))
		b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, dampingFactor(b.AngularDamping, dt))
		b.integrate(dt)
	}

	w.stepCount++
}

// dampingFactor converts a per-second damping ratio into a per-step scale.
func dampingFactor(damping, dt float32) float32 {
	if damping <= 0 {
		return 1
	}
	return float32(math.Pow(float64(1-damping), float64(dt)))
}

func (w *World) findContacts() []Contact {
	var contacts []Contact
	for i := 0; i < len(w.Bodies); i++ {
		a := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			b := w.Bodies[j]
			if a.IsStatic() && b.IsStatic() {
				continue
			}
			if !a.Bounds().Expand(ContactMargin).Intersects(b.Bounds()) {
				continue
			}
			if c, ok := detectContact(a, b); ok {
				contacts = append(contacts, c)
			}
		}
	}
	return contacts
}

// gravityAlongNormal is the part of the pair's relative normal velocity
// that this step's gravity contributed.
func (w *World) gravityAlongNormal(c *Contact, dt float32) float32 {
	var g rl.Vector3
	if !c.BodyA.IsStatic() {
		g = rl.Vector3Add(g, w.Gravity)
	}
	if !c.BodyB.IsStatic() {
		g = rl.Vector3Subtract(g, w.Gravity)
	}
	return rl.Vector3DotProduct(g, c.Normal) * dt
}

func (w *World) resolveContact(c *Contact, isNew bool, dt float32) {
	a, b := c.BodyA, c.BodyB
	invMassSum := a.InvMass() + b.InvMass()
	if invMassSum == 0 {
		return
	}

	// Contact offsets from each center of mass
	rA := rl.Vector3Subtract(c.Point, a.Position)
	rB := rl.Vector3Subtract(c.Point, b.Position)

	relVel := rl.Vector3Subtract(a.velocityAt(rA), b.velocityAt(rB))
	velAlongNormal := rl.Vector3DotProduct(relVel, c.Normal)
	// Restitution reflects the approach velocity from before this step's
	// gravity; the gravity part is only cancelled.
	approach := velAlongNormal - w.gravityAlongNormal(c, dt)
	c.ImpactSpeed = -approach

	if isNew && velAlongNormal < 0 {
		w.Contacts.Invoke(*c)
	}

	// Push apart, split by inverse mass
	if correction := c.Depth - PenetrationSlop; correction > 0 {
		push := rl.Vector3Scale(c.Normal, correction*PositionCorrection/invMassSum)
		a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(push, a.InvMass()))
		b.Position = rl.Vector3Subtract(b.Position, rl.Vector3Scale(push, b.InvMass()))
	}

	// Separating already
	if velAlongNormal >= 0 {
		return
	}

	cm := w.ContactMaterialFor(a.Material, b.Material)
	target := float32(0)
	if -approach >= RestingSpeed {
		target = -cm.Restitution * approach
	}

	j := (target - velAlongNormal) / invMassSum
	normalImpulse := rl.Vector3Scale(c.Normal, j)
	a.ApplyImpulse(normalImpulse, rA)
	b.ApplyImpulse(rl.Vector3Negate(normalImpulse), rB)

	// Coulomb friction, bounded by the normal impulse
	relVel = rl.Vector3Subtract(a.velocityAt(rA), b.velocityAt(rB))
	tangentVel := rl.Vector3Subtract(relVel, rl.Vector3Scale(c.Normal, rl.Vector3DotProduct(relVel, c.Normal)))
	speed := rl.Vector3Length(tangentVel)
	if speed < 1e-6 || cm.Friction <= 0 {
		return
	}
	tangent := rl.Vector3Scale(tangentVel, 1/speed)

	k := invMassSum +
		angularTerm(rA, tangent, a.invInertia) +
		angularTerm(rB, tangent, b.invInertia)
	jt := -speed / k
	maxFriction := cm.Friction * j
	if jt < -maxFriction {
		jt = -maxFriction
	}

	frictionImpulse := rl.Vector3Scale(tangent, jt)
	a.ApplyImpulse(frictionImpulse, rA)
	b.ApplyImpulse(rl.Vector3Negate(frictionImpulse), rB)
}

// angularTerm is the rotational contribution (r x t)^T I^-1 (r x t) to the
// effective mass along t.
func angularTerm(r, t, invInertia rl.Vector3) float32 {
	rt := rl.Vector3CrossProduct(r, t)
	return rt.X*rt.X*invInertia.X + rt.Y*rt.Y*invInertia.Y + rt.Z*rt.Z*invInertia.Z
}
