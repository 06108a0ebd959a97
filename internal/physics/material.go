package physics

import "fmt"

// Material is a named surface tag. Materials are compared by identity, so
// bodies that should share a contact rule must share the same *Material.
type Material struct {
	Name string
}

func NewMaterial(name string) *Material {
	return &Material{Name: name}
}

// ContactMaterial binds friction and restitution to a pair of materials.
// Restitution is 0 for no bounce and 1 for a perfectly elastic impact.
type ContactMaterial struct {
	A           *Material
	B           *Material
	Friction    float32
	Restitution float32
}

func NewContactMaterial(a, b *Material, friction, restitution float32) *ContactMaterial {
	return &ContactMaterial{
		A:           a,
		B:           b,
		Friction:    friction,
		Restitution: restitution,
	}
}

// Matches reports whether the rule applies to the pair, in either order.
func (c *ContactMaterial) Matches(a, b *Material) bool {
	if a == nil || b == nil {
		return false
	}
	return (c.A == a && c.B == b) || (c.A == b && c.B == a)
}

func (c *ContactMaterial) String() string {
	return fmt.Sprintf("%s/%s friction=%.2f restitution=%.2f",
		materialName(c.A), materialName(c.B), c.Friction, c.Restitution)
}

func materialName(m *Material) string {
	if m == nil {
		return "<default>"
	}
	return m.Name
}

// Defaults applied to pairs with no registered rule.
const (
	DefaultFriction    = 0.3
	DefaultRestitution = 0.0
)
