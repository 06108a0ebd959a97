package components

import (
	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshSphere MeshType = iota
	MeshPlane
)

// MeshRenderer draws a generated mesh at its GameObject's pose. The GPU model
// is created by Load, so renderers can be built before a window exists.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType    MeshType
	Color       rl.Color
	Size        rl.Vector3 // sphere: X is the radius; plane: X by Z
	Segments    int
	DoubleSided bool
	// LocalTransform is applied to the mesh before the GameObject transform.
	LocalTransform rl.Matrix

	model  rl.Model
	loaded bool
}

func NewSphereRenderer(radius float32, segments int, color rl.Color) *MeshRenderer {
	return &MeshRenderer{
		MeshType:       MeshSphere,
		Color:          color,
		Size:           rl.Vector3{X: radius, Y: radius, Z: radius},
		Segments:       segments,
		LocalTransform: rl.MatrixIdentity(),
	}
}

// NewPlaneRenderer builds a width x length plane whose normal is local +Z,
// matching physics.Plane.
func NewPlaneRenderer(width, length float32, color rl.Color) *MeshRenderer {
	return &MeshRenderer{
		MeshType: MeshPlane,
		Color:    color,
		Size:     rl.Vector3{X: width, Y: 0, Z: length},
		Segments: 1,
		// raylib generates planes facing +Y
		LocalTransform: rl.MatrixRotateX(rl.Pi / 2),
	}
}

// Load uploads the mesh and binds shader to its material.
func (m *MeshRenderer) Load(shader rl.Shader) {
	if m.loaded {
		return
	}
	var mesh rl.Mesh
	switch m.MeshType {
	case MeshSphere:
		mesh = rl.GenMeshSphere(m.Size.X, m.Segments, m.Segments)
	case MeshPlane:
		mesh = rl.GenMeshPlane(m.Size.X, m.Size.Z, m.Segments, m.Segments)
	}
	m.model = rl.LoadModelFromMesh(mesh)
	m.model.Materials.Shader = shader
	m.model.Materials.Maps.Color = m.Color
	m.loaded = true
}

func (m *MeshRenderer) Loaded() bool {
	return m.loaded
}

// ModelMatrix returns the full mesh-to-world transform.
func (m *MeshRenderer) ModelMatrix() rl.Matrix {
	g := m.GetGameObject()
	if g == nil {
		return m.LocalTransform
	}
	return rl.MatrixMultiply(m.LocalTransform, g.Transform.Matrix())
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !m.loaded {
		return
	}

	m.model.Transform = m.ModelMatrix()

	if m.DoubleSided {
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *MeshRenderer) Unload() {
	if !m.loaded {
		return
	}
	rl.UnloadModel(m.model)
	m.loaded = false
}
