package components

import (
	"math"
	"testing"

	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCourtMeshFacesUp(t *testing.T) {
	obj := engine.NewGameObject("Court")
	obj.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1, Y: 0, Z: 0}, -math.Pi/2)
	mr := NewPlaneRenderer(30, 50, rl.Brown)
	obj.AddComponent(mr)

	// Generated plane meshes face +Y before any transform
	m := mr.ModelMatrix()
	normal := rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{X: 0, Y: 1, Z: 0}, m))
	if rl.Vector3Distance(normal, rl.Vector3{X: 0, Y: 1, Z: 0}) > 1e-5 {
		t.Errorf("Court mesh normal should point up, got %+v", normal)
	}
	// 30 wide along X, 50 long along Z
	corner := rl.Vector3Transform(rl.Vector3{X: 15, Y: 0, Z: 25}, m)
	if math.Abs(float64(corner.X)-15) > 1e-4 || math.Abs(float64(corner.Z)-25) > 1e-4 || math.Abs(float64(corner.Y)) > 1e-4 {
		t.Errorf("Court corner misplaced: %+v", corner)
	}
}
