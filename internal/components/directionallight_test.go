package components

import (
	"testing"

	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDirectionalLightPointsAtTarget(t *testing.T) {
	obj := engine.NewGameObject("Sun")
	obj.Transform.Position = rl.Vector3{X: 5, Y: 10, Z: 7.5}
	sun := NewDirectionalLight(rl.White, 1)
	obj.AddComponent(sun)

	dir := sun.Direction()
	wantDir := rl.Vector3Normalize(rl.Vector3{X: -5, Y: -10, Z: -7.5})
	if rl.Vector3Distance(dir, wantDir) > 1e-5 {
		t.Errorf("Expected light direction %+v, got %+v", wantDir, dir)
	}
	if c := sun.LinearColor(); c[0] != 1 || c[1] != 1 || c[2] != 1 || c[3] != 1 {
		t.Errorf("Unexpected sun color %v", c)
	}
}

func TestDirectionalLightDefaultsDown(t *testing.T) {
	detached := NewDirectionalLight(rl.White, 1)
	if detached.Direction() != (rl.Vector3{X: 0, Y: -1, Z: 0}) {
		t.Errorf("Detached light should point down, got %+v", detached.Direction())
	}

	obj := engine.NewGameObject("Sun")
	onTarget := NewDirectionalLight(rl.White, 1)
	obj.AddComponent(onTarget)
	if onTarget.Direction() != (rl.Vector3{X: 0, Y: -1, Z: 0}) {
		t.Errorf("Light sitting on its target should point down, got %+v", onTarget.Direction())
	}
}
