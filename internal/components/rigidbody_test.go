package components

import (
	"testing"

	"courtbounce/internal/engine"
	"courtbounce/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRigidbodySyncTransformCopiesPose(t *testing.T) {
	body := physics.NewBody(physics.BodyOptions{Mass: 5, Shape: physics.NewSphere(0.5)})
	obj := engine.NewGameObject("Ball")
	rb := NewRigidbody(body)
	obj.AddComponent(rb)

	body.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	body.Quaternion = rl.QuaternionFromAxisAngle(rl.Vector3{X: 0, Y: 0, Z: 1}, 0.3)

	if rb.InSync() {
		t.Fatal("InSync should be false before syncing")
	}
	if !rb.SyncTransform() {
		t.Fatal("SyncTransform reported a missing side")
	}
	if obj.Transform.Position != body.Position || obj.Transform.Rotation != body.Quaternion {
		t.Errorf("Pose not copied: transform=%+v body=%+v/%+v", obj.Transform, body.Position, body.Quaternion)
	}
	if !rb.InSync() {
		t.Error("InSync should be true after syncing")
	}
}

func TestRigidbodySyncNeedsBothSides(t *testing.T) {
	detached := NewRigidbody(physics.NewBody(physics.BodyOptions{Mass: 1}))
	if detached.SyncTransform() {
		t.Error("SyncTransform without a GameObject should report false")
	}

	obj := engine.NewGameObject("Empty")
	noBody := NewRigidbody(nil)
	obj.AddComponent(noBody)
	obj.Transform.Position = rl.Vector3{X: 7}
	if noBody.SyncTransform() {
		t.Error("SyncTransform without a body should report false")
	}
	if obj.Transform.Position.X != 7 {
		t.Error("Transform changed without a body")
	}
}

func TestRigidbodyUpdateMirrorsBody(t *testing.T) {
	body := physics.NewBody(physics.BodyOptions{Mass: 5, Shape: physics.NewSphere(0.5)})
	obj := engine.NewGameObject("Ball")
	rb := NewRigidbody(body)
	obj.AddComponent(rb)

	body.Position = rl.Vector3{X: 0, Y: 4.2, Z: 0}
	obj.Update(1.0 / 60.0)
	if !rb.InSync() {
		t.Error("Update should copy the body pose onto the object")
	}
}
