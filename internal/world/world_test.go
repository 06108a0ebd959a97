package world

import (
	"testing"

	"courtbounce/internal/components"
	"courtbounce/internal/config"
	"courtbounce/internal/engine"
	"courtbounce/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type stubSimulation struct {
	bodies    []*physics.Body
	materials []*physics.ContactMaterial
	steps     []float32
	listeners []func(physics.Contact)
}

func (s *stubSimulation) AddBody(b *physics.Body) { s.bodies = append(s.bodies, b) }

func (s *stubSimulation) AddContactMaterial(cm *physics.ContactMaterial) {
	s.materials = append(s.materials, cm)
}

func (s *stubSimulation) Step(dt float32) { s.steps = append(s.steps, dt) }

func (s *stubSimulation) OnContact(fn func(physics.Contact)) {
	s.listeners = append(s.listeners, fn)
}

func newTestWorld(t *testing.T) (*World, *stubSimulation) {
	t.Helper()
	sim := &stubSimulation{}
	w, err := New(config.Default(), sim)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w, sim
}

func TestNewRejectsNilSimulation(t *testing.T) {
	if _, err := New(config.Default(), nil); err == nil {
		t.Error("Expected error for nil simulation")
	}
}

func TestBallInitialPose(t *testing.T) {
	w, _ := newTestWorld(t)
	if w.Ball == nil {
		t.Fatal("Ball was not created")
	}

	want := rl.Vector3{X: 0, Y: 5, Z: 0}
	if w.Ball.Body.Position != want {
		t.Errorf("Body position %+v, want %+v", w.Ball.Body.Position, want)
	}
	if w.Ball.Object.Transform.Position != want {
		t.Errorf("Mesh position %+v, want %+v", w.Ball.Object.Transform.Position, want)
	}
	if w.Ball.Body.Quaternion != rl.QuaternionIdentity() {
		t.Errorf("Body orientation %+v, want identity", w.Ball.Body.Quaternion)
	}
	if w.Ball.Object.Transform.Rotation != w.Ball.Body.Quaternion {
		t.Error("Mesh orientation differs from body")
	}
	if w.Ball.Body.Mass != 5 || w.Ball.Body.IsStatic() {
		t.Errorf("Ball body should be dynamic with mass 5, got mass %f", w.Ball.Body.Mass)
	}
	if s, ok := w.Ball.Body.Shape.(*physics.Sphere); !ok || s.Radius != 0.5 {
		t.Errorf("Ball shape %+v, want sphere radius 0.5", w.Ball.Body.Shape)
	}
}

func TestCourtIsStaticAndFacesUp(t *testing.T) {
	w, _ := newTestWorld(t)
	if w.Court == nil {
		t.Fatal("Court was not created")
	}
	if !w.Court.Body.IsStatic() {
		t.Error("Court body should be static")
	}
	n := w.Court.Body.PlaneNormal()
	if rl.Vector3Distance(n, rl.Vector3{X: 0, Y: 1, Z: 0}) > 1e-5 {
		t.Errorf("Court normal %+v, want +Y", n)
	}
	if w.Court.Object.Transform.Rotation != w.Court.Body.Quaternion {
		t.Error("Court mesh orientation differs from body")
	}

	mr, ok := engine.TryGetComponent[*components.MeshRenderer](w.Court.Object)
	if !ok || !mr.DoubleSided || mr.Size.X != 30 || mr.Size.Z != 50 {
		t.Errorf("Unexpected court renderer %+v", mr)
	}
}

func TestBodiesRegistered(t *testing.T) {
	w, sim := newTestWorld(t)
	if len(sim.bodies) != 2 {
		t.Fatalf("Expected 2 bodies, got %d", len(sim.bodies))
	}
	if sim.bodies[0] != w.Court.Body || sim.bodies[1] != w.Ball.Body {
		t.Error("Court and ball bodies should be registered in creation order")
	}
	found := map[*engine.GameObject]bool{}
	for _, obj := range w.Scene.GameObjects {
		found[obj] = true
	}
	if !found[w.Ball.Object] || !found[w.Court.Object] {
		t.Error("Visual objects missing from scene")
	}
}

func TestContactMaterialRegisteredOnce(t *testing.T) {
	w, sim := newTestWorld(t)
	if len(sim.materials) != 1 {
		t.Fatalf("Expected exactly 1 contact material, got %d", len(sim.materials))
	}
	cm := sim.materials[0]
	if cm.Friction != 0.1 || cm.Restitution != 0.75 {
		t.Errorf("Contact material friction %f restitution %f", cm.Friction, cm.Restitution)
	}
	if !cm.Matches(w.Ball.Body.Material, w.Court.Body.Material) {
		t.Error("Contact material does not match ball and court body materials")
	}
	if w.Ball.Body.Material.Name != BallMaterialName || w.Court.Body.Material.Name != CourtMaterialName {
		t.Errorf("Unexpected material names %q / %q", w.Ball.Body.Material.Name, w.Court.Body.Material.Name)
	}
	if !w.Ball.Object.HasTag(BallMaterialName) || !w.Court.Object.HasTag(CourtMaterialName) {
		t.Error("Visual objects should carry their material tag")
	}
}

func TestContactMaterialDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Contact.Enabled = false
	sim := &stubSimulation{}
	w, err := New(cfg, sim)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(sim.materials) != 0 || w.ContactMaterial != nil {
		t.Error("No contact material should be registered when disabled")
	}
}

func TestUpdateMirrorsBodies(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Ball.Body.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	w.Ball.Body.Quaternion = rl.QuaternionFromAxisAngle(rl.Vector3{X: 0, Y: 0, Z: 1}, 0.5)
	if w.Ball.Rigidbody.InSync() {
		t.Fatal("Mesh should lag the body before Update")
	}

	if !w.Update(1.0 / 60.0) {
		t.Fatal("Update reported the ball out of sync")
	}
	if w.Ball.Object.Transform.Position != w.Ball.Body.Position {
		t.Errorf("Mesh position %+v, want %+v", w.Ball.Object.Transform.Position, w.Ball.Body.Position)
	}
	if w.Ball.Object.Transform.Rotation != w.Ball.Body.Quaternion {
		t.Error("Mesh orientation differs from body after Update")
	}

	w.Ball = nil
	if w.Update(1.0 / 60.0) {
		t.Error("Update should report false without a ball")
	}
}

func TestUpdateSkipsInactiveBall(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Ball.Object.Active = false
	w.Ball.Body.Position = rl.Vector3{X: 0, Y: 1, Z: 0}
	if w.Update(1.0 / 60.0) {
		t.Error("Inactive ball should not be mirrored")
	}
}

func TestSceneSetup(t *testing.T) {
	w, _ := newTestWorld(t)
	if w.Scene.Background != rl.NewColor(0x87, 0xce, 0xeb, 0xff) {
		t.Errorf("Unexpected background %+v", w.Scene.Background)
	}
	if w.Camera.FOV != 75 || w.Camera.Near != 0.1 || w.Camera.Far != 1000 {
		t.Errorf("Unexpected camera %+v", w.Camera)
	}
	if w.Camera.Position() != (rl.Vector3{X: 0, Y: 5, Z: 10}) {
		t.Errorf("Unexpected camera position %+v", w.Camera.Position())
	}
	if w.AmbientLight.Intensity != 5 || w.DirectionalLight.Intensity != 1 {
		t.Error("Unexpected light intensities")
	}
}

func TestNewWithRealPhysics(t *testing.T) {
	pw := physics.NewWorld(rl.Vector3{X: 0, Y: -9.82, Z: 0})
	w, err := New(config.Default(), pw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := pw.ContactMaterialFor(w.BallMaterial, w.CourtMaterial); got != w.ContactMaterial {
		t.Errorf("Physics world resolved %v, want registered contact material", got)
	}
	pw.Step(1.0 / 60.0)
	w.Update(1.0 / 60.0)
	if w.Ball.Object.Transform.Position.Y >= 5 {
		t.Errorf("Ball mesh should follow the falling body, y=%f", w.Ball.Object.Transform.Position.Y)
	}
}
