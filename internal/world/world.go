// Package world builds the court scene: the visual scene graph, the physics
// bodies behind it and the pairing between the two.
package world

import (
	"fmt"
	"log"

	"courtbounce/internal/components"
	"courtbounce/internal/config"
	"courtbounce/internal/engine"
	"courtbounce/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material names shared by bodies and the contact rule between them.
const (
	BallMaterialName  = "ball"
	CourtMaterialName = "court"
)

// Simulation is the part of a physics world the scene depends on.
// *physics.World satisfies it.
type Simulation interface {
	AddBody(b *physics.Body)
	AddContactMaterial(cm *physics.ContactMaterial)
	Step(dt float32)
	OnContact(fn func(physics.Contact))
}

// Ball is the dynamic sphere: a mesh that mirrors a physics body.
type Ball struct {
	Object    *engine.GameObject
	Body      *physics.Body
	Rigidbody *components.Rigidbody
}

// Court is the static ground plane.
type Court struct {
	Object *engine.GameObject
	Body   *physics.Body
}

// World owns the court scene and the simulation that drives it.
type World struct {
	Scene   *engine.Scene
	Physics Simulation

	Camera           *components.Camera
	AmbientLight     *components.AmbientLight
	DirectionalLight *components.DirectionalLight

	Ball  *Ball
	Court *Court

	BallMaterial    *physics.Material
	CourtMaterial   *physics.Material
	ContactMaterial *physics.ContactMaterial

	cfg *config.Config
}

// New sets up camera, lights and materials, then creates the court and the
// ball. The camera aspect starts at 1 until the caller sets a viewport.
func New(cfg *config.Config, sim Simulation) (*World, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if sim == nil {
		return nil, fmt.Errorf("world: nil simulation")
	}
	background, err := parseColor(cfg.Lighting.Background)
	if err != nil {
		return nil, err
	}

	w := &World{
		Scene:         engine.NewScene("Court"),
		Physics:       sim,
		BallMaterial:  physics.NewMaterial(BallMaterialName),
		CourtMaterial: physics.NewMaterial(CourtMaterialName),
		cfg:           cfg,
	}
	w.Scene.Background = background

	w.setupCamera()
	if err := w.setupLights(); err != nil {
		return nil, err
	}

	if cfg.Contact.Enabled {
		w.ContactMaterial = physics.NewContactMaterial(w.BallMaterial, w.CourtMaterial, cfg.Contact.Friction, cfg.Contact.Restitution)
		sim.AddContactMaterial(w.ContactMaterial)
	}

	if _, err := w.CreateCourt(); err != nil {
		return nil, err
	}
	if _, err := w.CreateBall(); err != nil {
		return nil, err
	}

	w.Scene.Start()
	return w, nil
}

func (w *World) setupCamera() {
	c := w.cfg.Camera
	obj := engine.NewGameObject("MainCamera")
	obj.Transform.Position = vec3(c.Position)

	w.Camera = components.NewCamera(c.FOV, c.Near, c.Far)
	obj.AddComponent(w.Camera)
	w.Camera.LookAt(vec3(c.Target))

	w.Scene.AddGameObject(obj)
}

func (w *World) setupLights() error {
	l := w.cfg.Lighting

	ambientColor, err := parseColor(l.AmbientColor)
	if err != nil {
		return err
	}
	ambient := engine.NewGameObject("AmbientLight")
	w.AmbientLight = components.NewAmbientLight(ambientColor, l.AmbientIntensity)
	ambient.AddComponent(w.AmbientLight)
	w.Scene.AddGameObject(ambient)

	sunColor, err := parseColor(l.DirectionalColor)
	if err != nil {
		return err
	}
	sun := engine.NewGameObject("DirectionalLight")
	sun.Transform.Position = vec3(l.DirectionalPosition)
	w.DirectionalLight = components.NewDirectionalLight(sunColor, l.DirectionalIntensity)
	sun.AddComponent(w.DirectionalLight)
	w.Scene.AddGameObject(sun)

	return nil
}

// CreateCourt adds a static plane body and its visual, rotated so the
// surface normal points up. The court is never moved afterwards.
func (w *World) CreateCourt() (*Court, error) {
	c := w.cfg.Court
	color, err := parseColor(c.Color)
	if err != nil {
		return nil, err
	}

	body := physics.NewBody(physics.BodyOptions{
		Mass:     0,
		Shape:    physics.NewPlane(),
		Material: w.CourtMaterial,
	})
	body.SetRotationFromAxisAngle(rl.Vector3{X: 1, Y: 0, Z: 0}, -rl.Pi/2)

	obj := engine.NewGameObject("Court")
	obj.Tags = []string{CourtMaterialName}
	renderer := components.NewPlaneRenderer(c.Width, c.Length, color)
	renderer.DoubleSided = true
	obj.AddComponent(renderer)
	rb := components.NewRigidbody(body)
	obj.AddComponent(rb)
	rb.SyncTransform()

	w.Physics.AddBody(body)
	w.Scene.AddGameObject(obj)

	w.Court = &Court{Object: obj, Body: body}
	return w.Court, nil
}

// CreateBall adds the dynamic sphere and its visual at the configured start
// position. The world keeps the pair for per-tick syncing.
func (w *World) CreateBall() (*Ball, error) {
	b := w.cfg.Ball
	color, err := parseColor(b.Color)
	if err != nil {
		return nil, err
	}

	body := physics.NewBody(physics.BodyOptions{
		Mass:     b.Mass,
		Shape:    physics.NewSphere(b.Radius),
		Position: vec3(b.Position),
		Material: w.BallMaterial,
	})

	obj := engine.NewGameObject("Ball")
	obj.Tags = []string{BallMaterialName}
	obj.AddComponent(components.NewSphereRenderer(b.Radius, b.Segments, color))
	rb := components.NewRigidbody(body)
	obj.AddComponent(rb)
	rb.SyncTransform()

	w.Physics.AddBody(body)
	w.Scene.AddGameObject(obj)

	if w.Ball != nil {
		log.Printf("World: replacing ball %d with %d", w.Ball.Body.ID, body.ID)
	}
	w.Ball = &Ball{Object: obj, Body: body, Rigidbody: rb}
	return w.Ball, nil
}

// Update runs the scene's components for one tick. Every Rigidbody copies
// its body pose onto its object, so the ball mesh mirrors the ball body.
// It reports whether the ball pair exists and is in sync afterwards.
func (w *World) Update(dt float32) bool {
	w.Scene.Update(dt)
	if w.Ball == nil || w.Ball.Object == nil || w.Ball.Body == nil || w.Ball.Rigidbody == nil {
		return false
	}
	return w.Ball.Rigidbody.InSync()
}

func vec3(v config.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func parseColor(hex string) (rl.Color, error) {
	c, err := config.ParseColor(hex)
	if err != nil {
		return rl.Color{}, fmt.Errorf("world: %w", err)
	}
	return rl.NewColor(c.R, c.G, c.B, c.A), nil
}
