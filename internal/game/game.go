// Package game runs the court scene: a fixed-step frame loop that advances
// physics, mirrors the ball onto its mesh and renders.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"courtbounce/internal/components"
	"courtbounce/internal/config"
	"courtbounce/internal/engine"
	"courtbounce/internal/physics"
	"courtbounce/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoWindow is returned when no drawing surface could be created.
var ErrNoWindow = errors.New("game: window could not be created")

// Window is the drawing surface's host.
type Window interface {
	ShouldClose() bool
	// Resized reports whether the size changed since the last call.
	Resized() bool
	Size() (width, height int)
}

// Renderer draws the scene onto the surface.
type Renderer interface {
	SetSize(width, height int)
	Size() (width, height int)
	Render(scene *engine.Scene, cam *components.Camera)
}

// Viewport is the drawing surface size in pixels.
type Viewport struct {
	Width, Height int
}

// TickInfo describes the state right after a tick.
type TickInfo struct {
	Tick         uint64
	Step         float32
	Time         float64
	BallPosition rl.Vector3
	BallVelocity rl.Vector3
	Bounces      int
}

// Game drives the world one fixed step per frame.
type Game struct {
	Config   *config.Config
	World    *world.World
	Window   Window
	Renderer Renderer

	// Resized fires after the surface and camera took a new size.
	Resized engine.EventWithArg[Viewport]
	// Ticked fires at the end of every tick.
	Ticked engine.EventWithArg[TickInfo]

	tick    uint64
	time    float64
	bounces int
}

// New builds the world on sim and sizes the camera to the window.
func New(cfg *config.Config, sim world.Simulation, win Window, r Renderer) (*Game, error) {
	if win == nil || r == nil {
		return nil, ErrNoWindow
	}
	if cfg == nil {
		cfg = config.Default()
	}
	w, err := world.New(cfg, sim)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	g := &Game{
		Config:   cfg,
		World:    w,
		Window:   win,
		Renderer: r,
	}

	sim.OnContact(g.onContact)

	width, height := win.Size()
	if !g.Resize(width, height) {
		log.Printf("Game: window reported %dx%d, keeping aspect %.3f", width, height, w.Camera.Aspect)
	}
	return g, nil
}

func (g *Game) onContact(c physics.Contact) {
	if g.World.Ball == nil {
		return
	}
	if c.BodyA == g.World.Ball.Body || c.BodyB == g.World.Ball.Body {
		g.bounces++
	}
}

// Resize sets the surface size and the camera aspect. Non-positive sizes
// are ignored.
func (g *Game) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	g.Renderer.SetSize(width, height)
	g.World.Camera.SetViewport(width, height)
	g.Resized.Invoke(Viewport{Width: width, Height: height})
	return true
}

// Tick advances the simulation by one fixed step regardless of how much
// wall-clock time passed, mirrors bodies onto their meshes and renders.
func (g *Game) Tick() {
	step := g.Config.Simulation.FixedStep
	g.World.Physics.Step(step)
	g.World.Update(step)
	g.Renderer.Render(g.World.Scene, g.World.Camera)

	g.tick++
	g.time += float64(step)
	g.Ticked.Invoke(g.Info())
}

// Run ticks until ctx is done, the window closes or maxTicks ticks have
// run. maxTicks <= 0 means no limit. Cancellation returns ctx.Err().
func (g *Game) Run(ctx context.Context, maxTicks int) error {
	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Window.ShouldClose() {
			log.Printf("Game: window closed after %d ticks", g.tick)
			return nil
		}
		if g.Window.Resized() {
			g.Resize(g.Window.Size())
		}
		g.Tick()
	}
	return nil
}

// Info reports the current tick count and ball state.
func (g *Game) Info() TickInfo {
	info := TickInfo{
		Tick:    g.tick,
		Step:    g.Config.Simulation.FixedStep,
		Time:    g.time,
		Bounces: g.bounces,
	}
	if b := g.World.Ball; b != nil && b.Body != nil {
		info.BallPosition = b.Body.Position
		info.BallVelocity = b.Body.Velocity
	}
	return info
}
