package world

import (
	"log"
	"os"

	"courtbounce/internal/components"
	"courtbounce/internal/config"
	"courtbounce/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Uniform names in assets/shaders/lighting.fs.
const (
	uniformAmbient    = "ambient"
	uniformLightColor = "lightColor"
	uniformLightDir   = "lightDir"
	uniformViewPos    = "viewPos"
)

// Renderer draws a scene into the raylib window with one ambient and one
// directional light. It needs an open window.
type Renderer struct {
	Shader rl.Shader

	// Overlay, when set, runs after the 3D pass inside the same frame.
	Overlay func()

	width, height int
	locs          map[string]int32
	loaded        []*components.MeshRenderer
}

// NewRenderer loads the lighting shader. Missing shader files fall back to
// raylib's default shader so the scene still draws unlit.
func NewRenderer(shaders config.ShaderConfig, width, height int) *Renderer {
	r := &Renderer{
		width:  width,
		height: height,
		locs:   make(map[string]int32),
	}

	vs, fs := shaders.Vertex, shaders.Fragment
	for _, path := range []string{vs, fs} {
		if _, err := os.Stat(path); err != nil {
			log.Printf("Renderer: shader %s unavailable (%v), using default shader", path, err)
			vs, fs = "", ""
			break
		}
	}
	r.Shader = rl.LoadShader(vs, fs)

	for _, name := range []string{uniformAmbient, uniformLightColor, uniformLightDir, uniformViewPos} {
		loc := rl.GetShaderLocation(r.Shader, name)
		if loc < 0 {
			log.Printf("Renderer: uniform %q not found in shader", name)
		}
		r.locs[name] = loc
	}
	return r
}

// SetSize resizes the drawing surface. The window is only touched when the
// size actually changes.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	if rl.GetScreenWidth() != width || rl.GetScreenHeight() != height {
		rl.SetWindowSize(width, height)
	}
}

func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Render draws one frame of scene as seen by cam.
func (r *Renderer) Render(scene *engine.Scene, cam *components.Camera) {
	engine.Each(scene, func(_ *engine.GameObject, m *components.MeshRenderer) {
		if !m.Loaded() {
			m.Load(r.Shader)
			r.loaded = append(r.loaded, m)
		}
	})
	r.updateLights(scene, cam)

	rl.BeginDrawing()
	rl.ClearBackground(scene.Background)

	rl.BeginMode3D(cam.GetRaylibCamera())
	// BeginMode3D derives its own projection from the window size; use the
	// camera's so aspect follows SetViewport.
	rl.SetMatrixProjection(cam.ProjectionMatrix())
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		if d := engine.FindComponent[engine.Drawable](g); d != nil {
			d.Draw()
		}
	}
	rl.EndMode3D()

	if r.Overlay != nil {
		r.Overlay()
	}
	rl.EndDrawing()
}

func (r *Renderer) updateLights(scene *engine.Scene, cam *components.Camera) {
	ambient := []float32{0, 0, 0, 1}
	engine.Each(scene, func(_ *engine.GameObject, l *components.AmbientLight) {
		c := l.LinearColor()
		for i := 0; i < 3; i++ {
			ambient[i] += c[i]
		}
	})
	r.setVec(uniformAmbient, ambient, rl.ShaderUniformVec4)

	engine.Each(scene, func(_ *engine.GameObject, l *components.DirectionalLight) {
		dir := l.Direction()
		r.setVec(uniformLightDir, []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)
		r.setVec(uniformLightColor, l.LinearColor(), rl.ShaderUniformVec4)
	})

	pos := cam.Position()
	r.setVec(uniformViewPos, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3)
}

func (r *Renderer) setVec(name string, value []float32, kind rl.ShaderUniformDataType) {
	loc, ok := r.locs[name]
	if !ok || loc < 0 {
		return
	}
	rl.SetShaderValue(r.Shader, loc, value, kind)
}

// Unload releases every mesh the renderer uploaded and the shader.
func (r *Renderer) Unload() {
	for _, m := range r.loaded {
		m.Unload()
	}
	r.loaded = nil
	rl.UnloadShader(r.Shader)
}
