package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Scene is the root of the visual scene graph.
type Scene struct {
	Name        string
	Background  rl.Color
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		Background:  rl.Black,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	s.GameObjects = append(s.GameObjects, g)
}

// Each calls fn for every active GameObject carrying a component of type T.
func Each[T Component](s *Scene, fn func(g *GameObject, c T)) {
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		if c, ok := TryGetComponent[T](g); ok {
			fn(g, c)
		}
	}
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs every component's Update on active objects, in insertion order.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
