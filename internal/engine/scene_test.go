package engine

import "testing"

func TestSceneEachSkipsInactiveAndMissing(t *testing.T) {
	scene := NewScene("Test")
	withComp := NewGameObject("With")
	withComp.AddComponent(&countingComponent{})
	without := NewGameObject("Without")
	inactive := NewGameObject("Inactive")
	inactive.AddComponent(&countingComponent{})
	inactive.Active = false

	scene.AddGameObject(withComp)
	scene.AddGameObject(without)
	scene.AddGameObject(inactive)

	var visited []string
	Each(scene, func(g *GameObject, c *countingComponent) {
		visited = append(visited, g.Name)
	})

	if len(visited) != 1 || visited[0] != "With" {
		t.Errorf("Expected only [With] to be visited, got %v", visited)
	}
}

func TestSceneStartAndUpdateReachEveryObject(t *testing.T) {
	scene := NewScene("Test")
	a, b := &countingComponent{}, &countingComponent{}
	objA, objB := NewGameObject("A"), NewGameObject("B")
	objA.AddComponent(a)
	objB.AddComponent(b)
	scene.AddGameObject(objA)
	scene.AddGameObject(objB)

	scene.Start()
	scene.Update(1.0 / 60.0)

	for name, c := range map[string]*countingComponent{"A": a, "B": b} {
		if c.starts != 1 || c.updates != 1 {
			t.Errorf("%s: starts=%d updates=%d, want 1/1", name, c.starts, c.updates)
		}
	}
}
