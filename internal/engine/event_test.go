package engine

import "testing"

func TestEventInvokesInRegistrationOrder(t *testing.T) {
	var e EventWithArg[string]
	var order []string
	e.AddListener(func(v string) { order = append(order, "first:"+v) })
	e.AddListener(nil)
	e.AddListener(func(v string) { order = append(order, "second:"+v) })

	if e.GetListenerCount() != 2 {
		t.Fatalf("Expected 2 listeners, got %d", e.GetListenerCount())
	}

	e.Invoke("x")
	if len(order) != 2 || order[0] != "first:x" || order[1] != "second:x" {
		t.Errorf("Listeners invoked out of order: %v", order)
	}
}

func TestEventDeliversValueToEveryListener(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })

	e.Invoke(3)

	if sum != 33 {
		t.Errorf("Expected sum 33, got %d", sum)
	}
}
