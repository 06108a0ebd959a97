package engine

// EventWithArg is a multi-cast notification carrying one value. Listeners
// run synchronously in registration order.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener ignores nil callbacks.
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
