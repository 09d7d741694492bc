package engine

// EventWithArg is a multicast event. Listeners run in the order they were
// added; a listener added while the event fires waits for the next Invoke.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) Len() int {
	return len(e.listeners)
}

// Event is an EventWithArg for listeners that take nothing, like OnDeath.
type Event struct {
	inner EventWithArg[struct{}]
}

func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.inner.AddListener(func(struct{}) { callback() })
}

func (e *Event) RemoveAllListeners() {
	e.inner.RemoveAllListeners()
}

func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

func (e *Event) Len() int {
	return e.inner.Len()
}
