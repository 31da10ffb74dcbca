package signals

// Observer consumes one emission of a signal's payload. Failure is signaled
// through the returned error; the contract prescribes no retries.
type Observer[E any] interface {
	Handle(event E) error
}

// ObserverFunc adapts a plain function to the Observer contract.
type ObserverFunc[E any] func(E) error

func (f ObserverFunc[E]) Handle(event E) error { return f(event) }

// Signal is a named event type with a fixed, ordered observer binding.
type Signal[E any] interface {
	Name() string
	Emit(event E) error
}

// Redirector diverts an emission away from the bound observers, typically to
// a registered test double. Emit consults it before dispatching.
type Redirector interface {
	Redirect(signalName string) (func(event any) error, bool)
}
