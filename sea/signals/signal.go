package signals

// SignalImp is immutable after construction: the observer list is fixed at
// definition time and identical across emissions.
type SignalImp[E any] struct {
	name       string
	observers  []Observer[E]
	redirector Redirector
}

type Option[E any] func(*SignalImp[E])

// WithRedirector routes emissions through r, so a switchboard can substitute
// a double without any call-site change.
func WithRedirector[E any](r Redirector) Option[E] {
	return func(s *SignalImp[E]) {
		s.redirector = r
	}
}

func NewSignal[E any](name string, observers []Observer[E], opts ...Option[E]) *SignalImp[E] {
	s := &SignalImp[E]{name: name, observers: observers}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SignalImp[E]) Name() string {
	return s.name
}

// Emit invokes every bound observer in declaration order, synchronously, on
// the calling goroutine. The first observer failure aborts the remaining
// observers and is returned to the caller unchanged.
func (s *SignalImp[E]) Emit(event E) error {
	if s.redirector != nil {
		if substitute, ok := s.redirector.Redirect(s.name); ok {
			return substitute(event)
		}
	}
	return Dispatch(s.observers, event)
}

// Dispatch runs the synchronous observer loop. It behaves exactly like the
// sequence of direct calls the producer would otherwise have made: no
// wrapping, no retry, no parallelism.
func Dispatch[E any](observers []Observer[E], event E) error {
	for _, observer := range observers {
		if err := observer.Handle(event); err != nil {
			return err
		}
	}
	return nil
}
