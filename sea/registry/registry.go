// Package registry is the explicit binding table from signal names to their
// ordered observer lists. Bindings are declared once at initialization and
// validated eagerly: a reference that does not resolve, or resolves to an
// observer for a different payload shape, fails at definition time rather
// than at first emission.
package registry

import (
	"fmt"
	"reflect"

	"github.com/krew-solutions/sea-go/sea/double"
	"github.com/krew-solutions/sea-go/sea/naming"
	"github.com/krew-solutions/sea-go/sea/signals"
)

var (
	ErrBinding          = fmt.Errorf("registry: invalid binding")
	ErrUnknownObserver  = fmt.Errorf("%w: observer not registered", ErrBinding)
	ErrContractMismatch = fmt.Errorf("%w: observer does not satisfy the signal contract", ErrBinding)
)

type registeredObserver struct {
	value       any
	payloadType reflect.Type
}

// RegistryImp maps qualified observer names to implementations. Registration
// happens during initialization; the table is not synchronized.
type RegistryImp struct {
	observers   map[string]registeredObserver
	convention  naming.Convention
	switchboard *double.SwitchboardImp
}

type Option func(*RegistryImp)

func WithConvention(c naming.Convention) Option {
	return func(r *RegistryImp) {
		r.convention = c
	}
}

// WithSwitchboard routes every signal defined against this registry through
// sw, so tests can double signals without call-site changes. Production
// registries normally omit it and always dispatch live.
func WithSwitchboard(sw *double.SwitchboardImp) Option {
	return func(r *RegistryImp) {
		r.switchboard = sw
	}
}

func NewRegistry(opts ...Option) *RegistryImp {
	r := &RegistryImp{
		observers:  make(map[string]registeredObserver),
		convention: naming.Default,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterObserver puts observer into the table under qualifiedName.
// Re-registering a name overwrites the previous entry.
func RegisterObserver[E any](r *RegistryImp, qualifiedName string, observer signals.Observer[E]) {
	r.observers[qualifiedName] = registeredObserver{
		value:       observer,
		payloadType: reflect.TypeOf((*E)(nil)).Elem(),
	}
}

// Binding enumerates the observers of a signal, literally or by context.
type Binding interface {
	observerNames(signalName string, convention naming.Convention) []string
}

type literalBinding []string

func (b literalBinding) observerNames(string, naming.Convention) []string {
	return b
}

// Observers binds a signal to explicitly named observers, in the given order.
// Duplicate names are preserved and invoked once each per emission.
func Observers(qualifiedNames ...string) Binding {
	return literalBinding(qualifiedNames)
}

type contextBinding []string

func (b contextBinding) observerNames(signalName string, convention naming.Convention) []string {
	return convention.ObserverNames(signalName, b...)
}

// Contexts binds a signal by naming convention: each context is expected to
// hold an observer named after the signal's bare event name.
func Contexts(contexts ...string) Binding {
	return contextBinding(contexts)
}

// Define binds a signal type to its ordered observer list, validating every
// reference before the signal can be emitted.
func Define[E any](r *RegistryImp, signalName string, binding Binding) (signals.Signal[E], error) {
	names := binding.observerNames(signalName, r.convention)
	payloadType := reflect.TypeOf((*E)(nil)).Elem()
	observers := make([]signals.Observer[E], 0, len(names))
	for _, name := range names {
		entry, ok := r.observers[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q bound to signal %q", ErrUnknownObserver, name, signalName)
		}
		observer, ok := entry.value.(signals.Observer[E])
		if !ok {
			return nil, fmt.Errorf("%w: %q handles %v, signal %q carries %v",
				ErrContractMismatch, name, entry.payloadType, signalName, payloadType)
		}
		observers = append(observers, observer)
	}
	if r.switchboard == nil {
		return signals.NewSignal(signalName, observers), nil
	}
	r.switchboard.Expose(signalName)
	return signals.NewSignal(signalName, observers, signals.WithRedirector[E](r.switchboard)), nil
}
