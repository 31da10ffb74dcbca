// Package double lets tests redirect a signal's emission to a verifiable
// substitute while call sites keep emitting through the same interface.
//
// A Switchboard is an isolated scope: every test (or test worker) can hold
// its own instance, so toggling a signal in one scope never affects another.
package double

import (
	"fmt"
	"sync"
)

var (
	ErrUnknownSignal = fmt.Errorf("double: signal not exposed")
	ErrNotDoubled    = fmt.Errorf("double: substitute invoked while live")
	ErrNoSubstitute  = fmt.Errorf("double: signal doubled without a substitute")
	ErrVerification  = fmt.Errorf("double: verification failed")
)

type state int

const (
	live state = iota
	doubled
)

type registration struct {
	state      state
	substitute func(event any) error
}

// SwitchboardImp holds the live/doubled state of every exposed signal,
// keyed by signal name. All access is synchronized; emissions may race with
// toggles from other goroutines without corrupting the registry.
type SwitchboardImp struct {
	mu      sync.RWMutex
	signals map[string]*registration
}

func NewSwitchboard() *SwitchboardImp {
	return &SwitchboardImp{signals: make(map[string]*registration)}
}

// Expose registers a signal name with the switchboard, initially live.
// Exposing an already-exposed name keeps its current state.
func (sw *SwitchboardImp) Expose(signalName string) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if _, ok := sw.signals[signalName]; !ok {
		sw.signals[signalName] = &registration{state: live}
	}
}

// Enable switches the signal to live dispatch: emissions reach the bound
// observers again.
func (sw *SwitchboardImp) Enable(signalName string) error {
	return sw.setState(signalName, live)
}

// Disable switches the signal to its substitute: the bound observers are not
// invoked until Enable is called.
func (sw *SwitchboardImp) Disable(signalName string) error {
	return sw.setState(signalName, doubled)
}

func (sw *SwitchboardImp) setState(signalName string, s state) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	reg, ok := sw.signals[signalName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSignal, signalName)
	}
	reg.state = s
	return nil
}

// Redirect implements signals.Redirector. It returns the substitute while the
// signal is doubled and reports false while it is live or unexposed.
func (sw *SwitchboardImp) Redirect(signalName string) (func(event any) error, bool) {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	reg, ok := sw.signals[signalName]
	if !ok || reg.state != doubled {
		return nil, false
	}
	if reg.substitute == nil {
		return func(any) error {
			return fmt.Errorf("%w: %q", ErrNoSubstitute, signalName)
		}, true
	}
	return reg.substitute, true
}

func (sw *SwitchboardImp) stateOf(signalName string) (state, bool) {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	reg, ok := sw.signals[signalName]
	if !ok {
		return live, false
	}
	return reg.state, true
}
