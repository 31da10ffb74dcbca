package double

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Stub is the behavior a substitute performs besides recording the call.
type Stub[E any] func(event E) error

// DoubleImp records every invocation made through a doubled signal so tests
// can assert producer behavior without triggering the real observers.
type DoubleImp[E any] struct {
	mu          sync.Mutex
	signalName  string
	switchboard *SwitchboardImp
	stub        Stub[E]
	calls       []E
}

// Substitute registers a call-recording double for an exposed signal. The
// double matches the signal's emit signature, so call sites observe no
// interface difference while the switch is doubled. stub may be nil, in which
// case invocations record the payload and succeed.
func Substitute[E any](sw *SwitchboardImp, signalName string, stub Stub[E]) (*DoubleImp[E], error) {
	d := &DoubleImp[E]{signalName: signalName, switchboard: sw, stub: stub}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	reg, ok := sw.signals[signalName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, signalName)
	}
	reg.substitute = func(event any) error {
		return d.Invoke(event.(E))
	}
	return d, nil
}

// Invoke records the call and runs the stub. Invoking a double while its
// signal is live is a misuse of the switch, not a test outcome.
func (d *DoubleImp[E]) Invoke(event E) error {
	if s, ok := d.switchboard.stateOf(d.signalName); !ok || s != doubled {
		return fmt.Errorf("%w: %q", ErrNotDoubled, d.signalName)
	}
	d.mu.Lock()
	d.calls = append(d.calls, event)
	stub := d.stub
	d.mu.Unlock()
	if stub == nil {
		return nil
	}
	return stub(event)
}

// Calls returns a copy of every recorded payload, in invocation order.
func (d *DoubleImp[E]) Calls() []E {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]E(nil), d.calls...)
}

func (d *DoubleImp[E]) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

// Reset discards the recorded calls, keeping the substitute registered.
func (d *DoubleImp[E]) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

// Verify checks that the double was invoked exactly with the expected
// payloads, in order. Every violation is reported, not just the first.
func (d *DoubleImp[E]) Verify(expected ...E) error {
	calls := d.Calls()
	var verr *multierror.Error
	if len(calls) != len(expected) {
		verr = multierror.Append(verr, fmt.Errorf(
			"%w: signal %q: expected %d call(s), recorded %d",
			ErrVerification, d.signalName, len(expected), len(calls)))
	}
	for i := 0; i < len(calls) && i < len(expected); i++ {
		if !reflect.DeepEqual(calls[i], expected[i]) {
			verr = multierror.Append(verr, fmt.Errorf(
				"%w: signal %q: call %d payload mismatch:\n%s",
				ErrVerification, d.signalName, i, payloadDiff(expected[i], calls[i])))
		}
	}
	return verr.ErrorOrNil()
}

func payloadDiff(expected, actual any) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(fmt.Sprintf("%#v", expected), fmt.Sprintf("%#v", actual), false)
	return dmp.DiffPrettyText(diffs)
}
