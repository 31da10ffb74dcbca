package double

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleEvent struct {
	payload int
}

func TestSwitchboard_ExposedSignalStartsLive(t *testing.T) {
	sw := NewSwitchboard()
	sw.Expose("test.SampleSignal")

	_, redirected := sw.Redirect("test.SampleSignal")

	assert.False(t, redirected)
}

func TestSwitchboard_DisableRedirectsToSubstitute(t *testing.T) {
	sw := NewSwitchboard()
	sw.Expose("test.SampleSignal")
	d, err := Substitute[sampleEvent](sw, "test.SampleSignal", nil)
	assert.NoError(t, err)

	assert.NoError(t, sw.Disable("test.SampleSignal"))

	substitute, redirected := sw.Redirect("test.SampleSignal")
	assert.True(t, redirected)
	assert.NoError(t, substitute(sampleEvent{1}))
	assert.Equal(t, 1, d.CallCount())
}

func TestSwitchboard_EnableRestoresLiveDispatch(t *testing.T) {
	sw := NewSwitchboard()
	sw.Expose("test.SampleSignal")
	assert.NoError(t, sw.Disable("test.SampleSignal"))

	assert.NoError(t, sw.Enable("test.SampleSignal"))

	_, redirected := sw.Redirect("test.SampleSignal")
	assert.False(t, redirected)
}

func TestSwitchboard_EnableUnknownSignal(t *testing.T) {
	sw := NewSwitchboard()

	err := sw.Enable("test.UnknownSignal")

	assert.True(t, errors.Is(err, ErrUnknownSignal))
}

func TestSwitchboard_DisableUnknownSignal(t *testing.T) {
	sw := NewSwitchboard()

	err := sw.Disable("test.UnknownSignal")

	assert.True(t, errors.Is(err, ErrUnknownSignal))
}

func TestSwitchboard_UnexposedSignalNeverRedirects(t *testing.T) {
	sw := NewSwitchboard()

	_, redirected := sw.Redirect("test.UnknownSignal")

	assert.False(t, redirected)
}

func TestSwitchboard_DoubledWithoutSubstitute(t *testing.T) {
	sw := NewSwitchboard()
	sw.Expose("test.SampleSignal")
	assert.NoError(t, sw.Disable("test.SampleSignal"))

	substitute, redirected := sw.Redirect("test.SampleSignal")

	assert.True(t, redirected)
	assert.True(t, errors.Is(substitute(sampleEvent{1}), ErrNoSubstitute))
}

func TestSwitchboard_ExposeIsIdempotent(t *testing.T) {
	sw := NewSwitchboard()
	sw.Expose("test.SampleSignal")
	assert.NoError(t, sw.Disable("test.SampleSignal"))

	sw.Expose("test.SampleSignal")

	_, redirected := sw.Redirect("test.SampleSignal")
	assert.True(t, redirected, "re-exposing must not reset the doubled state")
}

func TestSwitchboard_InstancesAreIsolatedScopes(t *testing.T) {
	sw1 := NewSwitchboard()
	sw2 := NewSwitchboard()
	sw1.Expose("test.SampleSignal")
	sw2.Expose("test.SampleSignal")

	assert.NoError(t, sw1.Disable("test.SampleSignal"))

	_, redirected := sw2.Redirect("test.SampleSignal")
	assert.False(t, redirected, "toggling one scope must not leak into another")
}

func TestSwitchboard_ConcurrentTogglesAndReads(t *testing.T) {
	sw := NewSwitchboard()
	sw.Expose("test.SampleSignal")
	_, err := Substitute[sampleEvent](sw, "test.SampleSignal", nil)
	assert.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					_ = sw.Disable("test.SampleSignal")
					_ = sw.Enable("test.SampleSignal")
				} else {
					_, _ = sw.Redirect("test.SampleSignal")
				}
			}
		}(i)
	}
	wg.Wait()
}
