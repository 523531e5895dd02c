package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	calls []string
	vals  []int
}

func (r *recorder) callbacks() Callbacks {
	rec := func(name string) func(int) {
		return func(p int) {
			r.calls = append(r.calls, name)
			r.vals = append(r.vals, p)
		}
	}
	return Callbacks{
		OnSlide:     rec("slide"),
		OnDragStart: rec("start"),
		OnDragStop:  rec("stop"),
	}
}

func at(p int) ProgressFunc {
	return func() (int, bool) { return p, true }
}

func unresolved() (int, bool) { return 0, false }

func TestSession_Lifecycle(t *testing.T) {
	rec := &recorder{}
	s := NewSession(rec.callbacks())
	assert.Equal(t, Idle, s.State())

	assert.True(t, s.Activate(0, at(10)))
	assert.Equal(t, Dragging, s.State())
	assert.True(t, s.Move(at(20)))
	assert.True(t, s.Move(at(30)))
	assert.True(t, s.Deactivate(at(35)))
	assert.Equal(t, Idle, s.State())

	assert.Equal(t, []string{"start", "slide", "slide", "slide", "stop"}, rec.calls)
	assert.Equal(t, []int{10, 20, 30, 35, 35}, rec.vals)
}

func TestSession_NonLeftButtonIgnored(t *testing.T) {
	for _, button := range []int{1, 2, 3, -1} {
		rec := &recorder{}
		s := NewSession(rec.callbacks())
		assert.False(t, s.Activate(button, at(50)))
		assert.Equal(t, Idle, s.State())
		assert.Empty(t, rec.calls)
	}
}

func TestSession_IdleNoOps(t *testing.T) {
	rec := &recorder{}
	s := NewSession(rec.callbacks())

	assert.False(t, s.Move(at(1)))
	assert.False(t, s.Move(at(2)))
	assert.False(t, s.Deactivate(at(3)))
	assert.False(t, s.Deactivate(at(4)))
	assert.Empty(t, rec.calls)
}

func TestSession_RepeatedActivate(t *testing.T) {
	rec := &recorder{}
	s := NewSession(rec.callbacks())

	assert.True(t, s.Activate(0, at(5)))
	assert.False(t, s.Activate(0, at(6)))
	assert.Equal(t, []string{"start"}, rec.calls)
}

func TestSession_UnresolvedStillTransitions(t *testing.T) {
	rec := &recorder{}
	s := NewSession(rec.callbacks())

	assert.True(t, s.Activate(0, unresolved))
	assert.True(t, s.Active())
	assert.True(t, s.Move(unresolved))
	assert.True(t, s.Deactivate(unresolved))
	assert.False(t, s.Active())
	assert.Empty(t, rec.calls)
}

func TestSession_NilCallbacks(t *testing.T) {
	s := NewSession(Callbacks{})
	assert.True(t, s.Activate(0, at(1)))
	assert.True(t, s.Move(at(2)))
	assert.True(t, s.Deactivate(nil))
	assert.Equal(t, Idle, s.State())
}

func TestSession_ProgressResolvedLazily(t *testing.T) {
	calls := 0
	p := func() (int, bool) {
		calls++
		return 42, true
	}

	s := NewSession(Callbacks{OnSlide: func(int) {}})
	s.Activate(0, p) // no OnDragStart, nothing to resolve
	assert.Equal(t, 0, calls)
	s.Move(p)
	assert.Equal(t, 1, calls)
}

func TestSession_Reset(t *testing.T) {
	rec := &recorder{}
	s := NewSession(rec.callbacks())
	s.Activate(0, at(1))
	s.Reset()
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.Deactivate(at(2)))
	assert.Equal(t, []string{"start"}, rec.calls)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "unknown", State(9).String())
}
