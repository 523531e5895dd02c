package vtest

import (
	"github.com/vango-dev/multislider/pkg/drag"
)

// Callback names recorded by a Recorder.
const (
	Slide     = "slide"
	DragStart = "dragstart"
	DragStop  = "dragstop"
)

// Call is one recorded callback invocation.
type Call struct {
	Name     string
	Progress int
}

// Recorder captures host callbacks in invocation order.
type Recorder struct {
	calls []Call
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Callbacks returns callbacks that record into r.
func (r *Recorder) Callbacks() drag.Callbacks {
	return drag.Callbacks{
		OnSlide:     r.record(Slide),
		OnDragStart: r.record(DragStart),
		OnDragStop:  r.record(DragStop),
	}
}

// OnSlide returns a recording slide callback alone.
func (r *Recorder) OnSlide() func(int) { return r.record(Slide) }

func (r *Recorder) record(name string) func(int) {
	return func(p int) { r.calls = append(r.calls, Call{Name: name, Progress: p}) }
}

// Calls returns every recorded call.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns the recorded callback names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Name
	}
	return out
}

// Values returns the progress values passed to the named callback.
func (r *Recorder) Values(name string) []int {
	var out []int
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c.Progress)
		}
	}
	return out
}

// Count returns how many times the named callback ran.
func (r *Recorder) Count(name string) int { return len(r.Values(name)) }

// Len returns the total number of calls.
func (r *Recorder) Len() int { return len(r.calls) }

// Reset forgets every call.
func (r *Recorder) Reset() { r.calls = nil }
