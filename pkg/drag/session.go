// Package drag tracks whether a slider drag is in progress and decides
// which host callbacks a pointer event fires.
//
// A Session has two states:
//
//	Idle --(activate, left button)--> Dragging   fires OnDragStart
//	Dragging --(move)--> Dragging                fires OnSlide
//	Dragging --(deactivate)--> Idle              fires OnSlide, then OnDragStop
//
// Progress is supplied lazily through a ProgressFunc so it is only resolved
// when a callback is actually going to run. When a ProgressFunc reports
// false the callback is skipped but the transition still happens.
package drag

// State is the state of a drag session.
type State uint8

const (
	Idle State = iota
	Dragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Callbacks are the host's progress hooks. Any of them may be nil.
type Callbacks struct {
	// OnSlide receives every committed progress value.
	OnSlide func(progress int)

	// OnDragStart is called once when a drag session begins.
	OnDragStart func(progress int)

	// OnDragStop is called once when a drag session ends.
	OnDragStop func(progress int)
}

// ProgressFunc resolves the progress for the event being handled.
type ProgressFunc func() (int, bool)

// Session is the drag state of a single slider instance.
// It is not safe for concurrent use; the host delivers events one at a time.
type Session struct {
	state     State
	callbacks Callbacks
}

// NewSession creates an idle session reporting to cb.
func NewSession(cb Callbacks) *Session {
	return &Session{callbacks: cb}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Active reports whether a drag is in progress.
func (s *Session) Active() bool { return s.state == Dragging }

// SetCallbacks replaces the callbacks without touching the state.
func (s *Session) SetCallbacks(cb Callbacks) { s.callbacks = cb }

// Reset forces the session back to Idle without firing callbacks.
func (s *Session) Reset() { s.state = Idle }

// Activate starts a drag for a left-button press. It returns false when the
// press was ignored (other button, or a drag is already active).
func (s *Session) Activate(button int, progress ProgressFunc) bool {
	if button != 0 {
		return false
	}
	if s.state == Dragging {
		return false
	}
	s.state = Dragging
	emit(s.callbacks.OnDragStart, progress)
	return true
}

// Move reports a slide while dragging. It returns false when idle.
func (s *Session) Move(progress ProgressFunc) bool {
	if s.state != Dragging {
		return false
	}
	emit(s.callbacks.OnSlide, progress)
	return true
}

// Deactivate ends the drag, committing the final position first.
// It returns false when idle.
func (s *Session) Deactivate(progress ProgressFunc) bool {
	if s.state != Dragging {
		return false
	}
	s.state = Idle
	emit(s.callbacks.OnSlide, progress)
	emit(s.callbacks.OnDragStop, progress)
	return true
}

func emit(fn func(int), progress ProgressFunc) {
	if fn == nil || progress == nil {
		return
	}
	if p, ok := progress(); ok {
		fn(p)
	}
}
