package slider

import (
	"context"

	"github.com/vango-dev/multislider/pkg/geometry"
)

// Outcome describes what a dispatched pointer event did.
type Outcome uint8

const (
	// OutcomeIgnored means no state changed and no callback ran.
	OutcomeIgnored Outcome = iota
	// OutcomeHandled means the event changed state or ran a callback.
	OutcomeHandled
	// OutcomeUnresolved means the event changed state but its progress
	// could not be resolved, so callbacks were skipped.
	OutcomeUnresolved
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeHandled:
		return "handled"
	case OutcomeUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Handler processes one pointer event.
type Handler func(ctx context.Context, ev geometry.PointerEvent) Outcome

// Middleware wraps a Handler.
// The first middleware in a list is the outermost.
type Middleware func(next Handler) Handler

func chain(h Handler, mw []Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			h = mw[i](h)
		}
	}
	return h
}

type sliderKey struct{}

func withSlider(ctx context.Context, s *Slider) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sliderKey{}, s)
}

// FromContext returns the slider dispatching the current event.
func FromContext(ctx context.Context) (*Slider, bool) {
	s, ok := ctx.Value(sliderKey{}).(*Slider)
	return s, ok
}
