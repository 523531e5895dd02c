package vtest

import (
	"context"
	"testing"

	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/slider"
)

// Dispatcher is anything accepting pointer events; *slider.Slider and the
// adapters embedding it qualify.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev geometry.PointerEvent) slider.Outcome
}

// Driver delivers pointer events aimed at one target element.
type Driver struct {
	t      testing.TB
	d      Dispatcher
	target geometry.Element
	ctx    context.Context

	// Outcomes records the outcome of every delivered event.
	Outcomes []slider.Outcome
}

// NewDriver returns a driver sending events to d with the given target.
func NewDriver(t testing.TB, d Dispatcher, target geometry.Element) *Driver {
	t.Helper()
	return &Driver{t: t, d: d, target: target, ctx: context.Background()}
}

// WithContext sets the context passed to Dispatch.
func (d *Driver) WithContext(ctx context.Context) *Driver {
	d.ctx = ctx
	return d
}

// Retarget aims subsequent events at target.
func (d *Driver) Retarget(target geometry.Element) { d.target = target }

// Send delivers an event of kind at pageX with the left button.
func (d *Driver) Send(kind geometry.PointerKind, pageX float64) slider.Outcome {
	return d.SendButton(kind, pageX, geometry.LeftButton)
}

// SendButton delivers an event with an explicit button.
func (d *Driver) SendButton(kind geometry.PointerKind, pageX float64, button int) slider.Outcome {
	d.t.Helper()
	out := d.d.Dispatch(d.ctx, geometry.PointerEvent{
		Kind:   kind,
		PageX:  pageX,
		Button: button,
		Target: d.target,
	})
	d.Outcomes = append(d.Outcomes, out)
	return out
}

// Press delivers a left-button pointer down.
func (d *Driver) Press(pageX float64) slider.Outcome { return d.Send(geometry.PointerDown, pageX) }

// Move delivers a pointer move.
func (d *Driver) Move(pageX float64) slider.Outcome { return d.Send(geometry.PointerMove, pageX) }

// Release delivers a pointer up.
func (d *Driver) Release(pageX float64) slider.Outcome { return d.Send(geometry.PointerUp, pageX) }

// Leave delivers a pointer leave.
func (d *Driver) Leave(pageX float64) slider.Outcome { return d.Send(geometry.PointerLeave, pageX) }

// Click delivers a click event.
func (d *Driver) Click(pageX float64) slider.Outcome { return d.Send(geometry.Click, pageX) }

// Drag presses at from, moves through every position in moves and releases
// at the last one (or at from when there are no moves).
func (d *Driver) Drag(from float64, moves ...float64) {
	d.Press(from)
	last := from
	for _, x := range moves {
		d.Move(x)
		last = x
	}
	d.Release(last)
}

// Tap presses and releases at the same position.
func (d *Driver) Tap(pageX float64) {
	d.Press(pageX)
	d.Release(pageX)
}
