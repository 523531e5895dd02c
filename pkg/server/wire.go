package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/pkg/geometry"
)

// Message types sent to the browser.
const (
	MessageRender = "render"
	MessageError  = "error"
	// MessageSession tells the browser which id to resume with.
	MessageSession = "session"
)

// PathElement is one element between the track and the event target, as
// measured by the browser. Width is zero for elements the browser did not
// measure.
type PathElement struct {
	Role  string  `json:"role"`
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// Inbound is a pointer message from the browser. Path runs from the
// track (first) down to the event target (last).
type Inbound struct {
	Slider string        `json:"slider"`
	Type   string        `json:"type"`
	HID    string        `json:"hid,omitempty"`
	PageX  float64       `json:"pageX"`
	Button int           `json:"button"`
	Path   []PathElement `json:"path"`
}

// Outbound is a message to the browser.
type Outbound struct {
	Type    string `json:"type"`
	Slider  string `json:"slider,omitempty"`
	HTML    string `json:"html,omitempty"`
	Values  []int  `json:"values,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Session string `json:"session,omitempty"`
}

func errorMessage(err *errors.SliderError) Outbound {
	msg := err.Message
	if err.Detail != "" {
		msg += ": " + err.Detail
	}
	return Outbound{Type: MessageError, Code: err.Code, Message: msg}
}

// DecodeInbound parses and validates a browser message.
func DecodeInbound(data []byte) (Inbound, geometry.PointerKind, error) {
	var in Inbound
	if err := json.Unmarshal(data, &in); err != nil {
		return Inbound{}, 0, errors.New("E061").WithDetail(err.Error()).Wrap(err)
	}
	if in.Slider == "" {
		return Inbound{}, 0, errors.New("E061").WithDetail("missing slider")
	}
	kind, ok := geometry.ParsePointerKind(in.Type)
	if !ok {
		return Inbound{}, 0, errors.New("E061").WithDetail(fmt.Sprintf("unknown event type %q", in.Type))
	}
	if math.IsNaN(in.PageX) || math.IsInf(in.PageX, 0) {
		return Inbound{}, 0, errors.New("E061").WithDetail("pageX is not finite")
	}
	return in, kind, nil
}

// element is a measured browser element.
type element struct {
	role    geometry.Role
	rect    geometry.Rect
	hasRect bool
	parent  *element
}

func (e *element) Role() geometry.Role { return e.role }

func (e *element) Parent() geometry.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *element) Bounds() (geometry.Rect, bool) { return e.rect, e.hasRect }

// Target links path into an element chain and returns its last element,
// or nil for an empty path.
func (in Inbound) Target() geometry.Element {
	var cur *element
	for _, p := range in.Path {
		cur = &element{
			role:    geometry.ParseRole(p.Role),
			rect:    geometry.Rect{Left: p.Left, Width: p.Width},
			hasRect: p.Width > 0,
			parent:  cur,
		}
	}
	if cur == nil {
		return nil
	}
	return cur
}

// Event converts the message into a pointer event.
func (in Inbound) Event(kind geometry.PointerKind) geometry.PointerEvent {
	return geometry.PointerEvent{
		Kind:   kind,
		PageX:  in.PageX,
		Button: in.Button,
		Target: in.Target(),
	}
}
