package geometry

import "math"

// PointerKind is the kind of a pointer event delivered by the host.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
	Click
)

// String returns the DOM event name for the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerLeave:
		return "pointerleave"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// ParsePointerKind is the inverse of PointerKind.String.
func ParsePointerKind(name string) (PointerKind, bool) {
	for k := PointerDown; k <= Click; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// LeftButton is the button value of the primary pointer button.
const LeftButton = 0

// PointerEvent is a raw pointer event as delivered by the host.
type PointerEvent struct {
	Kind   PointerKind
	PageX  float64
	Button int
	Target Element
}

// Resolve converts ev into a progress percentage in [0, 100].
// It returns false when the track cannot be found or has no usable width.
func Resolve(ev PointerEvent, layout Layout, reversed bool) (int, bool) {
	track, ok := layout.Track(ev.Target)
	if !ok {
		return 0, false
	}
	bounds, ok := track.Bounds()
	if !ok {
		return 0, false
	}
	return FromBounds(ev.PageX, bounds, reversed)
}

// FromBounds is Resolve with the track bounds already known.
func FromBounds(pageX float64, bounds Rect, reversed bool) (int, bool) {
	if !(bounds.Width > 0) || !finite(bounds.Width) || !finite(bounds.Left) || !finite(pageX) {
		return 0, false
	}
	fraction := (pageX - bounds.Left) / bounds.Width
	if reversed {
		fraction = 1 - fraction
	}
	raw := fraction * 100
	if math.IsNaN(raw) {
		return 0, false
	}
	// Half-up rounding, matching the browser's Math.round.
	return int(math.Max(0, math.Min(100, math.Floor(raw+0.5)))), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits v to [0, 100].
func Clamp(v int) int {
	return max(min(v, 100), 0)
}
