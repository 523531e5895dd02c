package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dimension is a CSS length given either as a number of pixels or as a
// raw CSS string ("100%", "3em").
type Dimension struct {
	px    float64
	raw   string
	isRaw bool
	set   bool
}

// Px returns a pixel dimension.
func Px(n float64) Dimension { return Dimension{px: n, set: true} }

// Raw returns a dimension rendered verbatim. A string that is a plain
// number is treated as pixels.
func Raw(s string) Dimension {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Px(n)
	}
	return Dimension{raw: s, isRaw: true, set: s != ""}
}

// Parse converts a host-supplied value (any integer or float kind, or a
// string) into a Dimension.
func Parse(v any) (Dimension, error) {
	switch t := v.(type) {
	case nil:
		return Dimension{}, nil
	case Dimension:
		return t, nil
	case string:
		return Raw(t), nil
	case int:
		return Px(float64(t)), nil
	case int32:
		return Px(float64(t)), nil
	case int64:
		return Px(float64(t)), nil
	case uint:
		return Px(float64(t)), nil
	case uint64:
		return Px(float64(t)), nil
	case float32:
		return Px(float64(t)), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Dimension{}, fmt.Errorf("dimension %v is not finite", t)
		}
		return Px(t), nil
	default:
		return Dimension{}, fmt.Errorf("dimension must be a number or a string, got %T", v)
	}
}

// IsZero reports whether the dimension was never set.
func (d Dimension) IsZero() bool { return !d.set }

// Or returns d, or def when d is unset.
func (d Dimension) Or(def Dimension) Dimension {
	if d.IsZero() {
		return def
	}
	return d
}

// Pixels returns the pixel value and whether the dimension is numeric.
func (d Dimension) Pixels() (float64, bool) {
	return d.px, d.set && !d.isRaw
}

// String renders the dimension as CSS.
func (d Dimension) String() string {
	if !d.set {
		return ""
	}
	if d.isRaw {
		return d.raw
	}
	return formatPx(d.px)
}

// Half returns half of the dimension as CSS: numbers and "px" lengths are
// halved directly, anything else goes through calc().
func (d Dimension) Half() string {
	if !d.set {
		return "0"
	}
	if !d.isRaw {
		return formatPx(d.px / 2)
	}
	if n, err := strconv.ParseFloat(strings.TrimSuffix(d.raw, "px"), 64); err == nil && strings.HasSuffix(d.raw, "px") {
		return formatPx(n / 2)
	}
	return "calc(" + d.raw + " / 2)"
}

// Negate returns the dimension with its sign flipped, as CSS.
func (d Dimension) Negate() string {
	if !d.set {
		return "0"
	}
	if !d.isRaw {
		return formatPx(-d.px)
	}
	return "calc(-1 * " + d.raw + ")"
}

func formatPx(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + "px"
}
