package slider

import (
	"context"
	"strconv"

	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/style"
	"github.com/vango-dev/multislider/pkg/vdom"
)

// EventFunc is the type of the handlers attached to a rendered track.
type EventFunc = func(ctx context.Context, ev geometry.PointerEvent) Outcome

// Render projects the slider onto a vdom tree. Every layer carries a
// data-role matching its geometry.Role so hosts can rebuild the element
// chain of a pointer target. A read-only slider renders no handlers.
func (s *Slider) Render() *vdom.VNode {
	attrs := s.Attributes()
	nested := s.nested()

	children := make([]any, 0, len(attrs)*2+1)
	for i, a := range attrs {
		e := s.entries[i]
		fill := s.renderFill(e, a)
		dot := s.renderDot(e, a)
		if nested {
			if dot != nil {
				fill.Children = append(fill.Children, dot)
			}
			children = append(children, fill)
			continue
		}
		children = append(children, fill, dot)
	}
	if zone := s.renderZone(len(attrs)); zone != nil {
		children = append(children, zone)
	}

	args := []any{
		vdom.Data("slider", s.cfg.ID),
		vdom.Data("role", geometry.RoleTrack.String()),
		vdom.StyleAttr(s.trackStyle().String()),
	}
	args = append(args, s.handlers()...)
	args = append(args, children...)
	return vdom.Div(args...)
}

// nested reports whether dots are drawn inside their fill.
func (s *Slider) nested() bool {
	return s.cfg.Layout[geometry.RoleHandle] > s.cfg.Layout[geometry.RoleFill]
}

func (s *Slider) handlers() []any {
	if s.cfg.ReadOnly {
		return nil
	}
	if s.cfg.Mode == ModeClick {
		return []any{vdom.OnClick(EventFunc(s.Click))}
	}
	return []any{
		vdom.OnPointerDown(EventFunc(s.PointerDown)),
		vdom.OnPointerMove(EventFunc(s.PointerMove)),
		vdom.OnPointerUp(EventFunc(s.PointerUp)),
		vdom.OnPointerLeave(EventFunc(s.PointerLeave)),
	}
}

func (s *Slider) trackStyle() style.Declarations {
	cursor := "pointer"
	if s.cfg.ReadOnly {
		cursor = "auto"
	}
	d := style.Decl(
		"position", "relative",
		"box-sizing", "border-box",
		"width", s.cfg.Width.String(),
		"height", s.cfg.Height.String(),
		"background-color", style.NormalizeColor(s.cfg.BackgroundColor),
		"cursor", cursor,
		"touch-action", "none",
	)
	if s.cfg.RoundedCorners {
		d.Set("border-radius", s.cfg.Height.Half())
	}
	return d.Merge(s.cfg.Style)
}

func (s *Slider) transition(a Attrs) string {
	if a.TransitionSuppressed {
		return style.NoTransition
	}
	return style.Transition
}

func (s *Slider) renderFill(e Entry, a Attrs) *vdom.VNode {
	d := style.Decl(
		"position", "absolute",
		"top", "0",
		"width", strconv.Itoa(a.Value)+"%",
		"height", s.cfg.Height.String(),
		"background-color", a.Color,
		"z-index", strconv.Itoa(a.ZIndex),
		"transition", s.transition(a),
	)
	if s.cfg.Reversed {
		d.Set("right", "0")
	} else {
		d.Set("left", "0")
	}
	if s.cfg.RoundedCorners {
		d.Set("border-radius", s.cfg.Height.Half())
	}
	d.Merge(e.Style.resolve(a))

	return vdom.Div(
		vdom.Key(e.ID),
		vdom.Data("role", geometry.RoleFill.String()),
		vdom.Data("entry", e.ID),
		vdom.StyleAttr(d.String()),
	)
}

func (s *Slider) renderDot(e Entry, a Attrs) *vdom.VNode {
	if e.Dot == nil {
		return nil
	}
	dot := e.Dot
	w, h := dot.size()
	color := dot.Color
	if color == "" {
		color = e.Color
	}

	d := style.Decl(
		"position", "absolute",
		"display", "block",
		"z-index", "5",
		"border-radius", "50%",
		"transition", s.transition(a),
	)
	s.placeDot(d, a)

	if dot.HasIcon() {
		d.Set("top", "0")
		d.Set("width", "0")
		d.Set("height", "0")
		d.Set("background-color", "transparent")
		d.Set("transform", "translateX(-50%)")
	} else {
		d.Set("top", "50%")
		d.Set("width", w.String())
		d.Set("height", h.String())
		d.Set("background-color", style.NormalizeColor(color))
	}
	d.Merge(dot.Style.resolve(a))

	node := vdom.Span(
		vdom.Data("role", geometry.RoleHandle.String()),
		vdom.StyleAttr(d.String()),
	)
	if dot.HasIcon() {
		icon := style.Decl(
			"position", "absolute",
			"transform", "translateX(-50%)",
			"width", w.String(),
			"height", h.String(),
			"user-select", "none",
			"-webkit-user-drag", "none",
		).Merge(dot.IconStyle.resolve(a))
		node.Children = append(node.Children, vdom.Img(
			vdom.Data("role", geometry.RoleIcon.String()),
			vdom.Src(dot.Icon),
			vdom.Alt(""),
			vdom.Draggable(false),
			vdom.StyleAttr(icon.String()),
		))
	}
	return node
}

// placeDot puts the dot at the moving edge of its fill.
func (s *Slider) placeDot(d style.Declarations, a Attrs) {
	switch {
	case s.nested() && s.cfg.Reversed:
		d.Set("left", "0")
		d.Set("transform", "translate(-50%, -50%)")
	case s.nested():
		d.Set("left", "100%")
		d.Set("transform", "translate(-50%, -50%)")
	case s.cfg.Reversed:
		d.Set("right", strconv.Itoa(a.Value)+"%")
		d.Set("transform", "translate(50%, -50%)")
	default:
		d.Set("left", strconv.Itoa(a.Value)+"%")
		d.Set("transform", "translate(-50%, -50%)")
	}
}

// renderZone draws the invisible hit area above and below the track.
func (s *Slider) renderZone(entries int) *vdom.VNode {
	if px, ok := s.cfg.SlidableZoneSize.Pixels(); ok && px == 0 {
		return nil
	}
	size := s.cfg.SlidableZoneSize
	d := style.Decl(
		"position", "absolute",
		"left", "0",
		"right", "0",
		"top", size.Negate(),
		"bottom", size.Negate(),
		"z-index", strconv.Itoa(entries),
	)
	return vdom.Div(
		vdom.Data("role", geometry.RoleZone.String()),
		vdom.StyleAttr(d.String()),
	)
}
