package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vango-dev/multislider/internal/config"
	"github.com/vango-dev/multislider/pkg/drag"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/middleware"
	"github.com/vango-dev/multislider/pkg/slider"
	"github.com/vango-dev/multislider/pkg/vdom"
)

// host owns the state of one slider on behalf of a session.
type host interface {
	ID() string
	Label() string
	Slider() *slider.Slider
	Render() *vdom.VNode
	Values() []int
	// Restore applies saved values to the leading bars; extra values
	// are ignored.
	Restore(values []int)
}

type hostDeps struct {
	logger     *slog.Logger
	metrics    *middleware.Metrics
	middleware []slider.Middleware
}

func (d hostDeps) callbacks(cb drag.Callbacks) drag.Callbacks {
	if d.metrics == nil {
		return cb
	}
	return d.metrics.Callbacks(cb)
}

// newHosts builds fresh host state for every configured demo slider.
func newHosts(sliders []config.SliderConfig, deps hostDeps) ([]host, error) {
	hosts := make([]host, 0, len(sliders))
	for _, sc := range sliders {
		var (
			h   host
			err error
		)
		switch sc.Kind {
		case config.KindMulti:
			h, err = newMultiHost(sc, deps)
		case config.KindDouble:
			h, err = newDoubleHost(sc, deps)
		default:
			err = fmt.Errorf("unknown slider kind %q", sc.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("slider %s: %w", sc.ID, err)
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

// iconURL maps bare icon names onto the icon route.
func iconURL(dot *slider.Dot) *slider.Dot {
	if dot == nil || dot.Icon == "" || strings.ContainsAny(dot.Icon, "/:") {
		return dot
	}
	d := *dot
	d.Icon = "/icons/" + d.Icon
	return &d
}

// multiHost drives a drag slider. A drag moves the bar whose value is
// closest to where it started.
type multiHost struct {
	label    string
	m        *slider.Multi
	children []slider.Progress
	active   int
}

func newMultiHost(sc config.SliderConfig, deps hostDeps) (*multiHost, error) {
	props, children, err := slider.DecodeMultiProps(sc.Props)
	if err != nil {
		return nil, err
	}
	for i := range children {
		children[i].Key = fmt.Sprintf("%s-%d", sc.ID, i)
		children[i].Dot = iconURL(children[i].Dot)
	}

	h := &multiHost{label: sc.Label, children: children}
	cb := deps.callbacks(drag.Callbacks{
		OnSlide:     h.set,
		OnDragStart: h.start,
		OnDragStop:  h.set,
	})
	props.ID = sc.ID
	props.OnSlide = cb.OnSlide
	props.OnDragStart = cb.OnDragStart
	props.OnDragStop = cb.OnDragStop
	props.Logger = deps.logger
	props.Middleware = deps.middleware
	h.m = slider.NewMulti(props)
	h.m.Render(h.children...)
	return h, nil
}

func (h *multiHost) start(p int) {
	h.active = nearest(h.children, p)
	h.set(p)
}

func (h *multiHost) set(p int) {
	if h.active < len(h.children) {
		h.children[h.active].Value = p
	}
}

// nearest returns the index of the child closest to p, the first on ties.
func nearest(children []slider.Progress, p int) int {
	best, dist := 0, -1
	for i, c := range children {
		d := c.Value - p
		if d < 0 {
			d = -d
		}
		if dist < 0 || d < dist {
			best, dist = i, d
		}
	}
	return best
}

func (h *multiHost) ID() string             { return h.m.ID() }
func (h *multiHost) Label() string          { return h.label }
func (h *multiHost) Slider() *slider.Slider { return h.m.Slider }
func (h *multiHost) Render() *vdom.VNode    { return h.m.Render(h.children...) }

func (h *multiHost) Values() []int {
	out := make([]int, len(h.children))
	for i, c := range h.children {
		out[i] = c.Value
	}
	return out
}

func (h *multiHost) Restore(values []int) {
	for i := 0; i < len(values) && i < len(h.children); i++ {
		h.children[i].Value = geometry.Clamp(values[i])
	}
}

// doubleHost drives a legacy click slider.
type doubleHost struct {
	label string
	d     *slider.Double
	props slider.DoubleProps
}

func newDoubleHost(sc config.SliderConfig, deps hostDeps) (*doubleHost, error) {
	props, err := slider.DecodeDoubleProps(sc.Props)
	if err != nil {
		return nil, err
	}
	for i := range props.Sliders {
		props.Sliders[i].Dot = iconURL(props.Sliders[i].Dot)
	}
	props.ID = sc.ID

	h := &doubleHost{label: sc.Label}
	props.OnSlide = deps.callbacks(drag.Callbacks{OnSlide: h.slide}).OnSlide
	h.props = props
	h.d = slider.NewDouble(props, deps.logger, deps.middleware...)
	return h, nil
}

func (h *doubleHost) slide(p int) {
	if i := h.props.ActiveSlider; i >= 0 && i < len(h.props.Sliders) {
		h.props.Sliders[i].Progress = p
	}
}

func (h *doubleHost) ID() string             { return h.d.ID() }
func (h *doubleHost) Label() string          { return h.label }
func (h *doubleHost) Slider() *slider.Slider { return h.d.Slider }

// Render pushes the host state into the widget before projecting it.
func (h *doubleHost) Render() *vdom.VNode {
	h.d.Update(h.props)
	return h.d.Render()
}

func (h *doubleHost) Values() []int {
	out := make([]int, len(h.props.Sliders))
	for i, s := range h.props.Sliders {
		out[i] = s.Progress
	}
	return out
}

func (h *doubleHost) Restore(values []int) {
	for i := 0; i < len(values) && i < len(h.props.Sliders); i++ {
		h.props.Sliders[i].Progress = geometry.Clamp(values[i])
	}
}
