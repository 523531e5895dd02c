package slider

import (
	"log/slog"

	"github.com/vango-dev/multislider/pkg/drag"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/style"
	"github.com/vango-dev/multislider/pkg/vdom"
)

// MultiProps configures a composable multi slider.
type MultiProps struct {
	ID               string
	Width            style.Dimension
	Height           style.Dimension
	SlidableZoneSize style.Dimension
	BackgroundColor  string
	EqualColor       string
	Style            style.Declarations

	OnSlide     func(progress int)
	OnDragStart func(progress int)
	OnDragStop  func(progress int)

	RoundedCorners bool
	Reversed       bool
	ReadOnly       bool

	Logger     *slog.Logger
	Middleware []Middleware
}

// Progress is one child bar of a multi slider.
type Progress struct {
	Key   string
	Color string
	Value int
	Dot   *Dot
	Style StyleOverride
}

// Multi is a drag-driven slider built from Progress children.
type Multi struct {
	*Slider
}

// NewMulti creates a multi slider.
func NewMulti(p MultiProps) *Multi {
	return &Multi{Slider: New(Config{
		ID:               p.ID,
		Width:            p.Width,
		Height:           p.Height,
		SlidableZoneSize: p.SlidableZoneSize,
		BackgroundColor:  p.BackgroundColor,
		EqualColor:       p.EqualColor,
		Style:            p.Style,
		Reversed:         p.Reversed,
		ReadOnly:         p.ReadOnly,
		RoundedCorners:   p.RoundedCorners,
		Mode:             ModeDrag,
		Layout:           geometry.NestedLayout,
		Logger:           p.Logger,
		Middleware:       p.Middleware,
		Callbacks: drag.Callbacks{
			OnSlide:     p.OnSlide,
			OnDragStart: p.OnDragStart,
			OnDragStop:  p.OnDragStop,
		},
	})}
}

// Render pushes the children as the current entries and projects them.
func (m *Multi) Render(children ...Progress) *vdom.VNode {
	entries := make([]Entry, len(children))
	for i, c := range children {
		entries[i] = Entry{ID: c.Key, Color: c.Color, Value: c.Value, Dot: c.Dot, Style: c.Style}
	}
	m.SetEntries(entries)
	return m.Slider.Render()
}

type multiDecode struct {
	ID               string             `mapstructure:"id"`
	Width            style.Dimension    `mapstructure:"width"`
	Height           style.Dimension    `mapstructure:"height"`
	SlidableZoneSize style.Dimension    `mapstructure:"slidableZoneSize"`
	BackgroundColor  string             `mapstructure:"backgroundColor"`
	EqualColor       string             `mapstructure:"equalColor"`
	Style            style.Declarations `mapstructure:"style"`
	RoundedCorners   bool               `mapstructure:"roundedCorners"`
	Reversed         bool               `mapstructure:"reversed"`
	ReadOnly         bool               `mapstructure:"readOnly"`
	Sliders          []SliderSpec       `mapstructure:"sliders"`
}

// DecodeMultiProps decodes a loosely typed multi slider description: the
// slider props plus a "sliders" array giving the initial children, in the
// same shape DecodeDoubleProps accepts. Callbacks are left for the host.
func DecodeMultiProps(raw map[string]any) (MultiProps, []Progress, error) {
	var d multiDecode
	if err := decodeProps(raw, &d); err != nil {
		return MultiProps{}, nil, err
	}
	if err := checkColors(d.Sliders); err != nil {
		return MultiProps{}, nil, err
	}

	children := make([]Progress, len(d.Sliders))
	for i, sl := range d.Sliders {
		children[i] = Progress{Color: sl.Color, Value: sl.Progress, Dot: sl.Dot, Style: sl.Style}
	}
	return MultiProps{
		ID:               d.ID,
		Width:            d.Width,
		Height:           d.Height,
		SlidableZoneSize: d.SlidableZoneSize,
		BackgroundColor:  d.BackgroundColor,
		EqualColor:       d.EqualColor,
		Style:            d.Style,
		RoundedCorners:   d.RoundedCorners,
		Reversed:         d.Reversed,
		ReadOnly:         d.ReadOnly,
	}, children, nil
}
