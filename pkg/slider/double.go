package slider

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/pkg/drag"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/style"
	"github.com/vango-dev/multislider/pkg/vdom"
)

// SliderSpec is one entry of the legacy sliders array.
type SliderSpec struct {
	Color    string        `mapstructure:"color"`
	Progress int           `mapstructure:"progress"`
	Dot      *Dot          `mapstructure:"dot"`
	Style    StyleOverride `mapstructure:"style"`
}

// DoubleProps is the legacy props object: a sliders array sorted inside
// the widget, one active slider that clicks move.
type DoubleProps struct {
	ID              string             `mapstructure:"id"`
	Sliders         []SliderSpec       `mapstructure:"sliders"`
	ActiveSlider    int                `mapstructure:"activeSlider"`
	Width           style.Dimension    `mapstructure:"width"`
	Height          style.Dimension    `mapstructure:"height"`
	BackgroundColor string             `mapstructure:"backgroundColor"`
	EqualColor      string             `mapstructure:"equalColor"`
	SliderStyle     style.Declarations `mapstructure:"sliderStyle"`
	ReadOnly        bool               `mapstructure:"readOnly"`

	OnSlide func(progress int) `mapstructure:"-"`
}

// DecodeDoubleProps decodes a loosely typed props object, as read from
// JSON or YAML. "dot" may be a bool or an object; dimensions may be
// numbers or strings; style objects use camelCase property names.
func DecodeDoubleProps(raw map[string]any) (DoubleProps, error) {
	var p DoubleProps
	if err := decodeProps(raw, &p); err != nil {
		return DoubleProps{}, err
	}
	if err := checkColors(p.Sliders); err != nil {
		return DoubleProps{}, err
	}
	return p, nil
}

func decodeProps(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			dimensionHook,
			declarationsHook,
			styleOverrideHook,
			dotHook,
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return errors.New("E203").WithDetail(err.Error()).Wrap(err)
	}
	return nil
}

func checkColors(specs []SliderSpec) error {
	for i, sl := range specs {
		var err error
		switch {
		case sl.Color == "":
			err = fmt.Errorf("sliders[%d]: color is required", i)
		case strings.HasPrefix(strings.TrimSpace(sl.Color), "#") && !style.IsHex(sl.Color):
			err = fmt.Errorf("sliders[%d]: %q is not a hex color", i, sl.Color)
		}
		if err != nil {
			return errors.New("E203").WithDetail(err.Error()).Wrap(err)
		}
	}
	return nil
}

var (
	dimensionType    = reflect.TypeOf(style.Dimension{})
	declarationsType = reflect.TypeOf(style.Declarations{})
	overrideType     = reflect.TypeOf(StyleOverride{})
	dotPtrType       = reflect.TypeOf(&Dot{})
)

func dimensionHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dimensionType {
		return data, nil
	}
	return style.Parse(data)
}

// styleValue accepts a style object or an inline "prop: value;" string.
func styleValue(data any) (style.Declarations, bool, error) {
	switch v := data.(type) {
	case map[string]any:
		d, err := style.FromMap(v)
		return d, true, err
	case string:
		return style.ParseInline(v), true, nil
	}
	return nil, false, nil
}

func declarationsHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != declarationsType {
		return data, nil
	}
	d, ok, err := styleValue(data)
	if !ok {
		return data, nil
	}
	return d, err
}

func styleOverrideHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != overrideType {
		return data, nil
	}
	d, ok, err := styleValue(data)
	if !ok {
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	return Static(d), nil
}

// dotHook maps dot: true to an empty dot and dot: false to none.
func dotHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dotPtrType {
		return data, nil
	}
	if b, ok := data.(bool); ok {
		if !b {
			return nil, nil
		}
		return map[string]any{}, nil
	}
	return data, nil
}

// Double is the legacy slider: it never drags, a click moves the active
// slider, and bars grow from the right.
type Double struct {
	*Slider
	props DoubleProps
}

// NewDouble creates a legacy slider.
func NewDouble(p DoubleProps, logger *slog.Logger, mw ...Middleware) *Double {
	d := &Double{
		Slider: New(Config{
			ID:               p.ID,
			Width:            p.Width,
			Height:           p.Height,
			SlidableZoneSize: style.Px(0),
			BackgroundColor:  p.BackgroundColor,
			EqualColor:       p.EqualColor,
			Style:            p.SliderStyle,
			Reversed:         true,
			ReadOnly:         p.ReadOnly,
			Mode:             ModeClick,
			ActiveEntry:      p.ActiveSlider,
			Layout:           geometry.FlatLayout,
			Logger:           logger,
			Middleware:       mw,
			Callbacks:        drag.Callbacks{OnSlide: p.OnSlide},
		}),
	}
	d.Update(p)
	return d
}

// Update takes new values, active slider and slide callback from p.
// Presentation settings are fixed at construction.
func (d *Double) Update(p DoubleProps) {
	d.props = p
	d.SetActiveEntry(p.ActiveSlider)
	d.SetCallbacks(drag.Callbacks{OnSlide: p.OnSlide})

	entries := make([]Entry, len(p.Sliders))
	for i, sl := range p.Sliders {
		entries[i] = Entry{Color: sl.Color, Value: sl.Progress, Dot: sl.Dot, Style: sl.Style}
	}
	d.SetEntries(entries)
}

// Props returns the props last passed to NewDouble or Update.
func (d *Double) Props() DoubleProps { return d.props }

// Render projects the current props.
func (d *Double) Render() *vdom.VNode { return d.Slider.Render() }
