package slider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/multislider/pkg/slider"
	"github.com/vango-dev/multislider/pkg/style"
	"github.com/vango-dev/multislider/pkg/vtest"
)

func TestMulti_HostLoop(t *testing.T) {
	values := []int{17, 45}
	active := 0

	m := slider.NewMulti(slider.MultiProps{
		ID:               "multi",
		SlidableZoneSize: style.Px(50),
		EqualColor:       "#000",
		OnSlide:          func(p int) { values[active] = p },
		Logger:           quietLogger(),
	})
	render := func() {
		m.Render(
			slider.Progress{Key: "a", Color: "#00BDAF", Value: values[0]},
			slider.Progress{Key: "b", Color: "#AB47BC", Value: values[1]},
		)
	}
	render()

	d := vtest.NewDriver(t, m, vtest.NewTrack(0, 100))
	d.Drag(10, 30, 45)
	render()
	assert.Equal(t, []int{45, 45}, values)

	attrs := m.Attributes()
	assert.True(t, attrs[0].EqualColorActive)
	assert.Equal(t, "#000000", attrs[0].Color)
	assert.Equal(t, "a", attrs[0].ID)

	node := m.Render(slider.Progress{Key: "a", Color: "#00BDAF", Value: 45})
	assert.Contains(t, vtest.StyleOf(node, "zone", 0), "top: -50px;")
	assert.Contains(t, vtest.StyleOf(node, "zone", 0), "z-index: 1;")
}

func TestMulti_ReversedDot(t *testing.T) {
	m := slider.NewMulti(slider.MultiProps{Reversed: true, ReadOnly: true})
	node := m.Render(slider.Progress{Color: "#f00", Value: 30, Dot: &slider.Dot{Width: style.Px(10)}})
	assert.Contains(t, vtest.StyleOf(node, "fill", 0), "right: 0;")
	dot := vtest.StyleOf(node, "handle", 0)
	assert.Contains(t, dot, "left: 0;")
	assert.Contains(t, dot, "width: 10px;")
	assert.Contains(t, dot, "height: 28px;")
}

func TestDecodeMultiProps(t *testing.T) {
	props, children, err := slider.DecodeMultiProps(map[string]any{
		"id":               "m1",
		"height":           "20",
		"slidableZoneSize": 12,
		"roundedCorners":   true,
		"reversed":         "true",
		"style":            map[string]any{"marginTop": 4},
		"sliders": []any{
			map[string]any{"color": "#00BDAF", "progress": 17, "dot": true},
			map[string]any{"color": "#AB47BC", "progress": "45"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", props.ID)
	assert.Equal(t, "20px", props.Height.String())
	assert.Equal(t, "12px", props.SlidableZoneSize.String())
	assert.True(t, props.RoundedCorners)
	assert.True(t, props.Reversed)
	assert.Equal(t, "4px", props.Style["margin-top"])

	require.Len(t, children, 2)
	assert.Equal(t, 17, children[0].Value)
	assert.NotNil(t, children[0].Dot)
	assert.Equal(t, 45, children[1].Value)
	assert.Nil(t, children[1].Dot)
}

func TestDecodeMultiProps_MissingColor(t *testing.T) {
	_, _, err := slider.DecodeMultiProps(map[string]any{
		"sliders": []any{map[string]any{"progress": 3}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E203")
}
