package server

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/multislider/internal/config"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/slider"
)

func testDeps() hostDeps {
	return hostDeps{logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
}

func trackEvent(kind geometry.PointerKind, pageX float64) geometry.PointerEvent {
	in := Inbound{PageX: pageX, Path: []PathElement{{Role: "track", Left: 0, Width: 100}}}
	return in.Event(kind)
}

func TestNewHosts_Defaults(t *testing.T) {
	hosts, err := newHosts(config.New().Demo.Sliders, testDeps())
	require.NoError(t, err)
	require.Len(t, hosts, 2)

	assert.Equal(t, "multi", hosts[0].ID())
	assert.Equal(t, []int{17, 45}, hosts[0].Values())
	assert.Equal(t, "double", hosts[1].ID())
	assert.Equal(t, []int{30, 60}, hosts[1].Values())
}

func TestNewHosts_Errors(t *testing.T) {
	_, err := newHosts([]config.SliderConfig{{ID: "x", Kind: "triple"}}, testDeps())
	assert.ErrorContains(t, err, "unknown slider kind")

	_, err = newHosts([]config.SliderConfig{{ID: "y", Kind: config.KindMulti, Props: map[string]any{
		"sliders": []any{map[string]any{"progress": 1}},
	}}}, testDeps())
	assert.ErrorContains(t, err, "E203")
}

func TestMultiHost_DragMovesNearestBar(t *testing.T) {
	hosts, err := newHosts(config.New().Demo.Sliders, testDeps())
	require.NoError(t, err)
	h := hosts[0]
	ctx := context.Background()

	assert.Equal(t, slider.OutcomeHandled, h.Slider().Dispatch(ctx, trackEvent(geometry.PointerDown, 40)))
	assert.Equal(t, []int{17, 40}, h.Values())
	h.Slider().Dispatch(ctx, trackEvent(geometry.PointerMove, 5))
	h.Slider().Dispatch(ctx, trackEvent(geometry.PointerUp, 8))
	assert.Equal(t, []int{17, 8}, h.Values(), "the bar picked at drag start keeps moving")

	h.Slider().Dispatch(ctx, trackEvent(geometry.PointerDown, 12))
	assert.Equal(t, []int{17, 12}, h.Values())
}

func TestDoubleHost_ClickMovesActiveBar(t *testing.T) {
	hosts, err := newHosts(config.New().Demo.Sliders, testDeps())
	require.NoError(t, err)
	h := hosts[1]

	out := h.Slider().Dispatch(context.Background(), trackEvent(geometry.Click, 25))
	assert.Equal(t, slider.OutcomeHandled, out)
	assert.Equal(t, []int{75, 60}, h.Values(), "legacy bars grow from the right")

	h.Render()
	assert.Equal(t, 75, h.Slider().Entries()[0].Value)
}

func TestNearest(t *testing.T) {
	children := []slider.Progress{{Value: 10}, {Value: 30}, {Value: 50}}
	assert.Equal(t, 0, nearest(children, 0))
	assert.Equal(t, 0, nearest(children, 20), "ties go to the first bar")
	assert.Equal(t, 2, nearest(children, 90))
	assert.Equal(t, 0, nearest(nil, 5))
}

func TestIconURL(t *testing.T) {
	assert.Nil(t, iconURL(nil))
	assert.Equal(t, "/icons/star.svg", iconURL(&slider.Dot{Icon: "star.svg"}).Icon)
	assert.Equal(t, "https://cdn/x.png", iconURL(&slider.Dot{Icon: "https://cdn/x.png"}).Icon)
	assert.Equal(t, "/static/a.png", iconURL(&slider.Dot{Icon: "/static/a.png"}).Icon)
	assert.Equal(t, "", iconURL(&slider.Dot{}).Icon)
}

func TestHosts_Restore(t *testing.T) {
	hosts, err := newHosts(config.New().Demo.Sliders, testDeps())
	require.NoError(t, err)

	hosts[0].Restore([]int{3, 140, 9})
	assert.Equal(t, []int{3, 100}, hosts[0].Values())

	hosts[1].Restore([]int{-4})
	assert.Equal(t, []int{0, 60}, hosts[1].Values())
}
