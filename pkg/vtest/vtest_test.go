package vtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/slider"
	"github.com/vango-dev/multislider/pkg/vdom"
)

func TestMount(t *testing.T) {
	root := vdom.Div(vdom.Data("role", "track"),
		vdom.Div(vdom.Data("role", "fill"),
			vdom.Span(vdom.Data("role", "handle"),
				vdom.Img(vdom.Data("role", "icon")))),
		vdom.Div(vdom.Data("role", "zone")),
	)

	m := Mount(root, 154, 876)
	require.NotNil(t, m.Track)
	assert.Equal(t, 1, m.Count(geometry.RoleIcon))
	assert.Nil(t, m.Find(geometry.RoleIcon, 1))

	icon := m.Find(geometry.RoleIcon, 0)
	track, ok := geometry.NestedLayout.Track(icon)
	require.True(t, ok)
	assert.Same(t, m.Track, track)

	got, ok := geometry.Resolve(geometry.PointerEvent{PageX: 933.64, Target: icon}, geometry.NestedLayout, false)
	require.True(t, ok)
	assert.Equal(t, 89, got)

	assert.Same(t, m.Track, m.Of(root))
}

func TestNodeBounds(t *testing.T) {
	track := NewTrack(10, 100)
	fill := track.Chain(geometry.RoleFill)
	assert.Same(t, track, fill.Parent())

	r, ok := track.Bounds()
	assert.True(t, ok)
	assert.Equal(t, geometry.Rect{Left: 10, Width: 100}, r)

	track.Detach()
	_, ok = track.Bounds()
	assert.False(t, ok)
	assert.Equal(t, 2, track.Reads)

	_, ok = NewNode(geometry.RoleFill).Bounds()
	assert.False(t, ok)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	cb := rec.Callbacks()
	cb.OnDragStart(1)
	cb.OnSlide(2)
	cb.OnSlide(3)
	cb.OnDragStop(3)

	assert.Equal(t, []string{DragStart, Slide, Slide, DragStop}, rec.Names())
	assert.Equal(t, []int{2, 3}, rec.Values(Slide))
	assert.Equal(t, 1, rec.Count(DragStop))
	assert.Equal(t, 4, rec.Len())

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestDriver(t *testing.T) {
	rec := NewRecorder()
	s := slider.New(slider.Config{Callbacks: rec.Callbacks()})
	d := NewDriver(t, s, NewTrack(0, 200))

	d.Drag(20, 60, 100)
	assert.Equal(t, []string{DragStart, Slide, Slide, Slide, DragStop}, rec.Names())
	assert.Equal(t, []int{30, 50, 50}, rec.Values(Slide))
	assert.Len(t, d.Outcomes, 4)
	for _, o := range d.Outcomes {
		assert.Equal(t, slider.OutcomeHandled, o)
	}
}

func TestRenderHelpers(t *testing.T) {
	node := vdom.Div(vdom.Data("role", "fill"), vdom.StyleAttr("width: 5%;"))
	ExpectContains(t, node, "<div", `data-role="fill"`)
	ExpectNotContains(t, node, "span")
	ExpectAttribute(t, node, "style", "width: 5%;")
	assert.Equal(t, "width: 5%;", StyleOf(node, "fill", 0))
	assert.Equal(t, "", StyleOf(node, "fill", 1))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}
