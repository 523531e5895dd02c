package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	role   Role
	parent *node
	rect   Rect
	noRect bool
	reads  int
}

func (n *node) Role() Role { return n.role }

func (n *node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Bounds() (Rect, bool) {
	n.reads++
	return n.rect, !n.noRect
}

func chain(track *node, roles ...Role) *node {
	cur := track
	for _, r := range roles {
		cur = &node{role: r, parent: cur}
	}
	return cur
}

func TestResolve_ObservedScenario(t *testing.T) {
	track := &node{role: RoleNone, rect: Rect{Left: 154, Width: 876}}
	got, ok := Resolve(PointerEvent{PageX: 933.64, Target: track}, NestedLayout, false)
	require.True(t, ok)
	assert.Equal(t, 89, got)

	got, ok = Resolve(PointerEvent{PageX: 933.64, Target: track}, NestedLayout, true)
	require.True(t, ok)
	assert.Equal(t, 11, got)
}

func TestFromBounds(t *testing.T) {
	bounds := Rect{Left: 100, Width: 200}
	tests := []struct {
		name     string
		pageX    float64
		reversed bool
		want     int
	}{
		{"left edge", 100, false, 0},
		{"right edge", 300, false, 100},
		{"middle", 200, false, 50},
		{"left of track", 10, false, 0},
		{"right of track", 900, false, 100},
		{"left of track reversed", 10, true, 100},
		{"right of track reversed", 900, true, 0},
		{"middle reversed", 200, true, 50},
		{"quarter reversed", 150, true, 75},
		{"rounds half up", 125, false, 13},
		{"rounds half up reversed", 125, true, 88},
		{"rounds down", 124.8, false, 12},
		{"far away", 1e300, false, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromBounds(tt.pageX, bounds, tt.reversed)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromBounds_Unresolvable(t *testing.T) {
	tests := []struct {
		name   string
		pageX  float64
		bounds Rect
	}{
		{"zero width", 10, Rect{Left: 0, Width: 0}},
		{"negative width", 10, Rect{Left: 0, Width: -5}},
		{"infinite width", 10, Rect{Left: 0, Width: math.Inf(1)}},
		{"nan width", 10, Rect{Left: 0, Width: math.NaN()}},
		{"nan left", 10, Rect{Left: math.NaN(), Width: 10}},
		{"nan pageX", math.NaN(), Rect{Left: 0, Width: 10}},
		{"infinite pageX", math.Inf(1), Rect{Left: 0, Width: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FromBounds(tt.pageX, tt.bounds, false)
			assert.False(t, ok)
		})
	}
}

func TestFromBounds_Monotonic(t *testing.T) {
	bounds := Rect{Left: 40, Width: 313}
	prev, _ := FromBounds(-50, bounds, false)
	prevRev, _ := FromBounds(-50, bounds, true)
	for x := -50.0; x <= 450; x += 0.7 {
		got, ok := FromBounds(x, bounds, false)
		require.True(t, ok)
		assert.GreaterOrEqual(t, got, prev, "x=%v", x)
		prev = got

		gotRev, ok := FromBounds(x, bounds, true)
		require.True(t, ok)
		assert.LessOrEqual(t, gotRev, prevRev, "x=%v", x)
		prevRev = gotRev
	}
}

func TestResolve_Idempotent(t *testing.T) {
	track := &node{role: RoleTrack, rect: Rect{Left: 12, Width: 345}}
	ev := PointerEvent{PageX: 200, Target: chain(track, RoleFill)}
	a, okA := Resolve(ev, FlatLayout, false)
	b, okB := Resolve(ev, FlatLayout, false)
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}

func TestResolve_ReadsBoundsFresh(t *testing.T) {
	track := &node{role: RoleTrack, rect: Rect{Left: 0, Width: 100}}
	ev := PointerEvent{PageX: 50, Target: track}

	got, _ := Resolve(ev, FlatLayout, false)
	assert.Equal(t, 50, got)

	track.rect.Width = 200
	got, _ = Resolve(ev, FlatLayout, false)
	assert.Equal(t, 25, got)
	assert.Equal(t, 2, track.reads)
}

func TestLayout_Track(t *testing.T) {
	track := &node{role: RoleTrack, rect: Rect{Left: 0, Width: 100}}

	tests := []struct {
		name   string
		layout Layout
		target *node
		ok     bool
	}{
		{"track itself", FlatLayout, track, true},
		{"flat fill", FlatLayout, chain(track, RoleFill), true},
		{"flat dot", FlatLayout, chain(track, RoleHandle), true},
		{"flat icon", FlatLayout, chain(track, RoleHandle, RoleIcon), true},
		{"flat zone", FlatLayout, chain(track, RoleZone), true},
		{"nested fill", NestedLayout, chain(track, RoleFill), true},
		{"nested dot", NestedLayout, chain(track, RoleFill, RoleHandle), true},
		{"nested icon", NestedLayout, chain(track, RoleFill, RoleHandle, RoleIcon), true},
		{"nested dot in flat tree", NestedLayout, chain(track, RoleHandle), false},
		{"flat icon in nested tree", FlatLayout, chain(track, RoleFill, RoleHandle, RoleIcon), false},
		{"orphan icon", NestedLayout, &node{role: RoleIcon}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.layout.Track(tt.target)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Same(t, track, got)
			}
		})
	}
}

func TestLayout_TrackNil(t *testing.T) {
	_, ok := FlatLayout.Track(nil)
	assert.False(t, ok)
}

func TestResolve_NoBounds(t *testing.T) {
	track := &node{role: RoleTrack, noRect: true}
	_, ok := Resolve(PointerEvent{PageX: 5, Target: chain(track, RoleFill)}, FlatLayout, false)
	assert.False(t, ok)
}

func TestResolve_ThroughIcon(t *testing.T) {
	track := &node{role: RoleTrack, rect: Rect{Left: 154, Width: 876}}
	icon := chain(track, RoleFill, RoleHandle, RoleIcon)
	got, ok := Resolve(PointerEvent{PageX: 933.64, Target: icon}, NestedLayout, false)
	require.True(t, ok)
	assert.Equal(t, 89, got)
}

func TestRole_Names(t *testing.T) {
	for _, r := range []Role{RoleTrack, RoleFill, RoleHandle, RoleIcon, RoleZone} {
		assert.Equal(t, r, ParseRole(r.String()))
	}
	assert.Equal(t, RoleNone, ParseRole("bogus"))
	assert.Equal(t, "unknown", Role(42).String())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3))
	assert.Equal(t, 100, Clamp(140))
	assert.Equal(t, 42, Clamp(42))
}

func TestPointerKind_String(t *testing.T) {
	assert.Equal(t, "pointerdown", PointerDown.String())
	assert.Equal(t, "pointerleave", PointerLeave.String())
	assert.Equal(t, "click", Click.String())
	assert.Equal(t, "unknown", PointerKind(99).String())

	for k := PointerDown; k <= Click; k++ {
		got, ok := ParsePointerKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParsePointerKind("wheel")
	assert.False(t, ok)
}
