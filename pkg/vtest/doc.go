// Package vtest provides testing helpers for sliders.
//
// It stands in for a browser: fake elements carry geometry roles and
// bounding boxes, a Recorder captures host callbacks, and a Driver
// delivers pointer events to a slider.
//
// # Quick Start
//
//	func TestDrag(t *testing.T) {
//	    rec := vtest.NewRecorder()
//	    s := slider.New(slider.Config{Callbacks: rec.Callbacks()})
//	    track := vtest.NewTrack(0, 200)
//	    d := vtest.NewDriver(t, s, track)
//
//	    d.Drag(20, 60, 100)
//	    assert.Equal(t, []int{30, 50}, rec.Values("slide"))
//	}
//
// # Mounting Rendered Trees
//
// Mount turns a rendered vdom tree into fake elements, so a pointer can
// target the actual icon or fill a slider drew:
//
//	m := vtest.Mount(s.Render(), 154, 876)
//	icon := m.Find(geometry.RoleIcon, 0)
//	d := vtest.NewDriver(t, s, icon)
//
// # Render Assertions
//
//	vtest.ExpectContains(t, s.Render(), `data-role="zone"`)
//	vtest.ExpectAttribute(t, s.Render(), "data-slider", "volume")
package vtest
