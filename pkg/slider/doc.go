// Package slider is the composition root of a multi-handle progress
// slider: it binds pointer events delivered by a host to the drag session
// and geometry resolver, and projects the host's current entries onto a
// vdom tree after every event.
//
// The host is the source of truth for progress values. A typical loop:
//
//	s := slider.New(slider.Config{Callbacks: drag.Callbacks{OnSlide: set}})
//	s.SetEntries(current)
//	node := s.Render()
//	...
//	s.Dispatch(ctx, ev) // host updates its values from OnSlide
//	s.SetEntries(current)
//	node = s.Render()
//
// Two adapters cover the two widget shapes: Multi takes composable
// Progress children and drags; Double takes the legacy props object with
// a sliders array and seeks on click.
package slider
