// Package render turns vdom trees into HTML.
//
// Interactive elements (those with event handler props) receive a
// sequential hydration ID in data-hid and list their events in
// data-events; the handlers themselves are collected in a registry keyed
// "<hid>_<event>" so a host can route client events back to them:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, _ := r.RenderToString(node)
//	h := r.Handler("h1", "pointerdown")
package render
