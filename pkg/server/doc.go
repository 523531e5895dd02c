// Package server is the demo host for multislider widgets.
//
// It serves a page with the sliders configured in the demo section of
// multislider.yaml and keeps a websocket per browser tab. The browser
// forwards pointer events together with the bounding boxes of the target's
// ancestors; the session rebuilds a geometry.Element chain from them,
// dispatches the event to the slider on its own goroutine and sends back
// re-rendered HTML when the host state changed.
//
// Each session owns its host state: progress values live in the session,
// never in the sliders, and callbacks are the only way they change.
//
// Routes:
//
//	GET /              demo page
//	GET /ws            pointer channel
//	GET /icons/{name}  dot icons (when an icon store is configured)
//	GET /metrics       Prometheus metrics (when enabled)
//	GET /healthz       liveness
package server
