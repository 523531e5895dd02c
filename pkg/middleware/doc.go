// Package middleware provides observability middleware for sliders.
//
// This package includes:
//   - Prometheus metrics for pointer dispatch, callbacks and sessions
//   - OpenTelemetry tracing of dispatched pointer events
//
// # Prometheus Metrics
//
// Metrics are registered once per Metrics value on the configured
// registry:
//   - multislider_pointer_events_total: events by kind and outcome
//   - multislider_dispatch_duration_seconds: dispatch latency by kind
//   - multislider_callbacks_total: host callbacks by name
//   - multislider_drag_sessions_active: drags in progress
//   - multislider_websocket_sessions_active: connected demo clients
//   - multislider_websocket_errors_total: websocket errors by type
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	s := slider.New(slider.Config{
//	    Middleware: []slider.Middleware{m.Middleware()},
//	    Callbacks:  m.Callbacks(cb),
//	})
//
// # OpenTelemetry
//
// The tracing middleware opens one span per dispatched event using the
// global tracer provider unless another is given:
//
//	slider.Config{Middleware: []slider.Middleware{
//	    middleware.OpenTelemetry(middleware.WithTracerName("ui")),
//	}}
package middleware
