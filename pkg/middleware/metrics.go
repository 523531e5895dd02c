package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/multislider/pkg/drag"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/slider"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "multislider").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "multislider",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the slider metrics registered on one registry.
type Metrics struct {
	pointerEvents    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	callbacks        *prometheus.CounterVec
	dragsActive      prometheus.Gauge
	wsSessions       prometheus.Gauge
	wsErrors         *prometheus.CounterVec
}

// NewMetrics registers the slider metrics. Registering twice on the same
// registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		pointerEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pointer_events_total",
			Help:        "Total number of pointer events dispatched to sliders",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "outcome"}),

		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_duration_seconds",
			Help:        "Pointer event dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		callbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "callbacks_total",
			Help:        "Total number of host callbacks invoked",
			ConstLabels: config.ConstLabels,
		}, []string{"callback"}),

		dragsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "drag_sessions_active",
			Help:        "Number of drag sessions in progress",
			ConstLabels: config.ConstLabels,
		}),

		wsSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_sessions_active",
			Help:        "Number of connected websocket clients",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total websocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Middleware counts and times every dispatched event and tracks drag
// sessions entering and leaving the Dragging state.
func (m *Metrics) Middleware() slider.Middleware {
	return func(next slider.Handler) slider.Handler {
		return func(ctx context.Context, ev geometry.PointerEvent) slider.Outcome {
			s, _ := slider.FromContext(ctx)
			was := s != nil && s.Dragging()

			start := time.Now()
			out := next(ctx, ev)
			m.dispatchDuration.WithLabelValues(ev.Kind.String()).Observe(time.Since(start).Seconds())
			m.pointerEvents.WithLabelValues(ev.Kind.String(), out.String()).Inc()

			if s != nil {
				switch now := s.Dragging(); {
				case now && !was:
					m.dragsActive.Inc()
				case was && !now:
					m.dragsActive.Dec()
				}
			}
			return out
		}
	}
}

// Callbacks wraps cb so each invocation is counted. Nil callbacks stay nil.
func (m *Metrics) Callbacks(cb drag.Callbacks) drag.Callbacks {
	return drag.Callbacks{
		OnSlide:     m.count("slide", cb.OnSlide),
		OnDragStart: m.count("dragstart", cb.OnDragStart),
		OnDragStop:  m.count("dragstop", cb.OnDragStop),
	}
}

func (m *Metrics) count(name string, fn func(int)) func(int) {
	if fn == nil {
		return nil
	}
	c := m.callbacks.WithLabelValues(name)
	return func(p int) {
		c.Inc()
		fn(p)
	}
}

// RecordSessionOpen records a websocket client connecting.
func (m *Metrics) RecordSessionOpen() { m.wsSessions.Inc() }

// RecordSessionClose records a websocket client disconnecting. dragging
// is the number of that client's sliders still mid-drag.
func (m *Metrics) RecordSessionClose(dragging int) {
	m.wsSessions.Dec()
	m.dragsActive.Sub(float64(dragging))
}

// RecordWebSocketError records a websocket error.
func (m *Metrics) RecordWebSocketError(errorType string) {
	m.wsErrors.WithLabelValues(errorType).Inc()
}
