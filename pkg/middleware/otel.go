package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/slider"
)

// Default tracer name for slider spans.
const defaultTracerName = "multislider"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "multislider").
	TracerName string

	// TracerProvider supplies the tracer. Defaults to the global provider.
	TracerProvider trace.TracerProvider

	// IncludePosition records the pointer's page X coordinate.
	IncludePosition bool

	// Filter determines which events to trace.
	// If nil, all events are traced.
	Filter func(ev geometry.PointerEvent) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(ctx context.Context, ev geometry.PointerEvent) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithIncludePosition enables recording the pointer position.
func WithIncludePosition(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludePosition = include
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(ev geometry.PointerEvent) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx context.Context, ev geometry.PointerEvent) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that traces every dispatched pointer
// event. Spans are named "multislider.<event kind>" and carry the slider
// ID, the drag state before and after, and the dispatch outcome. An
// unresolved outcome sets an error status.
func OpenTelemetry(opts ...OTelOption) slider.Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	tracer := config.TracerProvider.Tracer(config.TracerName)

	return func(next slider.Handler) slider.Handler {
		return func(ctx context.Context, ev geometry.PointerEvent) slider.Outcome {
			if config.Filter != nil && !config.Filter(ev) {
				return next(ctx, ev)
			}

			attrs := []attribute.KeyValue{
				attribute.String("multislider.event_type", ev.Kind.String()),
				attribute.Int("multislider.button", ev.Button),
			}
			if ev.Target != nil {
				attrs = append(attrs, attribute.String("multislider.target_role", ev.Target.Role().String()))
			}
			s, ok := slider.FromContext(ctx)
			if ok {
				attrs = append(attrs,
					attribute.String("multislider.slider_id", s.ID()),
					attribute.Bool("multislider.dragging_before", s.Dragging()),
				)
			}
			if config.IncludePosition {
				attrs = append(attrs, attribute.Float64("multislider.page_x", ev.PageX))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(ctx, ev)...)
			}

			spanCtx, span := tracer.Start(ctx, "multislider."+ev.Kind.String(),
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			out := next(spanCtx, ev)

			span.SetAttributes(attribute.String("multislider.outcome", out.String()))
			if ok {
				span.SetAttributes(attribute.Bool("multislider.dragging_after", s.Dragging()))
			}
			if out == slider.OutcomeUnresolved {
				span.SetStatus(codes.Error, "track geometry unavailable")
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return out
		}
	}
}
