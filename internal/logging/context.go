package logging

import (
	"context"
	"log/slog"
	"maps"
)

type data map[string]slog.Attr

type dataKey struct{}

// With returns a context carrying the key-value pairs; records logged
// with it through a wrapped handler include them.
func With(ctx context.Context, kvargs ...any) context.Context {
	if len(kvargs) == 0 {
		return ctx
	}
	d, ok := ctx.Value(dataKey{}).(data)
	if ok {
		d = maps.Clone(d)
	} else {
		d = data{}
	}

	var r slog.Record
	r.Add(kvargs...)
	r.Attrs(func(a slog.Attr) bool {
		d[a.Key] = a
		return true
	})
	return context.WithValue(ctx, dataKey{}, d)
}

// Attrs returns the attributes carried by ctx.
func Attrs(ctx context.Context) []slog.Attr {
	d, ok := ctx.Value(dataKey{}).(data)
	if !ok {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(d))
	for _, v := range d {
		attrs = append(attrs, v)
	}
	return attrs
}

// Handler adds context attributes to every record.
type Handler struct {
	handler slog.Handler
}

// WrapHandler wraps h so context attributes are logged.
func WrapHandler(h slog.Handler) Handler {
	return Handler{handler: h}
}

func (h Handler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := Attrs(ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{handler: h.handler.WithAttrs(attrs)}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{handler: h.handler.WithGroup(name)}
}
