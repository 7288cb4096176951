package logger

import (
	"context"
	"log/slog"
)

// componentHandler forwards to whatever handler is the slog default at the
// time of each record.
type componentHandler struct {
	component string
	attrs     []slog.Attr
	groups    []string
}

func (h componentHandler) target() slog.Handler {
	t := slog.Default().Handler().WithAttrs([]slog.Attr{slog.String("component", h.component)})
	for _, g := range h.groups {
		t = t.WithGroup(g)
	}
	if len(h.attrs) > 0 {
		t = t.WithAttrs(h.attrs)
	}
	return t
}

func (h componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slog.Default().Handler().Enabled(ctx, level)
}

func (h componentHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.target().Handle(ctx, r)
}

func (h componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return h
}

func (h componentHandler) WithGroup(name string) slog.Handler {
	h.groups = append(append([]string(nil), h.groups...), name)
	return h
}
