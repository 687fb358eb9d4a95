package logger

import (
	"context"
	"log/slog"
)

// logHandler provides a wrapper around the slog handler so event functions
// can be executed for matching log levels.
type logHandler struct {
	handler slog.Handler
	events  Events
}

func newLogHandler(handler slog.Handler, events Events) *logHandler {
	return &logHandler{handler: handler, events: events}
}

// Enabled reports whether the handler handles records at the given level.
func (h *logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler whose attributes consist of both the
// receiver's attributes and the arguments.
func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{handler: h.handler.WithAttrs(attrs), events: h.events}
}

// WithGroup returns a new handler with the given group appended to the
// receiver's existing groups.
func (h *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{handler: h.handler.WithGroup(name), events: h.events}
}

// Handle dispatches the record to the configured event function, if any,
// before passing it to the underlying handler.
func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	f := func(ev EventFn) {
		attrs := make(map[string]any, r.NumAttrs())
		r.Attrs(func(attr slog.Attr) bool {
			attrs[attr.Key] = attr.Value.Any()
			return true
		})

		ev(ctx, Record{
			Time:       r.Time,
			Message:    r.Message,
			Level:      Level(r.Level),
			Attributes: attrs,
		})
	}

	switch r.Level {
	case slog.LevelDebug:
		if h.events.Debug != nil {
			f(h.events.Debug)
		}
	case slog.LevelInfo:
		if h.events.Info != nil {
			f(h.events.Info)
		}
	case slog.LevelWarn:
		if h.events.Warn != nil {
			f(h.events.Warn)
		}
	case slog.LevelError:
		if h.events.Error != nil {
			f(h.events.Error)
		}
	}

	return h.handler.Handle(ctx, r)
}
