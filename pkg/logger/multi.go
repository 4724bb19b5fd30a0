package logger

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler sends each record to every wrapped handler that accepts
// its level. The serve command uses it to write pretty output to stdout
// and JSON to a log file at the same time.
type fanoutHandler []slog.Handler

// Multi returns a logger that dispatches every record to the handlers of
// all the given loggers.
func Multi(loggers ...*slog.Logger) *slog.Logger {
	fan := make(fanoutHandler, 0, len(loggers))
	for _, l := range loggers {
		fan = append(fan, l.Handler())
	}
	return slog.New(fan)
}

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle writes to every enabled handler, even if an earlier one fails.
func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanoutHandler) each(fn func(slog.Handler) slog.Handler) fanoutHandler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}
