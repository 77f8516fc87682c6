package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	FlightKey    contextKey = "flight"
)

// WithFlight tags every record logged with ctx with the flight code being served.
func WithFlight(ctx context.Context, flightCode string) context.Context {
	return context.WithValue(ctx, FlightKey, flightCode)
}

// StackTraceHandler adds request_id and flight from the context, and a stack trace to
// error records.
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, key := range []contextKey{RequestIDKey, FlightKey} {
			if value, ok := ctx.Value(key).(string); ok && value != "" {
				r.AddAttrs(slog.String(string(key), value))
			}
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// NewLogger builds a JSON logger writing to w. Debug level adds the source location.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	return slog.New(&StackTraceHandler{Handler: slog.NewJSONHandler(w, opts)})
}

// InitStructuredLogger installs a JSON logger writing to w as the slog default. The
// server logs to stdout; pickupctl logs to stderr so its output stays readable.
func InitStructuredLogger(w io.Writer, level slog.Leveler) {
	slog.SetDefault(NewLogger(w, level))
}
