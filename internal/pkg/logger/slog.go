package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	SessionIDKey contextKey = "session_id"
)

// SessionIDFromContext returns the browser session id set by the transport
// middleware, or "" when the request carried none.
func SessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		return sessionID
	}

	return ""
}

// StackTraceHandler adds a stack trace to error records and attaches the
// request and session ids from context.
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}

		if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
			r.AddAttrs(slog.String("session_id", sessionID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, opts)
	handler := &StackTraceHandler{Handler: jsonHandler}

	slog.SetDefault(slog.New(handler))
}
