// Package logging defines the structured-logging interface used by the
// server and a slog-backed implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. args are key-value pairs:
//
//	log.Info(ctx, "translation completed", "user_id", id, "direction", "ko2ja")
//
// A request id stored in ctx with WithRequestID is added to every record as
// "request_id".
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
