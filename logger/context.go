package logger

import (
	"context"
)

// ctxKey is an unexported key type to avoid collisions in context.
type ctxKey struct{}

// IntoContext returns a new context carrying the given request-scoped logger.
func IntoContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Logger stored in ctx, or a no-op logger if none is
// present. The fallback keeps library code safe to call outside a request.
func FromContext(ctx context.Context) *Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*Logger); ok && l != nil {
			return l
		}
	}
	return Nop()
}
