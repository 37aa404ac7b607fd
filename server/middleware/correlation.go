package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Default correlation header names. The primary header is also the response
// header under which the resolved ID is echoed back.
const (
	DefaultCorrelationHeader = "X-Correlation-Id"
	DefaultFallbackHeader    = "X-Request-Id"
)

// ContextKeyCorrelationID is the gin context key under which the resolved
// correlation ID is stored.
const ContextKeyCorrelationID = "correlation_id"

// CorrelationConfig holds the recognized inbound header names.
type CorrelationConfig struct {
	// Header is the primary correlation-ID header, consulted first and used
	// for the response echo.
	Header string `yaml:"header" mapstructure:"header"`
	// FallbackHeader is the secondary request-ID header consulted when the
	// primary is absent.
	FallbackHeader string `yaml:"fallback_header" mapstructure:"fallback_header"`
}

// ApplyDefaults sets default header names for unset fields.
func (c *CorrelationConfig) ApplyDefaults() {
	if c.Header == "" {
		c.Header = DefaultCorrelationHeader
	}
	if c.FallbackHeader == "" {
		c.FallbackHeader = DefaultFallbackHeader
	}
}

// correlationIDKey is an unexported key type for the request context.
type correlationIDKey struct{}

// WithCorrelationID attaches a correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext gets the correlation ID from context, or "" if none.
func CorrelationIDFromContext(ctx context.Context) string {
	if v := ctx.Value(correlationIDKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Correlation resolves exactly one correlation ID per request: the primary
// inbound header if present, else the fallback header, else a freshly
// generated UUID. The ID is stored on the request context, made available to
// gin handlers, and always echoed back on the response under the primary
// header name. Resolution cannot fail.
func Correlation(cfg CorrelationConfig) gin.HandlerFunc {
	cfg.ApplyDefaults()
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.Header)
		if id == "" {
			id = c.GetHeader(cfg.FallbackHeader)
		}
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ContextKeyCorrelationID, id)
		c.Request = c.Request.WithContext(WithCorrelationID(c.Request.Context(), id))
		c.Header(cfg.Header, id)
		c.Next()
	}
}
