package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/relayops/reqkit/logger"
)

// RequestLifecycle emits the entry event for every request synchronously
// before the handler runs, binds a request-scoped logger to the request
// context, and emits the exit event exactly once at response finalization
// with the final status and elapsed duration.
//
// Paths listed in skipPaths (e.g. health probes) are exempt from both events.
func RequestLifecycle(log *logger.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		reqLog := log.WithFields(map[string]interface{}{
			logger.FieldCorrelationID: CorrelationIDFromContext(c.Request.Context()),
			logger.FieldMethod:        c.Request.Method,
			logger.FieldPath:          c.Request.URL.Path,
			logger.FieldClientIP:      c.ClientIP(),
			logger.FieldUserAgent:     c.Request.UserAgent(),
		})
		c.Request = c.Request.WithContext(logger.IntoContext(c.Request.Context(), reqLog))

		reqLog.Info("Request received")

		exit := NewExitEvent(reqLog, start)
		// Deferred so a panicking handler still gets its exit event. The
		// recovery stage sits outside this one and will write the 500 after
		// the re-panic, so report that status here when nothing was written.
		defer func() {
			status := c.Writer.Status()
			if r := recover(); r != nil {
				if !c.Writer.Written() {
					status = http.StatusInternalServerError
				}
				exit.Emit(status)
				panic(r)
			}
			exit.Emit(status)
		}()
		c.Next()
	}
}

// ExitEvent is the single-fire exit-log binding for one request. If the
// transport triggers finalization more than once, only the first invocation
// emits; the rest are no-ops.
type ExitEvent struct {
	log   *logger.Logger
	start time.Time
	once  sync.Once
}

// NewExitEvent creates the exit-event binding for a request that started at
// the given time, using the request-scoped logger handle.
func NewExitEvent(log *logger.Logger, start time.Time) *ExitEvent {
	return &ExitEvent{log: log, start: start}
}

// Emit logs the exit event with the final status and elapsed duration in
// milliseconds, at a level derived from the status. Subsequent calls do
// nothing.
func (e *ExitEvent) Emit(status int) {
	e.once.Do(func() {
		duration := time.Since(e.start)
		fields := map[string]interface{}{
			logger.FieldStatus:   status,
			logger.FieldDuration: duration.Milliseconds(),
		}
		switch {
		case status >= 500:
			e.log.Error("Request completed", fields)
		case status >= 400:
			e.log.Warn("Request completed", fields)
		default:
			e.log.Info("Request completed", fields)
		}
	})
}
