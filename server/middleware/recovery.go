package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/relayops/reqkit/errors"
	"github.com/relayops/reqkit/logger"
)

// Recovery converts handler panics into classified 500 responses. It is the
// outermost middleware so that a panic anywhere in the chain still produces
// a well-formed error body and a log entry with the stack.
func Recovery(log *logger.Logger, restricted bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", r)
			}

			log.Error("Panic recovered", map[string]interface{}{
				logger.FieldError:         err.Error(),
				logger.FieldCorrelationID: CorrelationIDFromContext(c.Request.Context()),
				logger.FieldMethod:        c.Request.Method,
				logger.FieldPath:          c.Request.URL.Path,
				"stack":                   string(debug.Stack()),
			})

			if c.Writer.Written() {
				c.Abort()
				return
			}
			appErr := apperrors.Classify(err, restricted)
			status, resp := appErr.HTTPResponse()
			c.AbortWithStatusJSON(status, resp)
		}()

		c.Next()
	}
}
