package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/relayops/reqkit/errors"
	"github.com/relayops/reqkit/logger"
	"github.com/relayops/reqkit/util"
)

// maxBodyLogBytes caps how much of a request body is retained for error logs.
const maxBodyLogBytes = 32 * 1024

// sensitiveHeaders are masked before request headers reach the error log.
var sensitiveHeaders = map[string]bool{
	"Authorization":       true,
	"Cookie":              true,
	"Set-Cookie":          true,
	"Proxy-Authorization": true,
	"X-Api-Key":           true,
}

// maskedHeaderPrefix keeps the auth scheme ("Bearer ", "Basic ") visible in
// masked header values.
const maskedHeaderPrefix = 7

// ErrorHandler is the centralized error stage. Handlers report failures with
// c.Error(err) (or server.AbortWithError); after the chain unwinds, the first
// recorded error is logged once at error level with full request context and
// then classified and translated into the single JSON error response for the
// request. Register this middleware last so nothing can intercept a failure
// before it.
//
// The restricted flag is the disclosure policy: when true, unclassified
// errors are redacted before they reach the client.
func ErrorHandler(log *logger.Logger, restricted bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := captureBody(c)

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		// Log before translation so a misbehaving translator can never
		// swallow the error.
		log.Error("Request failed", map[string]interface{}{
			logger.FieldError:         err.Error(),
			logger.FieldCorrelationID: CorrelationIDFromContext(c.Request.Context()),
			logger.FieldMethod:        c.Request.Method,
			logger.FieldPath:          c.Request.URL.Path,
			"headers":                 redactHeaders(c.Request.Header),
			"body":                    string(body),
		})

		if c.Writer.Written() {
			return
		}
		appErr := apperrors.Classify(err, restricted)
		status, resp := appErr.HTTPResponse()
		c.JSON(status, resp)
	}
}

// captureBody tees off a bounded copy of the request body so it can appear
// in the error log if the request fails. The body remains fully readable by
// downstream handlers.
func captureBody(c *gin.Context) []byte {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyLogBytes))
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), c.Request.Body))
	return data
}

// redactHeaders flattens request headers for logging, masking sensitive ones.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if sensitiveHeaders[http.CanonicalHeaderKey(name)] {
			out[name] = util.MaskSecret(strings.Join(values, ", "), maskedHeaderPrefix)
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}
