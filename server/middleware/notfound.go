package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/relayops/reqkit/errors"
)

// NotFound handles requests that match no registered route. Mount it with
// gin's NoRoute so unmatched paths get the same error shape as every other
// failure.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		status, resp := apperrors.RouteNotFound(c.Request.URL.Path).HTTPResponse()
		c.JSON(status, resp)
	}
}
