package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relayops/reqkit/version"
)

// VersionHandler returns a handler that reports build version information.
func VersionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := version.GetVersionInfo()
		c.JSON(http.StatusOK, gin.H{
			"version":    v.Version,
			"git_commit": v.GitCommit,
			"build_time": v.BuildTime,
			"go_version": v.GoVersion,
			"is_release": v.IsRelease,
			"is_dirty":   v.IsDirty,
		})
	}
}
