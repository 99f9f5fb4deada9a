package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler answers requests that ended with an error attached to the
// context and nothing written, typically a store failure mid-request.
func ErrorHandler(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		log.Errorw("Unhandled request error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", c.Errors.String(),
		)
		if c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Internal server error"})
	}
}
