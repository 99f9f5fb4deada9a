package middleware

import (
	"time"

	"golang-exercisebackend/observability"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template, so ids
// in the path do not blow up label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.RecordRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
