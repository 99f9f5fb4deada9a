package controllers

import (
	"context"
	"net/http"
	"time"

	"golang-exercisebackend/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthCheck answers 200 while the store responds to a ping.
func HealthCheck(store database.ExerciseStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Warnw("Health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "online"})
	}
}
