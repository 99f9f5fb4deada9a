package routes

import (
	"time"

	controller "golang-exercisebackend/controllers"
	"golang-exercisebackend/database"
	"golang-exercisebackend/middleware"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the engine. The exercise routes are served both at the
// root and under /api, the prefix the browser client uses.
func NewRouter(cfg RouterConfig, store database.ExerciseStore, logger *zap.Logger) *gin.Engine {
	log := logger.Sugar()

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorHandler(log))

	router.GET("/healthz", controller.HealthCheck(store, log))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	exercises := controller.NewExerciseController(store, cfg.RequestTimeout, log)
	ExerciseRoutes(router.Group("/"), exercises)
	ExerciseRoutes(router.Group("/api"), exercises)

	return router
}
