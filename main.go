package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-exercisebackend/config"
	"golang-exercisebackend/database"
	"golang-exercisebackend/logger"
	"golang-exercisebackend/routes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	dotEnvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()
	sugar := log.Sugar()

	if dotEnvErr != nil {
		sugar.Infow("No .env file loaded, using process environment", "reason", dotEnvErr)
	}
	if err != nil {
		sugar.Fatalw("Invalid configuration", "error", err)
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, client := openStore(ctx, cfg, sugar)

	router := routes.NewRouter(routes.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, store, log)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Server running", "address", server.Addr, "store", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Error during shutdown", "error", err)
	}
	if client != nil {
		if err := client.Disconnect(shutdownCtx); err != nil {
			sugar.Errorw("Error disconnecting from MongoDB", "error", err)
		}
	}
}

// openStore connects the configured store once. A MongoDB that cannot be
// reached at startup is fatal.
func openStore(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (database.ExerciseStore, *mongo.Client) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("Using in-memory exercise store, data will not survive a restart")
		return database.NewInMemoryExerciseStore(), nil
	}

	client, err := database.DBInstance(ctx, cfg.MongoURI)
	if err != nil {
		log.Errorw("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	return database.NewMongoExerciseStore(client, cfg.MongoDatabase, cfg.MongoCollection, log), client
}
