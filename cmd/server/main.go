package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/config"
	"github.com/inmatchpro/analytics-api/internal/handlers"
	"github.com/inmatchpro/analytics-api/internal/logic"
	"github.com/inmatchpro/analytics-api/internal/ml"
	"github.com/inmatchpro/analytics-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	sugar.Infow("Starting analytics API", "port", cfg.Port, "env", cfg.Env)

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid redis URL", "error", err)
	}
	redisClient := redis.NewClient(opts)
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// Cluster caching degrades gracefully, so an unreachable cache is
		// not fatal at startup.
		sugar.Warnw("Redis unreachable, continuing without cache", "error", err)
	}
	cancel()

	artifacts := ml.Load(cfg.ModelDir, sugar)
	tables := store.Open(cfg.DataDir, sugar)

	h := handlers.New(handlers.Config{
		Redis:       redisClient,
		Logger:      logger,
		LiveMatch:   logic.NewLiveMatchService(artifacts, sugar),
		Performance: logic.NewPerformanceService(artifacts, tables, sugar),
		Fantasy:     logic.NewFantasyService(artifacts, tables, sugar),
		Clustering:  logic.NewClusteringService(tables, redisClient, cfg.CacheTTL, sugar),
		PlayerStats: logic.NewPlayerStatsService(tables, sugar),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(h, cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		sugar.Errorw("Forced shutdown", "error", err)
	}
	sugar.Info("Server stopped")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
