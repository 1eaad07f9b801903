// Package logic implements the analytics services behind the HTTP
// handlers: live-match score and win prediction, per-player performance
// prediction, fantasy point estimation, playing-style cluster lookups and
// historical batter stats.
package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inmatchpro/analytics-api/internal/models"
	"github.com/inmatchpro/analytics-api/internal/store"
)

// Cache is the subset of the redis client the services use. Kept narrow so
// tests can fake it without a running server.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ReferenceStore is the read side of the startup-loaded reference tables.
type ReferenceStore interface {
	BatterSummary(name string) (store.BatterSummary, bool)
	BowlerSummary(name string) (store.BowlerSummary, bool)
	FantasyStats(name string) (store.FantasyStats, bool)
	BatterRecord(name string) (store.BatterRecord, bool)
	BatterNames() []string
	PerformanceNames() []string
	FantasyNames() []string
	BatterClusters() []store.BatterClusterRecord
	BowlerClusters() []store.BowlerClusterRecord
	BatterCluster(name string) (store.BatterClusterRecord, bool)
	BowlerCluster(name string) (store.BowlerClusterRecord, bool)
}

// LiveMatchService predicts the final innings score and win probability
// from in-innings match state.
type LiveMatchService interface {
	PredictInnings(ctx context.Context, req models.LiveMatchRequest) (models.LiveMatchPrediction, error)
	ModelHealth() map[string]bool
}

// PerformanceService predicts role-conditional runs and wickets for a
// submitted squad.
type PerformanceService interface {
	PredictTeam(ctx context.Context, players []models.PlayerInput) (models.PerformanceResponse, error)
	AllPlayers() []string
	PlayerInfo(name string) models.PlayerInfo
}

// FantasyService estimates fantasy points and a contest rank range for a
// selected eleven.
type FantasyService interface {
	Estimate(ctx context.Context, req models.FantasyEstimateRequest) (models.FantasyEstimate, error)
	PlayerNames() []string
}

// ClusteringService serves playing-style cluster summaries and per-player
// assignments.
type ClusteringService interface {
	BatterClusters(ctx context.Context) ([]models.BatterCluster, error)
	BowlerClusters(ctx context.Context) ([]models.BowlerCluster, error)
	BatterCluster(name string) (models.BatterClusterDetail, error)
	BowlerCluster(name string) (models.BowlerClusterDetail, error)
}

// PlayerStatsService serves historical batter records with recent-form
// insights.
type PlayerStatsService interface {
	BatterNames() []string
	BatterStats(name string) (models.BatterStats, error)
}
