package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Redis  *redis.Client
	Logger *zap.Logger
	// Services
	LiveMatch   logic.LiveMatchService
	Performance logic.PerformanceService
	Fantasy     logic.FantasyService
	Clustering  logic.ClusteringService
	PlayerStats logic.PlayerStatsService
}

type Handler struct {
	redis       *redis.Client
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	liveMatch   logic.LiveMatchService
	performance logic.PerformanceService
	fantasy     logic.FantasyService
	clustering  logic.ClusteringService
	playerStats logic.PlayerStatsService
}

func New(cfg Config) *Handler {
	return &Handler{
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		liveMatch:   cfg.LiveMatch,
		performance: cfg.Performance,
		fantasy:     cfg.Fantasy,
		clustering:  cfg.Clustering,
		playerStats: cfg.PlayerStats,
	}
}
