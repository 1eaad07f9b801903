package handlers

import (
	"context"

	"github.com/inmatchpro/analytics-api/internal/models"
)

// MockLiveMatchService
type MockLiveMatchService struct {
	PredictInningsFunc func(ctx context.Context, req models.LiveMatchRequest) (models.LiveMatchPrediction, error)
	ModelHealthFunc    func() map[string]bool
}

func (m *MockLiveMatchService) PredictInnings(ctx context.Context, req models.LiveMatchRequest) (models.LiveMatchPrediction, error) {
	if m.PredictInningsFunc != nil {
		return m.PredictInningsFunc(ctx, req)
	}
	return models.LiveMatchPrediction{}, nil
}

func (m *MockLiveMatchService) ModelHealth() map[string]bool {
	if m.ModelHealthFunc != nil {
		return m.ModelHealthFunc()
	}
	return map[string]bool{"score_model_loaded": true}
}

// MockPerformanceService
type MockPerformanceService struct {
	PredictTeamFunc func(ctx context.Context, players []models.PlayerInput) (models.PerformanceResponse, error)
	AllPlayersFunc  func() []string
	PlayerInfoFunc  func(name string) models.PlayerInfo
}

func (m *MockPerformanceService) PredictTeam(ctx context.Context, players []models.PlayerInput) (models.PerformanceResponse, error) {
	if m.PredictTeamFunc != nil {
		return m.PredictTeamFunc(ctx, players)
	}
	return models.PerformanceResponse{}, nil
}

func (m *MockPerformanceService) AllPlayers() []string {
	if m.AllPlayersFunc != nil {
		return m.AllPlayersFunc()
	}
	return nil
}

func (m *MockPerformanceService) PlayerInfo(name string) models.PlayerInfo {
	if m.PlayerInfoFunc != nil {
		return m.PlayerInfoFunc(name)
	}
	return models.PlayerInfo{Name: name}
}

// MockFantasyService
type MockFantasyService struct {
	EstimateFunc    func(ctx context.Context, req models.FantasyEstimateRequest) (models.FantasyEstimate, error)
	PlayerNamesFunc func() []string
}

func (m *MockFantasyService) Estimate(ctx context.Context, req models.FantasyEstimateRequest) (models.FantasyEstimate, error) {
	if m.EstimateFunc != nil {
		return m.EstimateFunc(ctx, req)
	}
	return models.FantasyEstimate{}, nil
}

func (m *MockFantasyService) PlayerNames() []string {
	if m.PlayerNamesFunc != nil {
		return m.PlayerNamesFunc()
	}
	return nil
}

// MockClusteringService
type MockClusteringService struct {
	BatterClustersFunc func(ctx context.Context) ([]models.BatterCluster, error)
	BowlerClustersFunc func(ctx context.Context) ([]models.BowlerCluster, error)
	BatterClusterFunc  func(name string) (models.BatterClusterDetail, error)
	BowlerClusterFunc  func(name string) (models.BowlerClusterDetail, error)
}

func (m *MockClusteringService) BatterClusters(ctx context.Context) ([]models.BatterCluster, error) {
	if m.BatterClustersFunc != nil {
		return m.BatterClustersFunc(ctx)
	}
	return nil, nil
}

func (m *MockClusteringService) BowlerClusters(ctx context.Context) ([]models.BowlerCluster, error) {
	if m.BowlerClustersFunc != nil {
		return m.BowlerClustersFunc(ctx)
	}
	return nil, nil
}

func (m *MockClusteringService) BatterCluster(name string) (models.BatterClusterDetail, error) {
	if m.BatterClusterFunc != nil {
		return m.BatterClusterFunc(name)
	}
	return models.BatterClusterDetail{}, nil
}

func (m *MockClusteringService) BowlerCluster(name string) (models.BowlerClusterDetail, error) {
	if m.BowlerClusterFunc != nil {
		return m.BowlerClusterFunc(name)
	}
	return models.BowlerClusterDetail{}, nil
}

// MockPlayerStatsService
type MockPlayerStatsService struct {
	BatterNamesFunc func() []string
	BatterStatsFunc func(name string) (models.BatterStats, error)
}

func (m *MockPlayerStatsService) BatterNames() []string {
	if m.BatterNamesFunc != nil {
		return m.BatterNamesFunc()
	}
	return nil
}

func (m *MockPlayerStatsService) BatterStats(name string) (models.BatterStats, error) {
	if m.BatterStatsFunc != nil {
		return m.BatterStatsFunc(name)
	}
	return models.BatterStats{}, nil
}
