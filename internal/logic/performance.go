package logic

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inmatchpro/analytics-api/internal/ml"
	"github.com/inmatchpro/analytics-api/internal/models"
)

// History defaults for players absent from the summaries. A missing batter
// is treated as an average striker with no runs, a missing bowler as an
// expensive one with no wickets.
const (
	defaultStrikeRate = 100.0
	defaultEconomy    = 8.0
)

type performanceService struct {
	artifacts *ml.Artifacts
	store     ReferenceStore
	logger    *zap.SugaredLogger
}

// NewPerformanceService builds the per-player performance predictor.
func NewPerformanceService(artifacts *ml.Artifacts, store ReferenceStore, logger *zap.SugaredLogger) PerformanceService {
	return &performanceService{artifacts: artifacts, store: store, logger: logger}
}

// PredictTeam predicts runs and wickets for every submitted player and
// aggregates the team totals. Players are scored concurrently; output
// order matches input order.
func (s *performanceService) PredictTeam(ctx context.Context, players []models.PlayerInput) (models.PerformanceResponse, error) {
	start := time.Now()
	defer func() {
		predictionDuration.WithLabelValues("performance").Observe(time.Since(start).Seconds())
	}()

	if s.artifacts == nil || s.artifacts.BatterModel == nil || s.artifacts.BowlerModel == nil {
		predictionErrors.WithLabelValues("performance").Inc()
		return models.PerformanceResponse{}, ErrModelUnavailable
	}

	preds := make([]models.PlayerPerformance, len(players))
	g, _ := errgroup.WithContext(ctx)
	for i, p := range players {
		i, p := i, p
		g.Go(func() error {
			pred, err := s.predictPlayer(p)
			if err != nil {
				return fmt.Errorf("predict %s: %w", p.Name, err)
			}
			preds[i] = pred
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		predictionErrors.WithLabelValues("performance").Inc()
		return models.PerformanceResponse{}, err
	}

	var summary models.TeamPerformance
	bestRuns := -1
	for _, p := range preds {
		summary.TotalRuns += p.PredictedRuns
		summary.TotalWickets += p.PredictedWickets
		// Strict comparison keeps the first occurrence on ties.
		if p.PredictedRuns > bestRuns {
			bestRuns = p.PredictedRuns
			summary.BestPerformer = p.Name
		}
	}
	if len(preds) == 0 {
		summary.BestPerformer = ""
	}

	predictionsTotal.WithLabelValues("performance").Inc()
	return models.PerformanceResponse{Predictions: preds, TeamSummary: summary}, nil
}

// predictPlayer runs the role-appropriate sub-models over the player's
// historical summary, falling back to the defaults when history is absent.
func (s *performanceService) predictPlayer(p models.PlayerInput) (models.PlayerPerformance, error) {
	pred := models.PlayerPerformance{Name: p.Name, Team: p.Team, Role: p.Role}

	totalRuns, strikeRate := 0.0, defaultStrikeRate
	if bat, ok := s.store.BatterSummary(p.Name); ok {
		totalRuns, strikeRate = bat.TotalRuns, bat.StrikeRate
	}
	totalWickets, economy := 0.0, defaultEconomy
	if bowl, ok := s.store.BowlerSummary(p.Name); ok {
		totalWickets, economy = bowl.TotalWickets, bowl.Economy
	}

	if p.Role == models.RoleBatsman || p.Role == models.RoleAllRounder || p.Role == models.RoleWicketKeeper {
		runs, err := s.artifacts.BatterModel.PredictOne(totalRuns, strikeRate)
		if err != nil {
			return models.PlayerPerformance{}, err
		}
		pred.PredictedRuns = int(math.RoundToEven(runs))
	}
	if p.Role == models.RoleBowler || p.Role == models.RoleAllRounder {
		wickets, err := s.artifacts.BowlerModel.PredictOne(totalWickets, economy)
		if err != nil {
			return models.PlayerPerformance{}, err
		}
		pred.PredictedWickets = int(math.RoundToEven(wickets))
	}
	return pred, nil
}

// AllPlayers lists every player present in the historical summaries.
func (s *performanceService) AllPlayers() []string {
	return s.store.PerformanceNames()
}

// PlayerInfo infers a player's role from which summaries carry meaningful
// history for them. An unknown player gets an empty role rather than an
// error, so callers can probe names cheaply.
func (s *performanceService) PlayerInfo(name string) models.PlayerInfo {
	bat, hasBat := s.store.BatterSummary(name)
	bowl, hasBowl := s.store.BowlerSummary(name)

	isBatter := hasBat && bat.TotalRuns > 0
	isBowler := hasBowl && bowl.TotalWickets > 0

	var role string
	switch {
	case isBatter && isBowler:
		role = models.RoleAllRounder
	case isBatter:
		role = models.RoleBatsman
	case isBowler:
		role = models.RoleBowler
	}
	return models.PlayerInfo{Name: name, Role: role}
}
