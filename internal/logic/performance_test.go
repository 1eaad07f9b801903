package logic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/ml"
	"github.com/inmatchpro/analytics-api/internal/models"
	"github.com/inmatchpro/analytics-api/internal/store"
)

// performanceArtifacts builds sub-models that echo their first feature:
// predicted runs equal total runs scaled down, wickets likewise.
func performanceArtifacts() *ml.Artifacts {
	return &ml.Artifacts{
		BatterModel: &ml.LinearModel{
			Columns:   []string{"total_runs", "strike_rate"},
			Weights:   [][]float64{{0.01, 0}},
			Intercept: []float64{0},
		},
		BowlerModel: &ml.LinearModel{
			Columns:   []string{"total_wickets", "economy"},
			Weights:   [][]float64{{0.1, 0}},
			Intercept: []float64{0},
		},
	}
}

func performanceStore() *mockStore {
	return &mockStore{
		batters: map[string]store.BatterSummary{
			"V Kohli":   {Name: "V Kohli", TotalRuns: 7000, StrikeRate: 131},
			"HH Pandya": {Name: "HH Pandya", TotalRuns: 2300, StrikeRate: 145},
		},
		bowlers: map[string]store.BowlerSummary{
			"JJ Bumrah": {Name: "JJ Bumrah", TotalWickets: 145, Economy: 7.4},
			"HH Pandya": {Name: "HH Pandya", TotalWickets: 50, Economy: 8.8},
		},
	}
}

func TestPredictTeam(t *testing.T) {
	svc := NewPerformanceService(performanceArtifacts(), performanceStore(), zap.NewNop().Sugar())

	players := []models.PlayerInput{
		{Name: "V Kohli", Team: "RCB", Role: models.RoleBatsman},
		{Name: "JJ Bumrah", Team: "MI", Role: models.RoleBowler},
		{Name: "HH Pandya", Team: "MI", Role: models.RoleAllRounder},
	}
	resp, err := svc.PredictTeam(context.Background(), players)
	if err != nil {
		t.Fatalf("PredictTeam() error: %v", err)
	}
	if len(resp.Predictions) != 3 {
		t.Fatalf("got %d predictions, want 3", len(resp.Predictions))
	}

	kohli := resp.Predictions[0]
	if kohli.PredictedRuns != 70 || kohli.PredictedWickets != 0 {
		t.Errorf("batsman prediction = %+v", kohli)
	}

	// 145 wickets scale to 14.5, which rounds half-to-even down to 14.
	bumrah := resp.Predictions[1]
	if bumrah.PredictedRuns != 0 || bumrah.PredictedWickets != 14 {
		t.Errorf("bowler prediction = %+v", bumrah)
	}

	pandya := resp.Predictions[2]
	if pandya.PredictedRuns != 23 || pandya.PredictedWickets != 5 {
		t.Errorf("all-rounder prediction = %+v", pandya)
	}

	if resp.TeamSummary.TotalRuns != 93 {
		t.Errorf("TotalRuns = %d, want 93", resp.TeamSummary.TotalRuns)
	}
	if resp.TeamSummary.TotalWickets != 19 {
		t.Errorf("TotalWickets = %d, want 19", resp.TeamSummary.TotalWickets)
	}
	if resp.TeamSummary.BestPerformer != "V Kohli" {
		t.Errorf("BestPerformer = %q, want V Kohli", resp.TeamSummary.BestPerformer)
	}
}

func TestPredictTeamDefaultsForUnknownPlayer(t *testing.T) {
	svc := NewPerformanceService(performanceArtifacts(), performanceStore(), zap.NewNop().Sugar())

	resp, err := svc.PredictTeam(context.Background(), []models.PlayerInput{
		{Name: "Debutant", Role: models.RoleBatsman},
	})
	if err != nil {
		t.Fatalf("PredictTeam() error: %v", err)
	}
	// Unknown batter defaults to zero total runs, so the echo model
	// predicts 0.
	if got := resp.Predictions[0].PredictedRuns; got != 0 {
		t.Errorf("PredictedRuns = %d, want 0", got)
	}
}

func TestPredictTeamUnknownRole(t *testing.T) {
	svc := NewPerformanceService(performanceArtifacts(), performanceStore(), zap.NewNop().Sugar())

	resp, err := svc.PredictTeam(context.Background(), []models.PlayerInput{
		{Name: "V Kohli", Role: "Coach"},
	})
	if err != nil {
		t.Fatalf("PredictTeam() error: %v", err)
	}
	p := resp.Predictions[0]
	if p.PredictedRuns != 0 || p.PredictedWickets != 0 {
		t.Errorf("unknown role should predict nothing, got %+v", p)
	}
}

func TestPredictTeamEmpty(t *testing.T) {
	svc := NewPerformanceService(performanceArtifacts(), performanceStore(), zap.NewNop().Sugar())

	resp, err := svc.PredictTeam(context.Background(), nil)
	if err != nil {
		t.Fatalf("PredictTeam() error: %v", err)
	}
	if resp.TeamSummary.BestPerformer != "" {
		t.Errorf("BestPerformer = %q, want empty", resp.TeamSummary.BestPerformer)
	}
	if resp.TeamSummary.TotalRuns != 0 || resp.TeamSummary.TotalWickets != 0 {
		t.Errorf("empty squad should total zero, got %+v", resp.TeamSummary)
	}
}

func TestPredictTeamTieKeepsFirst(t *testing.T) {
	ms := performanceStore()
	ms.batters["AB"] = store.BatterSummary{Name: "AB", TotalRuns: 7000, StrikeRate: 150}
	svc := NewPerformanceService(performanceArtifacts(), ms, zap.NewNop().Sugar())

	resp, err := svc.PredictTeam(context.Background(), []models.PlayerInput{
		{Name: "V Kohli", Role: models.RoleBatsman},
		{Name: "AB", Role: models.RoleBatsman},
	})
	if err != nil {
		t.Fatalf("PredictTeam() error: %v", err)
	}
	if resp.TeamSummary.BestPerformer != "V Kohli" {
		t.Errorf("tie should keep first occurrence, got %q", resp.TeamSummary.BestPerformer)
	}
}

func TestPredictTeamModelUnavailable(t *testing.T) {
	svc := NewPerformanceService(nil, performanceStore(), zap.NewNop().Sugar())
	_, err := svc.PredictTeam(context.Background(), []models.PlayerInput{{Name: "V Kohli"}})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("error = %v, want ErrModelUnavailable", err)
	}
}

func TestPlayerInfo(t *testing.T) {
	svc := NewPerformanceService(performanceArtifacts(), performanceStore(), zap.NewNop().Sugar())

	tests := []struct {
		name     string
		wantRole string
	}{
		{"V Kohli", models.RoleBatsman},
		{"JJ Bumrah", models.RoleBowler},
		{"HH Pandya", models.RoleAllRounder},
		{"Nobody", ""},
	}
	for _, tt := range tests {
		info := svc.PlayerInfo(tt.name)
		if info.Role != tt.wantRole {
			t.Errorf("PlayerInfo(%q).Role = %q, want %q", tt.name, info.Role, tt.wantRole)
		}
		if info.Name != tt.name {
			t.Errorf("PlayerInfo(%q).Name = %q", tt.name, info.Name)
		}
	}
}
