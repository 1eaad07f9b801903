package logic

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/ml"
	"github.com/inmatchpro/analytics-api/internal/models"
)

type liveMatchService struct {
	artifacts *ml.Artifacts
	assembler *ml.Assembler
	logger    *zap.SugaredLogger
}

// NewLiveMatchService builds the live-match predictor over the loaded
// artifacts. The assembler is fixed at construction; per-request work is
// read-only.
func NewLiveMatchService(artifacts *ml.Artifacts, logger *zap.SugaredLogger) LiveMatchService {
	var columns []string
	if artifacts != nil {
		columns = artifacts.FeatureColumns
	}
	var scaler *ml.StandardScaler
	if artifacts != nil {
		scaler = artifacts.ScoreScaler
	}
	return &liveMatchService{
		artifacts: artifacts,
		assembler: &ml.Assembler{
			Teams:   ml.Teams,
			Venues:  ml.Venues,
			Scaler:  scaler,
			Columns: columns,
		},
		logger: logger,
	}
}

// PredictInnings assembles the feature vector for the submitted match
// state and runs the two-output score model. The first output is the
// predicted final score, the second the win probability of the batting
// side.
func (s *liveMatchService) PredictInnings(ctx context.Context, req models.LiveMatchRequest) (models.LiveMatchPrediction, error) {
	start := time.Now()
	defer func() {
		predictionDuration.WithLabelValues("live_match").Observe(time.Since(start).Seconds())
	}()

	if s.artifacts == nil || s.artifacts.ScoreModel == nil || s.artifacts.ScoreScaler == nil || len(s.artifacts.FeatureColumns) == 0 {
		predictionErrors.WithLabelValues("live_match").Inc()
		return models.LiveMatchPrediction{}, ErrModelUnavailable
	}

	state := ml.InningsState{
		Over:         req.Over,
		Ball:         req.Ball,
		CurrentScore: req.CurrentScore,
		Wickets:      req.Wickets,
		RunsLast5:    req.RunsLast5,
		Target:       req.Target,
	}
	x, err := s.assembler.Assemble(state, req.BattingTeam, req.BowlingTeam, req.Venue)
	if err != nil {
		predictionErrors.WithLabelValues("live_match").Inc()
		return models.LiveMatchPrediction{}, fmt.Errorf("assemble features: %w", err)
	}

	out, err := s.artifacts.ScoreModel.Predict(x)
	if err != nil {
		predictionErrors.WithLabelValues("live_match").Inc()
		return models.LiveMatchPrediction{}, fmt.Errorf("score model: %w", err)
	}
	if len(out) != 2 {
		predictionErrors.WithLabelValues("live_match").Inc()
		return models.LiveMatchPrediction{}, fmt.Errorf("score model produced %d outputs, expected 2", len(out))
	}

	winProb := out[1]
	predictionsTotal.WithLabelValues("live_match").Inc()
	return models.LiveMatchPrediction{
		// Halves round to even, the same convention the models were
		// validated under.
		PredictedScore:      int(math.RoundToEven(out[0])),
		WinProbabilityTeam1: winProb,
		WinProbabilityTeam2: 1 - winProb,
		Certainty:           certaintyBand(winProb),
		InputUsed:           req,
	}, nil
}

// ModelHealth reports which score-prediction artifacts loaded.
func (s *liveMatchService) ModelHealth() map[string]bool {
	a := s.artifacts
	return map[string]bool{
		"score_model_loaded":     a != nil && a.ScoreModel != nil,
		"score_scaler_loaded":    a != nil && a.ScoreScaler != nil,
		"feature_columns_loaded": a != nil && len(a.FeatureColumns) > 0,
	}
}

// certaintyBand maps the win probability to a confidence label. Extreme
// probabilities are decisive, mid-range ones are not. The comparisons are
// strict, so the band boundaries themselves fall through to "low".
func certaintyBand(prob float64) string {
	switch {
	case prob > 0.8 || prob < 0.2:
		return models.CertaintyHigh
	case (prob > 0.6 && prob < 0.8) || (prob > 0.2 && prob < 0.4):
		return models.CertaintyMedium
	default:
		return models.CertaintyLow
	}
}
