package logic

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/ml"
	"github.com/inmatchpro/analytics-api/internal/models"
)

// Multipliers applied to a player's base points. The bonus is the extra
// over base, reported separately in the response.
const (
	captainMultiplier     = 1.5
	viceCaptainMultiplier = 1.25
)

// participantPool is the assumed contest size the rank range is projected
// onto.
const participantPool = 100000

// rankBands maps a team total to the percentile range the team is expected
// to finish in. Evaluated top-down, first match wins.
var rankBands = []struct {
	minPoints int
	low, high float64
}{
	{300, 0.005, 0.015},
	{275, 0.02, 0.06},
	{250, 0.08, 0.18},
	{200, 0.25, 0.45},
	{150, 0.55, 0.75},
	{math.MinInt, 0.80, 0.95},
}

type fantasyService struct {
	artifacts *ml.Artifacts
	store     ReferenceStore
	logger    *zap.SugaredLogger
}

// NewFantasyService builds the fantasy point estimator.
func NewFantasyService(artifacts *ml.Artifacts, store ReferenceStore, logger *zap.SugaredLogger) FantasyService {
	return &fantasyService{artifacts: artifacts, store: store, logger: logger}
}

// Estimate scores each selected player with the fantasy model, applies the
// captain and vice-captain multipliers, and projects the team total onto a
// contest rank range. Players without a historical summary contribute 0.
func (s *fantasyService) Estimate(ctx context.Context, req models.FantasyEstimateRequest) (models.FantasyEstimate, error) {
	start := time.Now()
	defer func() {
		predictionDuration.WithLabelValues("fantasy").Observe(time.Since(start).Seconds())
	}()

	if s.artifacts == nil || s.artifacts.FantasyModel == nil {
		predictionErrors.WithLabelValues("fantasy").Inc()
		return models.FantasyEstimate{}, ErrModelUnavailable
	}

	est := models.FantasyEstimate{
		IndividualPreds: make([]models.FantasyPlayerPoints, 0, len(req.Players)),
	}
	for _, sel := range req.Players {
		points := 0
		if stats, ok := s.store.FantasyStats(sel.Name); ok {
			base, err := s.artifacts.FantasyModel.PredictOne(
				stats.BatsmanRuns, stats.WicketsTaken, stats.Caught, stats.Stumped, stats.RunOut)
			if err != nil {
				predictionErrors.WithLabelValues("fantasy").Inc()
				return models.FantasyEstimate{}, err
			}
			// Halves round to even throughout the point accounting.
			switch {
			case sel.Captain:
				points = int(math.RoundToEven(base * captainMultiplier))
				est.CaptainBonus += int(math.RoundToEven(base * (captainMultiplier - 1)))
			case sel.ViceCaptain:
				points = int(math.RoundToEven(base * viceCaptainMultiplier))
				est.ViceCaptainBonus += int(math.RoundToEven(base * (viceCaptainMultiplier - 1)))
			default:
				points = int(math.RoundToEven(base))
			}
		}

		tag := ""
		if sel.Captain {
			tag = "C"
		} else if sel.ViceCaptain {
			tag = "VC"
		}
		est.IndividualPreds = append(est.IndividualPreds, models.FantasyPlayerPoints{
			Name: sel.Name, Points: points, Tag: tag,
		})
		est.TotalPoints += points
	}

	for _, band := range rankBands {
		if est.TotalPoints >= band.minPoints {
			est.RankLow = int(participantPool * band.low)
			est.RankHigh = int(participantPool * band.high)
			break
		}
	}

	predictionsTotal.WithLabelValues("fantasy").Inc()
	return est, nil
}

// PlayerNames lists every player known to the stats and cluster tables.
func (s *fantasyService) PlayerNames() []string {
	return s.store.FantasyNames()
}
