package logic

import (
	"go.uber.org/zap"

	"github.com/inmatchpro/analytics-api/internal/models"
)

// recentWindow is how many recent innings the form insights need before a
// trend can be called.
const recentWindow = 10

type playerStatsService struct {
	store  ReferenceStore
	logger *zap.SugaredLogger
}

// NewPlayerStatsService builds the historical batter stats service.
func NewPlayerStatsService(store ReferenceStore, logger *zap.SugaredLogger) PlayerStatsService {
	return &playerStatsService{store: store, logger: logger}
}

// BatterNames lists the batters in the historical stats table.
func (s *playerStatsService) BatterNames() []string {
	return s.store.BatterNames()
}

// BatterStats returns a batter's historical record with the recent-form
// insights attached.
func (s *playerStatsService) BatterStats(name string) (models.BatterStats, error) {
	rec, ok := s.store.BatterRecord(name)
	if !ok {
		return models.BatterStats{}, ErrNotFound
	}

	stats := models.BatterStats{
		Batter:        rec.Name,
		TotalRuns:     rec.TotalRuns,
		TotalMatches:  rec.TotalMatches,
		BallsFaced:    rec.BallsFaced,
		StrikeRate:    round2(rec.StrikeRate),
		HighestRun:    rec.HighestRun,
		HalfCenturies: rec.HalfCenturies,
		Centuries:     rec.Centuries,
		RecentScores:  rec.RecentScores,
		Trend:         recentTrend(rec.RecentScores),
	}
	for _, score := range rec.RecentScores {
		stats.TotalRecent += score
	}
	if len(rec.RecentScores) > 0 {
		stats.AverageRecent = float64(stats.TotalRecent) / float64(len(rec.RecentScores))
	}
	return stats, nil
}

// recentTrend compares the older and newer halves of the recent window.
// Scores arrive oldest first, so a larger second half means form is
// improving.
func recentTrend(scores []int) string {
	if len(scores) < recentWindow {
		return "unknown"
	}
	var first, last int
	for _, v := range scores[:recentWindow/2] {
		first += v
	}
	for _, v := range scores[recentWindow/2 : recentWindow] {
		last += v
	}
	switch {
	case last > first:
		return "improving"
	case last < first:
		return "declining"
	default:
		return "stable"
	}
}
