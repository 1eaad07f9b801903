package models

// Declared player roles. Any other value disables both sub-models.
const (
	RoleBatsman      = "Batsman"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All-rounder"
	RoleWicketKeeper = "Wicket-keeper"
)

// PlayerInput is one player in a performance prediction request.
type PlayerInput struct {
	Name string `json:"name" validate:"required"`
	Team string `json:"team"`
	Role string `json:"role"`
}

// PlayerPerformance is the role-conditional prediction for one player.
// PredictedRuns is computed for batting roles only, PredictedWickets for
// bowling roles only; the other stays 0.
type PlayerPerformance struct {
	Name             string `json:"name"`
	Team             string `json:"team"`
	Role             string `json:"role"`
	PredictedRuns    int    `json:"predicted_runs"`
	PredictedWickets int    `json:"predicted_wickets"`
}

// TeamPerformance aggregates the per-player predictions.
type TeamPerformance struct {
	TotalRuns     int    `json:"total_runs"`
	TotalWickets  int    `json:"total_wickets"`
	BestPerformer string `json:"best_performer"`
}

// PerformanceResponse pairs per-player predictions with the team summary.
type PerformanceResponse struct {
	Predictions []PlayerPerformance `json:"predictions"`
	TeamSummary TeamPerformance     `json:"team_summary"`
}

// PlayerInfo is the inferred role for a player name.
type PlayerInfo struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Team string `json:"team"`
}

// BatterStats is the historical record for one batter, with recent-form
// insights derived from the last ten innings.
type BatterStats struct {
	Batter        string  `json:"batter"`
	TotalRuns     int     `json:"total_runs"`
	TotalMatches  int     `json:"total_mat"`
	BallsFaced    int     `json:"balls_faced"`
	StrikeRate    float64 `json:"strike_rate"`
	HighestRun    int     `json:"highest_run"`
	HalfCenturies int     `json:"half_centuries"`
	Centuries     int     `json:"centuries"`
	RecentScores  []int   `json:"recent_scores"`
	AverageRecent float64 `json:"average_recent"`
	TotalRecent   int     `json:"total_recent"`
	Trend         string  `json:"trend"` // "improving", "declining", "stable", "unknown"
}
