package models

// Certainty bands for the live-match win probability.
const (
	CertaintyHigh   = "high"
	CertaintyMedium = "medium"
	CertaintyLow    = "low"
)

// LiveMatchRequest is the in-innings match state submitted for prediction.
// Target is set for second-innings chases only.
type LiveMatchRequest struct {
	BattingTeam  string `json:"batting_team" validate:"required"`
	BowlingTeam  string `json:"bowling_team" validate:"required"`
	Venue        string `json:"venue" validate:"required"`
	Over         int    `json:"over" validate:"min=0,max=19"`
	Ball         int    `json:"ball" validate:"min=0,max=5"`
	CurrentScore int    `json:"current_score" validate:"min=0"`
	Wickets      int    `json:"wickets" validate:"min=0,max=10"`
	RunsLast5    int    `json:"runs_last_5" validate:"min=0"`
	Target       *int   `json:"target,omitempty"`
}

// LiveMatchPrediction is the model output for a live innings, echoing the
// input it was computed from.
type LiveMatchPrediction struct {
	PredictedScore      int              `json:"predicted_score"`
	WinProbabilityTeam1 float64          `json:"win_probability_team1"`
	WinProbabilityTeam2 float64          `json:"win_probability_team2"`
	Certainty           string           `json:"certainty"` // "high", "medium", "low"
	InputUsed           LiveMatchRequest `json:"input_used"`
}
