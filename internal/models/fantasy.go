package models

// FantasySelection is one player in a submitted fantasy eleven. At most one
// captain and one vice-captain are expected per list; the aggregator trusts
// the caller on that.
type FantasySelection struct {
	Name        string `json:"name" validate:"required"`
	Captain     bool   `json:"captain"`
	ViceCaptain bool   `json:"vice_captain"`
}

// FantasyEstimateRequest is the fantasy estimation payload.
type FantasyEstimateRequest struct {
	Players []FantasySelection `json:"players" validate:"required,dive"`
}

// FantasyPlayerPoints is the per-player estimate, multiplier applied.
type FantasyPlayerPoints struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Tag    string `json:"tag"` // "C", "VC" or ""
}

// FantasyEstimate is the team-level estimate. TotalPoints already includes
// the captain and vice-captain multipliers; CaptainBonus and
// ViceCaptainBonus report the extra points separately and are not added
// again.
type FantasyEstimate struct {
	TotalPoints      int                   `json:"total_points"`
	CaptainBonus     int                   `json:"captain_bonus"`
	ViceCaptainBonus int                   `json:"vice_captain_bonus"`
	RankLow          int                   `json:"rank_low"`
	RankHigh         int                   `json:"rank_high"`
	IndividualPreds  []FantasyPlayerPoints `json:"individual_preds"`
}
