package handlers

import (
	"net/http"

	"github.com/inmatchpro/analytics-api/internal/models"
)

// PredictLiveMatch predicts the final innings score and win probability
// @Summary Predict Live Match
// @Tags Live Match
// @Accept json
// @Produce json
// @Param request body models.LiveMatchRequest true "In-innings match state"
// @Success 200 {object} models.LiveMatchPrediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Model Unavailable"
// @Router /api/live-match/predict [post]
func (h *Handler) PredictLiveMatch(w http.ResponseWriter, r *http.Request) {
	var req models.LiveMatchRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validate(w, req) {
		return
	}

	pred, err := h.liveMatch.PredictInnings(r.Context(), req)
	if err != nil {
		h.logger.Errorw("Failed to predict live match", "error", err,
			"batting_team", req.BattingTeam, "bowling_team", req.BowlingTeam)
		h.serviceError(w, err, "Failed to predict live match")
		return
	}

	h.jsonResponse(w, http.StatusOK, pred)
}

// LiveMatchModelHealth reports which score-prediction artifacts are loaded
// @Summary Live Match Model Health
// @Tags Live Match
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/live-match/model-health [get]
func (h *Handler) LiveMatchModelHealth(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.liveMatch.ModelHealth())
}
