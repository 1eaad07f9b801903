package handlers

import (
	"net/http"

	"github.com/inmatchpro/analytics-api/internal/models"
)

// EstimateFantasyPoints estimates fantasy points and a contest rank range
// @Summary Estimate Fantasy Points
// @Tags Fantasy
// @Accept json
// @Produce json
// @Param request body models.FantasyEstimateRequest true "Selected eleven"
// @Success 200 {object} models.FantasyEstimate
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Model Unavailable"
// @Router /api/fantasy/estimate [post]
func (h *Handler) EstimateFantasyPoints(w http.ResponseWriter, r *http.Request) {
	var req models.FantasyEstimateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validate(w, req) {
		return
	}

	est, err := h.fantasy.Estimate(r.Context(), req)
	if err != nil {
		h.logger.Errorw("Failed to estimate fantasy points", "error", err, "players", len(req.Players))
		h.serviceError(w, err, "Failed to estimate fantasy points")
		return
	}

	h.jsonResponse(w, http.StatusOK, est)
}

// FantasyPlayers lists every player name usable in a fantasy selection
// @Summary List Fantasy Players
// @Tags Fantasy
// @Produce json
// @Success 200 {array} string
// @Router /api/fantasy/players [get]
func (h *Handler) FantasyPlayers(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.fantasy.PlayerNames())
}
