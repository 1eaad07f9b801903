package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inmatchpro/analytics-api/internal/models"
)

// PredictPlayerPerformance predicts runs and wickets for a squad
// @Summary Predict Player Performance
// @Tags Player Performance
// @Accept json
// @Produce json
// @Param request body []models.PlayerInput true "Squad to score"
// @Success 200 {object} models.PerformanceResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Model Unavailable"
// @Router /api/player-performance/predict_player_performance [post]
func (h *Handler) PredictPlayerPerformance(w http.ResponseWriter, r *http.Request) {
	var players []models.PlayerInput
	if !h.decodeJSON(w, r, &players) {
		return
	}
	for _, p := range players {
		if !h.validate(w, p) {
			return
		}
	}

	resp, err := h.performance.PredictTeam(r.Context(), players)
	if err != nil {
		h.logger.Errorw("Failed to predict player performance", "error", err, "players", len(players))
		h.serviceError(w, err, "Failed to predict player performance")
		return
	}

	h.jsonResponse(w, http.StatusOK, resp)
}

// AllPlayers lists every player with batting or bowling history
// @Summary List Players
// @Tags Player Performance
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/player-performance/all_players [get]
func (h *Handler) AllPlayers(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string][]string{
		"players": h.performance.AllPlayers(),
	})
}

// PlayerInfo infers a player's role from their history
// @Summary Get Player Info
// @Tags Player Performance
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} models.PlayerInfo
// @Router /api/player-performance/player_info/{name} [get]
func (h *Handler) PlayerInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Player name is required")
		return
	}

	h.jsonResponse(w, http.StatusOK, h.performance.PlayerInfo(name))
}
