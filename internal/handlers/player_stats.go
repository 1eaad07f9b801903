package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// BatterNames lists the batters with historical stats
// @Summary List Batters
// @Tags Player Stats
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/player-stats/batters [get]
func (h *Handler) BatterNames(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string][]string{
		"batters": h.playerStats.BatterNames(),
	})
}

// GetBatterStats returns a batter's historical record with form insights
// @Summary Get Batter Stats
// @Tags Player Stats
// @Produce json
// @Param batter path string true "Batter name"
// @Success 200 {object} models.BatterStats
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/player-stats/{batter} [get]
func (h *Handler) GetBatterStats(w http.ResponseWriter, r *http.Request) {
	batter := chi.URLParam(r, "batter")
	if batter == "" {
		h.errorResponse(w, http.StatusBadRequest, "Batter name is required")
		return
	}

	stats, err := h.playerStats.BatterStats(batter)
	if err != nil {
		h.serviceError(w, err, "Batter not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, stats)
}
