package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// BatterClusters lists the batter playing-style clusters
// @Summary List Batter Clusters
// @Tags Clustering
// @Produce json
// @Success 200 {object} map[string][]models.BatterCluster
// @Router /api/clustering/batters [get]
func (h *Handler) BatterClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.clustering.BatterClusters(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to get batter clusters", "error", err)
		h.serviceError(w, err, "Failed to get batter clusters")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"clusters": clusters})
}

// BatterCluster returns a single batter's cluster assignment
// @Summary Get Batter Cluster
// @Tags Clustering
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {object} models.BatterClusterDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/clustering/batters/{player} [get]
func (h *Handler) BatterCluster(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	if player == "" {
		h.errorResponse(w, http.StatusBadRequest, "Player name is required")
		return
	}

	detail, err := h.clustering.BatterCluster(player)
	if err != nil {
		h.serviceError(w, err, "Batter not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, detail)
}

// BowlerClusters lists the bowler playing-style clusters
// @Summary List Bowler Clusters
// @Tags Clustering
// @Produce json
// @Success 200 {object} map[string][]models.BowlerCluster
// @Router /api/clustering/bowlers [get]
func (h *Handler) BowlerClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.clustering.BowlerClusters(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to get bowler clusters", "error", err)
		h.serviceError(w, err, "Failed to get bowler clusters")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"clusters": clusters})
}

// BowlerCluster returns a single bowler's cluster assignment
// @Summary Get Bowler Cluster
// @Tags Clustering
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {object} models.BowlerClusterDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/clustering/bowlers/{player} [get]
func (h *Handler) BowlerCluster(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	if player == "" {
		h.errorResponse(w, http.StatusBadRequest, "Player name is required")
		return
	}

	detail, err := h.clustering.BowlerCluster(player)
	if err != nil {
		h.serviceError(w, err, "Bowler not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, detail)
}
