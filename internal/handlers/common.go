package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/inmatchpro/analytics-api/internal/logic"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"redis": h.redis != nil && h.redis.Ping(ctx).Err() == nil,
	}
	for name, ok := range h.liveMatch.ModelHealth() {
		checks[name] = ok
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

// decodeJSON reads a size-capped request body into dest.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return false
	}
	return true
}

// validate runs struct validation and writes the 400 on failure.
func (h *Handler) validate(w http.ResponseWriter, v interface{}) bool {
	if err := h.validator.Struct(v); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// serviceError maps service failures to HTTP statuses.
func (h *Handler) serviceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, logic.ErrModelUnavailable):
		h.errorResponse(w, http.StatusServiceUnavailable, "Prediction model not loaded")
	case errors.Is(err, logic.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, message)
	default:
		h.errorResponse(w, http.StatusInternalServerError, message)
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
