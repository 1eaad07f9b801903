package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every endpoint onto a chi router with recovery, request
// ID tagging and CORS applied to all routes.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/live-match", func(r chi.Router) {
			r.Post("/predict", h.PredictLiveMatch)
			r.Get("/model-health", h.LiveMatchModelHealth)
		})

		r.Route("/player-performance", func(r chi.Router) {
			r.Post("/predict_player_performance", h.PredictPlayerPerformance)
			r.Get("/all_players", h.AllPlayers)
			r.Get("/player_info/{name}", h.PlayerInfo)
		})

		r.Route("/fantasy", func(r chi.Router) {
			r.Post("/estimate", h.EstimateFantasyPoints)
			r.Get("/players", h.FantasyPlayers)
		})

		r.Route("/clustering", func(r chi.Router) {
			r.Get("/batters", h.BatterClusters)
			r.Get("/batters/{player}", h.BatterCluster)
			r.Get("/bowlers", h.BowlerClusters)
			r.Get("/bowlers/{player}", h.BowlerCluster)
		})

		r.Route("/player-stats", func(r chi.Router) {
			r.Get("/batters", h.BatterNames)
			r.Get("/{batter}", h.GetBatterStats)
		})
	})

	return r
}

// requestID tags each request with an ID for log correlation, honoring one
// supplied by the caller.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		h.logger.Debugw("Request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
