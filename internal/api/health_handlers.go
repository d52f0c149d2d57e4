package api

import (
	"net/http"

	"github.com/vytor/hoopstats/internal/logger"
)

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns 200 once a season is loaded and the chart cache
// answers, 503 otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if _, err := s.Seasons.Current(ctx); err != nil {
		log.Warn("readiness check failed - season: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Season not loaded"))
		return
	}

	if s.Cache != nil {
		if err := s.Cache.Ping(ctx); err != nil {
			log.Warn("readiness check failed - chart cache: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Chart cache unavailable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}

// handleWorkerStats reports the cache warming pool counters.
func (s *Server) handleWorkerStats(w http.ResponseWriter, r *http.Request) {
	if s.Pool == nil {
		writeJSON(w, r, http.StatusOK, map[string]any{"enabled": false})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"enabled": true,
		"stats":   s.Pool.Stats(),
	})
}
