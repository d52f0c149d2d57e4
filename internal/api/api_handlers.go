package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/render"
)

func (s *Server) handleAPISeason(w http.ResponseWriter, r *http.Request) {
	st, err := s.Seasons.Current(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newSeasonView(s.Seasons.Source(), st))
}

func (s *Server) handleAPITotals(w http.ResponseWriter, r *http.Request) {
	table, err := s.Stats.Totals(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"totals": newTotalsViews(table)})
}

func (s *Server) handleAPILeader(w http.ResponseWriter, r *http.Request) {
	metric, err := metricParam(r.URL.Query().Get("metric"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	leader, ok, err := s.Stats.Leader(r.Context(), metric)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newLeaderView(metric, leader, ok))
}

// handleAPIGame serves one box score. The id "latest" selects the most
// recent game.
func (s *Server) handleAPIGame(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	if strings.EqualFold(raw, "latest") {
		raw = ""
	}
	id, err := idParam("game id", raw)
	if err != nil {
		handleError(w, r, err)
		return
	}
	view, err := s.Stats.Game(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newGameView(view))
}

func (s *Server) handleAPIPlayer(w http.ResponseWriter, r *http.Request) {
	pl, err := s.Stats.PlayerLog(r.Context(), playerParam(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newPlayerView(pl))
}

func (s *Server) handleAPISeries(w http.ResponseWriter, r *http.Request) {
	req, err := s.chartRequest(r, render.FormatSVG)
	if err != nil {
		handleError(w, r, err)
		return
	}
	set, err := s.Stats.Series(r.Context(), req.Metric, req.Players)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, set)
}

// handleAPIScene returns the laid out chart so clients can paint it with
// their own surface.
func (s *Server) handleAPIScene(w http.ResponseWriter, r *http.Request) {
	req, err := s.chartRequest(r, render.FormatSVG)
	if err != nil {
		handleError(w, r, err)
		return
	}
	scene, size, err := s.Charts.Scene(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Debug("scene served: kind=%s", scene.Kind)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"size":  size,
		"scene": scene,
	})
}
