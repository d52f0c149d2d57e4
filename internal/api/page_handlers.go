package api

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/hoopstats/internal/errors"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/models"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering overview page")
	q := r.URL.Query()

	leaderMetric, err := metricParam(q.Get("leader"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	trendMetric, err := metricParam(q.Get("metric"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	gameID, err := idParam("game", q.Get("game"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	ov, err := s.Stats.Overview(r.Context(), leaderMetric, gameID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	selected := playersParam(q, ov.Players)

	s.render(w, r, "pages/overview.html", pageData{
		"overview":     ov,
		"metrics":      models.Metrics,
		"trend_metric": trendMetric,
		"selected":     selected,
		"chart_src":    template.URL("/charts/trend.svg?" + chartQuery(trendMetric, selected)),
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := idParam("game", r.URL.Query().Get("game"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("rendering games page: game=%d", id)

	games, err := s.Stats.GameLog(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Stats.Game(r.Context(), id)
	if err != nil {
		// An empty season has no default game to show.
		if !(id == 0 && errors.IsNotFound(err)) {
			handleError(w, r, err)
			return
		}
		view = nil
	}

	s.render(w, r, "pages/games.html", pageData{
		"games": games,
		"view":  view,
	})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	name := playerParam(r)
	log.Debug("rendering player page: player=%s", name)

	pl, err := s.Stats.PlayerLog(r.Context(), name)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/player.html", pageData{
		"log": pl,
	})
}

// playerParam reads the {name} URL parameter. The router matches on the raw
// path when the request has one, leaving escapes such as %2F in place.
func playerParam(r *http.Request) models.Player {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return models.Player(raw)
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return models.Player(name)
	}
	return models.Player(raw)
}
