package api

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/vytor/hoopstats/internal/cache"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/services"
	"github.com/vytor/hoopstats/internal/worker"
	"golang.org/x/time/rate"
)

type Server struct {
	Seasons   services.SeasonService
	Stats     services.StatsService
	Charts    services.ChartService
	Cache     cache.ChartCache
	Pool      *worker.Pool
	Templates *template.Template
	// Static is served under /static/. Nil disables static files.
	Static fs.FS
	// RenderLimiter throttles chart rendering. Nil means unlimited.
	RenderLimiter *rate.Limiter
	CORSOrigins   []string
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["nav"]; !ok {
		data["nav"] = r.URL.Path
	}

	log := logger.FromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Warn("failed to write json response: %v", err)
	}
}
