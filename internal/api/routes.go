package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/vytor/hoopstats/internal/render"
)

const chartTimeout = 10 * time.Second

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/", s.handleOverview)
	r.Get("/games", s.handleGames)
	r.Get("/players/{name}", s.handlePlayer)

	r.Group(func(r chi.Router) {
		r.Use(rateLimitMiddleware(s.RenderLimiter))
		r.Use(timeoutMiddleware(chartTimeout))
		r.Get("/charts/trend.svg", s.chartHandler(render.FormatSVG))
		r.Get("/charts/trend.png", s.chartHandler(render.FormatPNG))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins(),
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
		r.Get("/season", s.handleAPISeason)
		r.Get("/totals", s.handleAPITotals)
		r.Get("/leader", s.handleAPILeader)
		r.Get("/games/{id}", s.handleAPIGame)
		r.Get("/players/{name}", s.handleAPIPlayer)
		r.Get("/series", s.handleAPISeries)
		r.With(rateLimitMiddleware(s.RenderLimiter)).Get("/scene", s.handleAPIScene)
		r.Get("/workers", s.handleWorkerStats)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	if s.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.Static))))
	}
	return r
}

func (s *Server) corsOrigins() []string {
	if len(s.CORSOrigins) == 0 {
		return []string{"*"}
	}
	return s.CORSOrigins
}
