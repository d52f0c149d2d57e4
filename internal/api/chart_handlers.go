package api

import (
	"net/http"

	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/render"
)

// chartHandler serves the trend chart image in one format.
func (s *Server) chartHandler(format render.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := s.chartRequest(r, format)
		if err != nil {
			handleError(w, r, err)
			return
		}
		out, err := s.Charts.Render(r.Context(), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		cacheStatus := "miss"
		if out.Cached {
			cacheStatus = "hit"
		}
		w.Header().Set("Content-Type", out.ContentType)
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Chart-Cache", cacheStatus)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out.Data); err != nil {
			logger.FromContext(r.Context()).Warn("failed to write chart: %v", err)
		}
	}
}
