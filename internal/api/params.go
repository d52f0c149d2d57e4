package api

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vytor/hoopstats/internal/errors"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/render"
	"github.com/vytor/hoopstats/internal/services"
)

const defaultMetric = models.MetricPoints

// metricParam parses a metric key, defaulting to points when empty.
func metricParam(raw string) (models.Metric, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultMetric, nil
	}
	m, ok := models.ParseMetric(raw)
	if !ok {
		return "", errors.NewBadRequestError("unknown metric: " + raw)
	}
	return m, nil
}

// playersParam reads repeated ?players= values. Without the key every player
// is selected; with only empty values the selection is empty.
func playersParam(q url.Values, all []models.Player) []models.Player {
	raw, present := q["players"]
	if !present {
		return all
	}
	out := make([]models.Player, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, models.Player(v))
		}
	}
	return out
}

// idParam parses a positive game id. Empty means 0, the default game.
func idParam(name, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid " + name + ": " + raw)
	}
	return id, nil
}

// floatParam parses an optional positive number. Empty means 0, which the
// canvas sizing treats as its default.
func floatParam(q url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errors.NewBadRequestError("invalid " + name + ": " + raw)
	}
	return v, nil
}

func (s *Server) chartRequest(r *http.Request, format render.Format) (services.ChartRequest, error) {
	q := r.URL.Query()

	st, err := s.Seasons.Current(r.Context())
	if err != nil {
		return services.ChartRequest{}, err
	}
	metric, err := metricParam(q.Get("metric"))
	if err != nil {
		return services.ChartRequest{}, err
	}
	width, err := floatParam(q, "width")
	if err != nil {
		return services.ChartRequest{}, err
	}
	dpr, err := floatParam(q, "dpr")
	if err != nil {
		return services.ChartRequest{}, err
	}

	return services.ChartRequest{
		Metric:   metric,
		Players:  playersParam(q, st.Players()),
		CSSWidth: width,
		DPR:      dpr,
		Format:   format,
	}, nil
}

// chartQuery encodes a selection the way playersParam and metricParam read it.
func chartQuery(metric models.Metric, players []models.Player) string {
	q := url.Values{}
	q.Set("metric", string(metric))
	if len(players) == 0 {
		q.Set("players", "")
	}
	for _, p := range players {
		q.Add("players", string(p))
	}
	return q.Encode()
}
