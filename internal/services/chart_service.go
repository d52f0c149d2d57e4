package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/vytor/hoopstats/internal/cache"
	"github.com/vytor/hoopstats/internal/chart"
	"github.com/vytor/hoopstats/internal/errors"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/render"
	"github.com/vytor/hoopstats/internal/stats"
)

// ChartRequest selects a trend chart. Players is the exact selection in
// display order; an empty selection draws the placeholder.
type ChartRequest struct {
	Metric   models.Metric
	Players  []models.Player
	CSSWidth float64
	DPR      float64
	Format   render.Format
}

// Chart is an encoded chart image.
type Chart struct {
	Data        []byte
	ContentType string
	Size        chart.CanvasSize
	Cached      bool
}

type ChartService interface {
	Scene(ctx context.Context, req ChartRequest) (chart.Scene, chart.CanvasSize, error)
	Render(ctx context.Context, req ChartRequest) (*Chart, error)
	// WarmRequests lists the charts worth rendering ahead of the first
	// request: every metric for the full roster at the default size.
	WarmRequests(ctx context.Context) ([]ChartRequest, error)
}

type chartService struct {
	seasons SeasonService
	cache   cache.ChartCache
}

func NewChartService(seasons SeasonService, c cache.ChartCache) ChartService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &chartService{seasons: seasons, cache: c}
}

func (s *chartService) Scene(ctx context.Context, req ChartRequest) (chart.Scene, chart.CanvasSize, error) {
	st, err := s.seasons.Current(ctx)
	if err != nil {
		return chart.Scene{}, chart.CanvasSize{}, err
	}
	if err := checkPlayers(st, req.Players); err != nil {
		return chart.Scene{}, chart.CanvasSize{}, err
	}

	size := chart.SizeFor(req.CSSWidth, req.DPR)
	data := stats.BuildSeries(req.Players, st.Games(), req.Metric)
	scene := chart.Layout(req.Players, req.Metric, data, size.Width, size.Height)

	logger.FromContext(ctx).Debug("chart laid out: metric=%s, players=%d, kind=%s, size=%dx%d",
		req.Metric, len(req.Players), scene.Kind, size.Width, size.Height)
	return scene, size, nil
}

func (s *chartService) Render(ctx context.Context, req ChartRequest) (*Chart, error) {
	log := logger.FromContext(ctx)

	st, err := s.seasons.Current(ctx)
	if err != nil {
		return nil, err
	}
	size := chart.SizeFor(req.CSSWidth, req.DPR)
	key := cache.Key(st.Fingerprint(),
		string(req.Format),
		string(req.Metric),
		joinPlayers(req.Players),
		fmt.Sprintf("%dx%d", size.Width, size.Height),
	)

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		log.Warn("chart cache unavailable, rendering: %v", err)
	} else if ok {
		return &Chart{Data: data, ContentType: req.Format.ContentType(), Size: size, Cached: true}, nil
	}

	scene, size, err := s.Scene(ctx, req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.Write(&buf, scene, req.Format); err != nil {
		log.Error("failed to render chart: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if err := s.cache.Set(ctx, key, buf.Bytes()); err != nil {
		log.Warn("failed to cache chart: %v", err)
	}
	log.Debug("chart rendered: format=%s, bytes=%d", req.Format, buf.Len())
	return &Chart{Data: buf.Bytes(), ContentType: req.Format.ContentType(), Size: size}, nil
}

func (s *chartService) WarmRequests(ctx context.Context) ([]ChartRequest, error) {
	st, err := s.seasons.Current(ctx)
	if err != nil {
		return nil, err
	}
	reqs := make([]ChartRequest, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		reqs = append(reqs, ChartRequest{
			Metric:   m,
			Players:  st.Players(),
			CSSWidth: chart.AspectWidth,
			DPR:      1,
			Format:   render.FormatSVG,
		})
	}
	return reqs, nil
}

func joinPlayers(players []models.Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = string(p)
	}
	return strings.Join(names, "\x1f")
}
