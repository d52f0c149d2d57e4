package worker

import (
	"context"
	"fmt"

	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/services"
)

// WarmChartJob renders one chart so later requests are served from the cache.
type WarmChartJob struct {
	Charts  services.ChartService
	Request services.ChartRequest
}

func (j *WarmChartJob) Name() string {
	return fmt.Sprintf("warm_chart:%s:%s", j.Request.Format, j.Request.Metric)
}

func (j *WarmChartJob) Run(ctx context.Context) error {
	out, err := j.Charts.Render(ctx, j.Request)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("chart warmed: bytes=%d, cached=%t", len(out.Data), out.Cached)
	return nil
}

// WarmCharts queues a job for every chart the service suggests and returns
// how many were accepted.
func WarmCharts(ctx context.Context, pool *Pool, charts services.ChartService) (int, error) {
	reqs, err := charts.WarmRequests(ctx)
	if err != nil {
		return 0, err
	}
	queued := 0
	for _, req := range reqs {
		if pool.Submit(&WarmChartJob{Charts: charts, Request: req}) {
			queued++
		}
	}
	logger.FromContext(ctx).Info("queued %d/%d chart warm jobs", queued, len(reqs))
	return queued, nil
}
