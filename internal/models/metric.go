package models

import "strings"

// Metric selects one scalar stat for leaderboards and trend series.
type Metric string

const (
	MetricPoints        Metric = "pts"
	MetricRebounds      Metric = "reb"
	MetricAssists       Metric = "ast"
	MetricSteals        Metric = "stl"
	MetricBlocks        Metric = "blk"
	MetricFieldGoalPct  Metric = "fgp"
	MetricThreePointPct Metric = "tpp"
)

// Metrics lists every supported metric in display order.
var Metrics = []Metric{
	MetricPoints,
	MetricRebounds,
	MetricAssists,
	MetricSteals,
	MetricBlocks,
	MetricFieldGoalPct,
	MetricThreePointPct,
}

var metricLabels = map[Metric]string{
	MetricPoints:        "Points",
	MetricRebounds:      "Rebounds",
	MetricAssists:       "Assists",
	MetricSteals:        "Steals",
	MetricBlocks:        "Blocks",
	MetricFieldGoalPct:  "FG%",
	MetricThreePointPct: "3P%",
}

// ParseMetric accepts a metric key in any case.
func ParseMetric(s string) (Metric, bool) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	_, ok := metricLabels[m]
	return m, ok
}

// IsRatio reports whether the metric is a shooting percentage.
func (m Metric) IsRatio() bool {
	return m == MetricFieldGoalPct || m == MetricThreePointPct
}

func (m Metric) Label() string {
	if l, ok := metricLabels[m]; ok {
		return l
	}
	return string(m)
}
