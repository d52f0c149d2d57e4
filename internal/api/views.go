package api

import (
	"fmt"
	"math"

	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/services"
	"github.com/vytor/hoopstats/internal/stats"
	"github.com/vytor/hoopstats/internal/store"
)

// JSON views. Undefined numbers are encoded as null.

func num(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type shootingView struct {
	FGPct *float64 `json:"fgp"`
	TPPct *float64 `json:"tpp"`
}

func shooting(s models.StatLine) shootingView {
	return shootingView{FGPct: num(s.FGPct()), TPPct: num(s.TPPct())}
}

type seasonView struct {
	Source      string             `json:"source"`
	Fingerprint string             `json:"fingerprint"`
	Players     []models.Player    `json:"players"`
	Record      stats.Record       `json:"record"`
	RecordLabel string             `json:"record_label"`
	Scoring     stats.Scoring      `json:"scoring"`
	Games       []stats.GameLogRow `json:"games"`
}

func newSeasonView(source string, st *store.Store) seasonView {
	games := st.Games()
	record := stats.TeamRecord(games)
	return seasonView{
		Source:      source,
		Fingerprint: st.Fingerprint(),
		Players:     st.Players(),
		Record:      record,
		RecordLabel: record.String(),
		Scoring:     stats.TeamScoring(games),
		Games:       stats.GameLog(games),
	}
}

type totalsView struct {
	Player models.Player `json:"player"`
	models.Totals
	shootingView
	PerGame map[models.Metric]*float64 `json:"per_game"`
}

var perGameMetrics = []models.Metric{
	models.MetricPoints,
	models.MetricRebounds,
	models.MetricAssists,
	models.MetricSteals,
	models.MetricBlocks,
}

func newTotalsView(p models.Player, t models.Totals) totalsView {
	per := make(map[models.Metric]*float64, len(perGameMetrics))
	for _, m := range perGameMetrics {
		per[m] = num(t.PerGame(m))
	}
	return totalsView{Player: p, Totals: t, shootingView: shooting(t.StatLine), PerGame: per}
}

func newTotalsViews(table stats.TotalsTable) []totalsView {
	out := make([]totalsView, 0, table.Len())
	for _, p := range table.Players {
		t, _ := table.Get(p)
		out = append(out, newTotalsView(p, t))
	}
	return out
}

type leaderView struct {
	Metric  models.Metric  `json:"metric"`
	Player  *models.Player `json:"player"`
	Value   *float64       `json:"value"`
	Display string         `json:"display"`
}

func newLeaderView(m models.Metric, l stats.Leader, ok bool) leaderView {
	v := leaderView{Metric: m, Display: stats.Missing}
	if !ok {
		return v
	}
	p := l.Player
	v.Player = &p
	v.Value = num(l.Value)
	v.Display = stats.FormatMetric(m, l.Value)
	return v
}

type boxRowView struct {
	Player models.Player    `json:"player"`
	Played bool             `json:"played"`
	Line   *models.StatLine `json:"line"`
	shootingView
}

type gameView struct {
	ID      int64        `json:"id"`
	Date    models.Date  `json:"date"`
	Label   string       `json:"label"`
	Result  stats.Result `json:"result"`
	For     int          `json:"for"`
	Against int          `json:"against"`
	Rows    []boxRowView `json:"rows"`
	Team    struct {
		models.StatLine
		shootingView
	} `json:"team"`
}

func newGameView(v *services.GameView) gameView {
	out := gameView{
		ID:      v.Game.ID,
		Date:    v.Game.Date,
		Label:   v.Label,
		Result:  v.Result,
		For:     v.Game.For,
		Against: v.Game.Against,
		Rows:    make([]boxRowView, 0, len(v.Rows)),
	}
	for _, row := range v.Rows {
		rv := boxRowView{Player: row.Player, Played: row.Played}
		if row.Played {
			line := row.Line
			rv.Line = &line
			rv.shootingView = shooting(line)
		}
		out.Rows = append(out.Rows, rv)
	}
	out.Team.StatLine = v.Team
	out.Team.shootingView = shooting(v.Team)
	return out
}

type playerGameView struct {
	ID     int64           `json:"id"`
	Date   models.Date     `json:"date"`
	Score  string          `json:"score"`
	Result stats.Result    `json:"result"`
	Line   models.StatLine `json:"line"`
	shootingView
}

type playerView struct {
	totalsView
	Games []playerGameView `json:"games"`
}

func newPlayerView(pl *stats.PlayerLog) playerView {
	out := playerView{
		totalsView: newTotalsView(pl.Player, pl.Totals),
		Games:      make([]playerGameView, 0, len(pl.Games)),
	}
	for _, pg := range pl.Games {
		out.Games = append(out.Games, playerGameView{
			ID:           pg.Game.ID,
			Date:         pg.Game.Date,
			Score:        fmt.Sprintf("%d-%d", pg.Game.For, pg.Game.Against),
			Result:       stats.ResultOf(pg.Game),
			Line:         pg.Line,
			shootingView: shooting(pg.Line),
		})
	}
	return out
}
