package stats

import (
	"fmt"

	"github.com/vytor/hoopstats/internal/models"
)

type Result string

const (
	Win  Result = "W"
	Loss Result = "L"
	Tie  Result = "T"
)

func ResultOf(g models.Game) Result {
	switch d := g.Diff(); {
	case d > 0:
		return Win
	case d < 0:
		return Loss
	default:
		return Tie
	}
}

type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// String renders W-L, adding the tie count only when there are ties.
func (r Record) String() string {
	if r.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

func TeamRecord(games []models.Game) Record {
	var r Record
	for _, g := range games {
		switch ResultOf(g) {
		case Win:
			r.Wins++
		case Loss:
			r.Losses++
		default:
			r.Ties++
		}
	}
	return r
}

// Scoring holds the team's average points scored and allowed.
type Scoring struct {
	AvgFor     float64 `json:"avg_for"`
	AvgAgainst float64 `json:"avg_against"`
}

func TeamScoring(games []models.Game) Scoring {
	if len(games) == 0 {
		return Scoring{}
	}
	var pf, pa int
	for _, g := range games {
		pf += g.For
		pa += g.Against
	}
	n := float64(len(games))
	return Scoring{AvgFor: float64(pf) / n, AvgAgainst: float64(pa) / n}
}

// GameLabel formats a game as "Jan 2 • W 100-90".
func GameLabel(g models.Game) string {
	return fmt.Sprintf("%s • %s %d-%d", g.Date.Format("Jan 2"), ResultOf(g), g.For, g.Against)
}

type GameLogRow struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Label  string `json:"label"`
	Score  string `json:"score"`
	Diff   int    `json:"diff"`
	Result Result `json:"result"`
}

func GameLog(games []models.Game) []GameLogRow {
	rows := make([]GameLogRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, GameLogRow{
			ID:     g.ID,
			Date:   g.Date.String(),
			Label:  GameLabel(g),
			Score:  fmt.Sprintf("%d-%d", g.For, g.Against),
			Diff:   g.Diff(),
			Result: ResultOf(g),
		})
	}
	return rows
}
