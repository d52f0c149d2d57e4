package stats

import "github.com/vytor/hoopstats/internal/models"

// BuildSeries projects one metric across the chronological game list for each
// player. Missing games produce no point. Ratio metrics are scaled to 0-100 and
// a zero-attempt game keeps its point with an undefined value, so the game id
// stays traceable; plotting filters it out.
func BuildSeries(players []models.Player, games []models.Game, m models.Metric) models.SeriesSet {
	set := models.SeriesSet{
		Metric:    m,
		Series:    make(map[models.Player][]models.Point, len(players)),
		GameCount: len(games),
	}
	for _, p := range players {
		set.Series[p] = []models.Point{}
	}

	for i, g := range games {
		for _, p := range players {
			line, ok := g.Line(p)
			if !ok {
				continue
			}
			y := line.Value(m)
			if m.IsRatio() {
				y *= 100
			}
			set.Series[p] = append(set.Series[p], models.Point{X: i + 1, Y: y, GameID: g.ID})
		}
	}
	return set
}
