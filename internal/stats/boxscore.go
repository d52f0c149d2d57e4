package stats

import (
	"sort"

	"github.com/vytor/hoopstats/internal/models"
)

// BoxRow is one player's line in a single game. Played is false for players
// without a stat line, whose Line is all zeros and must be shown as absent.
type BoxRow struct {
	Player models.Player   `json:"player"`
	Played bool            `json:"played"`
	Line   models.StatLine `json:"line"`
}

// BoxScore lists every player for the game, highest scorers first. Rows with
// equal points, including players who did not play, keep player-list order.
func BoxScore(players []models.Player, g models.Game) []BoxRow {
	rows := make([]BoxRow, 0, len(players))
	for _, p := range players {
		line, ok := g.Line(p)
		rows = append(rows, BoxRow{Player: p, Played: ok, Line: line})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Line.Pts > rows[j].Line.Pts
	})
	return rows
}

// TeamLine sums the lines of the tracked players who appeared in the game.
func TeamLine(players []models.Player, g models.Game) models.StatLine {
	var sum models.StatLine
	for _, p := range players {
		if line, ok := g.Line(p); ok {
			sum = sum.Add(line)
		}
	}
	return sum
}

type PlayerGame struct {
	Game models.Game     `json:"game"`
	Line models.StatLine `json:"line"`
}

// PlayerLog is one player's season: the games they appeared in and totals.
type PlayerLog struct {
	Player models.Player `json:"player"`
	Games  []PlayerGame  `json:"games"`
	Totals models.Totals `json:"totals"`
}

func PlayerLogOf(p models.Player, games []models.Game) PlayerLog {
	out := PlayerLog{Player: p, Games: []PlayerGame{}}
	for _, g := range games {
		line, ok := g.Line(p)
		if !ok {
			continue
		}
		out.Games = append(out.Games, PlayerGame{Game: g, Line: line})
		out.Totals.G++
		out.Totals.StatLine = out.Totals.StatLine.Add(line)
	}
	return out
}
