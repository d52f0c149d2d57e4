package stats_test

import "github.com/vytor/hoopstats/internal/models"

var (
	lineA1 = models.StatLine{Pts: 20, Reb: 5, Ast: 3, Stl: 1, Blk: 0, FGM: 8, FGA: 15, TPM: 2, TPA: 5}
	lineA2 = models.StatLine{Pts: 10, Reb: 2, Ast: 1, Stl: 0, Blk: 1, FGM: 4, FGA: 10, TPM: 0, TPA: 3}
	lineB1 = models.StatLine{Pts: 6, Reb: 9, Ast: 0, Stl: 2, Blk: 3, FGM: 3, FGA: 4, TPM: 0, TPA: 0}
)

func twoGames() []models.Game {
	return []models.Game{
		{
			ID: 1, Date: models.NewDate(2024, 1, 2), For: 100, Against: 90,
			Players: map[models.Player]models.StatLine{"A": lineA1, "B": lineB1},
		},
		{
			ID: 2, Date: models.NewDate(2024, 1, 5), For: 95, Against: 98,
			Players: map[models.Player]models.StatLine{"A": lineA2},
		},
	}
}

var players = []models.Player{"A", "B"}
