package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/db"
	"github.com/vytor/hoopstats/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// A single connection is kept so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB))
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// SampleSeason is two players over three games. B sits out game 2, A never
// attempts a three in game 3 and nobody plays game 4.
func SampleSeason() models.Season {
	return models.Season{
		Players: []models.Player{"A", "B"},
		Games: []models.Game{
			{
				ID: 1, Date: models.NewDate(2024, 1, 2), For: 100, Against: 90,
				Players: map[models.Player]models.StatLine{
					"A": {Pts: 20, Reb: 5, Ast: 3, Stl: 1, Blk: 0, FGM: 8, FGA: 15, TPM: 2, TPA: 5},
					"B": {Pts: 6, Reb: 9, Ast: 0, Stl: 2, Blk: 3, FGM: 3, FGA: 4, TPM: 0, TPA: 0},
				},
			},
			{
				ID: 2, Date: models.NewDate(2024, 1, 5), For: 95, Against: 98,
				Players: map[models.Player]models.StatLine{
					"A": {Pts: 10, Reb: 2, Ast: 1, Stl: 0, Blk: 1, FGM: 4, FGA: 10, TPM: 0, TPA: 3},
				},
			},
			{
				ID: 3, Date: models.NewDate(2024, 1, 9), For: 88, Against: 88,
				Players: map[models.Player]models.StatLine{
					"A": {Pts: 12, Reb: 4, Ast: 6, Stl: 1, Blk: 0, FGM: 5, FGA: 9, TPM: 0, TPA: 0},
					"B": {Pts: 14, Reb: 7, Ast: 2, Stl: 0, Blk: 1, FGM: 6, FGA: 11, TPM: 2, TPA: 4},
				},
			},
			{
				ID: 4, Date: models.NewDate(2024, 1, 12), For: 70, Against: 81,
				Players: map[models.Player]models.StatLine{},
			},
		},
	}
}

// EmptySeason has a roster but no games yet.
func EmptySeason() models.Season {
	return models.Season{
		Players: []models.Player{"A"},
		Games:   []models.Game{},
	}
}

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// SeedSeason writes a season into a migrated database.
func SeedSeason(t *testing.T, sqlDB *sql.DB, season models.Season) {
	ctx := context.Background()
	ids := make(map[models.Player]int64, len(season.Players))

	for i, p := range season.Players {
		res, err := sqlBuilder.Insert("players").
			Columns("name", "sort_order").
			Values(string(p), i).
			RunWith(sqlDB).
			ExecContext(ctx)
		require.NoError(t, err)
		ids[p], err = res.LastInsertId()
		require.NoError(t, err)
	}

	for _, g := range season.Games {
		_, err := sqlBuilder.Insert("games").
			Columns("id", "played_on", "points_for", "points_against").
			Values(g.ID, g.Date.String(), g.For, g.Against).
			RunWith(sqlDB).
			ExecContext(ctx)
		require.NoError(t, err)

		for p, s := range g.Players {
			_, err := sqlBuilder.Insert("stat_lines").
				Columns("game_id", "player_id", "pts", "reb", "ast", "stl", "blk", "fgm", "fga", "tpm", "tpa").
				Values(g.ID, ids[p], s.Pts, s.Reb, s.Ast, s.Stl, s.Blk, s.FGM, s.FGA, s.TPM, s.TPA).
				RunWith(sqlDB).
				ExecContext(ctx)
			require.NoError(t, err, "stat line %d/%s", g.ID, p)
		}
	}
}
