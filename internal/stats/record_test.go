package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/stats"
)

func TestTeamRecord(t *testing.T) {
	games := append(twoGames(), models.Game{ID: 3, For: 88, Against: 88})
	r := stats.TeamRecord(games)

	assert.Equal(t, stats.Record{Wins: 1, Losses: 1, Ties: 1}, r)
	assert.Equal(t, "1-1-1", r.String())
	assert.Equal(t, "1-1", stats.TeamRecord(twoGames()).String())
}

func TestTeamScoring(t *testing.T) {
	s := stats.TeamScoring(twoGames())
	assert.InDelta(t, 97.5, s.AvgFor, 1e-9)
	assert.InDelta(t, 94.0, s.AvgAgainst, 1e-9)

	assert.Equal(t, stats.Scoring{}, stats.TeamScoring(nil))
}

func TestGameLabel(t *testing.T) {
	games := twoGames()
	assert.Equal(t, "Jan 2 • W 100-90", stats.GameLabel(games[0]))
	assert.Equal(t, "Jan 5 • L 95-98", stats.GameLabel(games[1]))
}

func TestGameLog(t *testing.T) {
	rows := stats.GameLog(twoGames())

	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, "2024-01-02", rows[0].Date)
	assert.Equal(t, "100-90", rows[0].Score)
	assert.Equal(t, 10, rows[0].Diff)
	assert.Equal(t, stats.Win, rows[0].Result)
	assert.Equal(t, -3, rows[1].Diff)
	assert.Equal(t, stats.Loss, rows[1].Result)
}
