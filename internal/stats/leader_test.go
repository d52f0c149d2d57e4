package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/stats"
)

func TestLeaderOf_CountingStat(t *testing.T) {
	table := stats.Aggregate(players, twoGames())

	leader, ok := stats.LeaderOf(table, models.MetricPoints)
	require.True(t, ok)
	assert.Equal(t, models.Player("A"), leader.Player)
	assert.Equal(t, 30.0, leader.Value)

	leader, ok = stats.LeaderOf(table, models.MetricRebounds)
	require.True(t, ok)
	assert.Equal(t, models.Player("B"), leader.Player)
	assert.Equal(t, 9.0, leader.Value)
}

func TestLeaderOf_EmptyTable(t *testing.T) {
	leader, ok := stats.LeaderOf(stats.TotalsTable{}, models.MetricPoints)
	assert.False(t, ok)
	assert.Equal(t, models.Player(""), leader.Player)
}

func TestLeaderOf_UndefinedRanksLast(t *testing.T) {
	// Scorer never shoots threes; Shooter scores less but has attempts.
	games := []models.Game{
		{ID: 1, Players: map[models.Player]models.StatLine{
			"Scorer":  {Pts: 40, FGM: 20, FGA: 30},
			"Shooter": {Pts: 3, FGM: 1, FGA: 5, TPM: 1, TPA: 4},
		}},
	}
	table := stats.Aggregate([]models.Player{"Scorer", "Shooter"}, games)

	leader, ok := stats.LeaderOf(table, models.MetricThreePointPct)
	require.True(t, ok)
	assert.Equal(t, models.Player("Shooter"), leader.Player)
	assert.True(t, leader.Defined())
	assert.InDelta(t, 0.25, leader.Value, 1e-9)
}

func TestLeaderOf_NoAttemptsAnywhere(t *testing.T) {
	games := []models.Game{
		{ID: 1, Players: map[models.Player]models.StatLine{"A": {Pts: 2}, "B": {Pts: 4}}},
	}
	table := stats.Aggregate(players, games)

	leader, ok := stats.LeaderOf(table, models.MetricFieldGoalPct)
	require.True(t, ok)
	assert.Equal(t, models.Player("A"), leader.Player)
	assert.False(t, leader.Defined())
}

func TestLeaderOf_TiesKeepPlayerOrder(t *testing.T) {
	games := []models.Game{
		{ID: 1, Players: map[models.Player]models.StatLine{"A": {Ast: 5}, "B": {Ast: 5}, "C": {Ast: 5}}},
	}
	for _, order := range [][]models.Player{{"A", "B", "C"}, {"C", "A", "B"}, {"B", "C", "A"}} {
		table := stats.Aggregate(order, games)
		leader, _ := stats.LeaderOf(table, models.MetricAssists)
		assert.Equal(t, order[0], leader.Player)
	}
}

func TestLeaderOf_FieldGoalPctNeverPicksZeroAttempts(t *testing.T) {
	games := []models.Game{
		{ID: 1, Players: map[models.Player]models.StatLine{"A": {Pts: 0}, "B": {FGM: 1, FGA: 10, Pts: 2}}},
		{ID: 2, Players: map[models.Player]models.StatLine{"A": {Pts: 0}}},
	}
	table := stats.Aggregate(players, games)

	leader, _ := stats.LeaderOf(table, models.MetricFieldGoalPct)
	tot, _ := table.Get(leader.Player)
	assert.Greater(t, tot.FGA, 0)
}
