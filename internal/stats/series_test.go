package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/stats"
)

func TestBuildSeries_MissingGamesLeaveGaps(t *testing.T) {
	set := stats.BuildSeries(players, twoGames(), models.MetricPoints)

	assert.Equal(t, 2, set.GameCount)
	require.Len(t, set.Series["A"], 2)
	assert.Equal(t, models.Point{X: 1, Y: 20, GameID: 1}, set.Series["A"][0])
	assert.Equal(t, models.Point{X: 2, Y: 10, GameID: 2}, set.Series["A"][1])

	require.Len(t, set.Series["B"], 1)
	assert.Equal(t, 1, set.Series["B"][0].X)
}

func TestBuildSeries_UsesGlobalGameIndex(t *testing.T) {
	games := []models.Game{
		{ID: 10, Players: map[models.Player]models.StatLine{"A": {Pts: 1}}},
		{ID: 20, Players: map[models.Player]models.StatLine{}},
		{ID: 30, Players: map[models.Player]models.StatLine{"A": {Pts: 3}}},
	}
	set := stats.BuildSeries([]models.Player{"A"}, games, models.MetricPoints)

	require.Len(t, set.Series["A"], 2)
	assert.Equal(t, 1, set.Series["A"][0].X)
	assert.Equal(t, 3, set.Series["A"][1].X)
	assert.Equal(t, int64(30), set.Series["A"][1].GameID)
}

func TestBuildSeries_NeverEmitsAbsentPairs(t *testing.T) {
	games := twoGames()
	for _, m := range models.Metrics {
		set := stats.BuildSeries(players, games, m)
		for p, pts := range set.Series {
			for _, pt := range pts {
				g := games[pt.X-1]
				_, ok := g.Line(p)
				assert.True(t, ok, "metric %s player %s game %d", m, p, g.ID)
			}
		}
	}
}

func TestBuildSeries_RatioScaledTo100(t *testing.T) {
	set := stats.BuildSeries(players, twoGames(), models.MetricFieldGoalPct)

	require.Len(t, set.Series["A"], 2)
	assert.InDelta(t, 53.333, set.Series["A"][0].Y, 0.001)
	assert.InDelta(t, 40.0, set.Series["A"][1].Y, 1e-9)
}

func TestBuildSeries_ZeroAttemptsKeepsUndefinedPoint(t *testing.T) {
	set := stats.BuildSeries(players, twoGames(), models.MetricThreePointPct)

	require.Len(t, set.Series["B"], 1)
	pt := set.Series["B"][0]
	assert.False(t, pt.Defined())
	assert.Equal(t, int64(1), pt.GameID)
}

func TestBuildSeries_PlayerWithNoGames(t *testing.T) {
	set := stats.BuildSeries([]models.Player{"Z"}, twoGames(), models.MetricPoints)

	pts, ok := set.Series["Z"]
	require.True(t, ok)
	assert.Empty(t, pts)
}
