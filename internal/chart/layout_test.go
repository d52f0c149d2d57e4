package chart_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/chart"
	"github.com/vytor/hoopstats/internal/models"
)

func pts(ys ...float64) []models.Point {
	out := make([]models.Point, len(ys))
	for i, y := range ys {
		out[i] = models.Point{X: i + 1, Y: y, GameID: int64(i + 1)}
	}
	return out
}

func set(m models.Metric, games int, series map[models.Player][]models.Point) models.SeriesSet {
	return models.SeriesSet{Metric: m, Series: series, GameCount: games}
}

func TestLayout_NoSelection(t *testing.T) {
	data := set(models.MetricPoints, 2, map[models.Player][]models.Point{"A": pts(20, 10)})

	scene := chart.Layout(nil, models.MetricPoints, data, 800, 400)

	assert.Equal(t, chart.KindNoSelection, scene.Kind)
	require.NotNil(t, scene.Message)
	assert.Equal(t, chart.MessageNoSelection, scene.Message.Body)
	assert.Equal(t, 18.0, scene.Message.X)
	assert.Equal(t, 32.0, scene.Message.Y)
	assert.Equal(t, 14.0, scene.Message.Size)
	assert.Empty(t, scene.YTicks)
	assert.Empty(t, scene.XTicks)
	assert.Empty(t, scene.Series)
	assert.Empty(t, scene.Legend)
}

func TestLayout_PlaceholderFontScalesWithWidth(t *testing.T) {
	scene := chart.Layout(nil, models.MetricPoints, models.SeriesSet{}, 2100, 735)
	require.NotNil(t, scene.Message)
	assert.Equal(t, 30.0, scene.Message.Size)
}

func TestLayout_NoData(t *testing.T) {
	undefined := []models.Point{{X: 1, Y: math.NaN(), GameID: 1}, {X: 2, Y: math.NaN(), GameID: 2}}
	data := set(models.MetricThreePointPct, 2, map[models.Player][]models.Point{"A": undefined})

	for name, selected := range map[string][]models.Player{
		"all undefined":  {"A"},
		"unknown player": {"Z"},
	} {
		t.Run(name, func(t *testing.T) {
			scene := chart.Layout(selected, models.MetricThreePointPct, data, 800, 400)
			assert.Equal(t, chart.KindNoData, scene.Kind)
			require.NotNil(t, scene.Message)
			assert.Equal(t, chart.MessageNoData, scene.Message.Body)
			assert.Empty(t, scene.Series)
		})
	}
}

func TestLayout_Domains(t *testing.T) {
	data := set(models.MetricPoints, 5, map[models.Player][]models.Point{
		"A": pts(10, 20),
		"B": pts(15),
	})

	scene := chart.Layout([]models.Player{"A", "B"}, models.MetricPoints, data, 800, 400)

	assert.Equal(t, chart.KindTrend, scene.Kind)
	assert.Nil(t, scene.Message)
	assert.Equal(t, chart.Domain{Min: 1, Max: 5}, scene.X)
	assert.InDelta(t, 9.0, scene.Y.Min, 1e-9)
	assert.InDelta(t, 21.0, scene.Y.Max, 1e-9)
	assert.Equal(t, chart.Rect{Left: 54, Top: 16, Right: 784, Bottom: 360}, scene.Plot)
}

func TestLayout_ConstantSeriesGetsNonZeroRange(t *testing.T) {
	data := set(models.MetricPoints, 3, map[models.Player][]models.Point{"A": pts(10, 10, 10)})

	scene := chart.Layout([]models.Player{"A"}, models.MetricPoints, data, 800, 400)

	assert.Equal(t, 9.0, scene.Y.Min)
	assert.Equal(t, 11.0, scene.Y.Max)
	for _, p := range scene.Series[0].Points {
		assert.InDelta(t, 188.0, p.Y, 1e-9)
	}
}

func TestLayout_XDomainCoversLatePoints(t *testing.T) {
	data := set(models.MetricPoints, 2, map[models.Player][]models.Point{
		"A": {{X: 1, Y: 4}, {X: 7, Y: 8}},
	})

	scene := chart.Layout([]models.Player{"A"}, models.MetricPoints, data, 800, 400)
	assert.Equal(t, 7.0, scene.X.Max)
}

func TestLayout_SingleGameStaysFinite(t *testing.T) {
	data := set(models.MetricPoints, 1, map[models.Player][]models.Point{"A": pts(12)})

	scene := chart.Layout([]models.Player{"A"}, models.MetricPoints, data, 800, 400)

	require.Len(t, scene.Series, 1)
	p := scene.Series[0].Points[0]
	assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
	assert.Equal(t, scene.Plot.Left, p.X)
	require.Len(t, scene.XTicks, 1)
	assert.Equal(t, "G1", scene.XTicks[0].Label.Body)
}

func TestLayout_YTicks(t *testing.T) {
	data := set(models.MetricPoints, 2, map[models.Player][]models.Point{"A": pts(10, 20)})

	scene := chart.Layout([]models.Player{"A"}, models.MetricPoints, data, 800, 400)

	require.Len(t, scene.YTicks, 6)
	assert.Equal(t, scene.Y.Min, scene.YTicks[0].Value)
	assert.InDelta(t, scene.Y.Max, scene.YTicks[5].Value, 1e-9)

	labels := make([]string, 0, len(scene.YTicks))
	for _, tick := range scene.YTicks {
		labels = append(labels, tick.Label.Body)
		assert.Equal(t, 10.0, tick.Label.X)
		assert.Equal(t, tick.Grid.From.Y+4, tick.Label.Y)
		assert.Equal(t, 54.0, tick.Grid.From.X)
		assert.Equal(t, 784.0, tick.Grid.To.X)
	}
	// 9, 11.4, 13.8, 16.2, 18.6, 21
	assert.Equal(t, []string{"9", "11", "14", "16", "19", "21"}, labels)
	assert.Equal(t, scene.Plot.Bottom, scene.YTicks[0].Grid.From.Y)
	assert.InDelta(t, scene.Plot.Top, scene.YTicks[5].Grid.From.Y, 1e-9)
}

func TestLayout_RatioTicksArePercent(t *testing.T) {
	data := set(models.MetricFieldGoalPct, 2, map[models.Player][]models.Point{"A": pts(53.3, 40)})

	scene := chart.Layout([]models.Player{"A"}, models.MetricFieldGoalPct, data, 800, 400)

	for _, tick := range scene.YTicks {
		assert.Regexp(t, `^-?\d+%$`, tick.Label.Body)
	}
}

func TestLayout_XTicksOnePerGame(t *testing.T) {
	data := set(models.MetricPoints, 4, map[models.Player][]models.Point{"A": pts(1, 2, 3, 4)})

	scene := chart.Layout([]models.Player{"A"}, models.MetricPoints, data, 800, 400)

	require.Len(t, scene.XTicks, 4)
	for i, tick := range scene.XTicks {
		assert.Equal(t, float64(i+1), tick.Value)
		assert.Equal(t, tick.Grid.From.X-10, tick.Label.X)
		assert.Equal(t, 384.0, tick.Label.Y)
		assert.Equal(t, 16.0, tick.Grid.From.Y)
		assert.Equal(t, 360.0, tick.Grid.To.Y)
	}
	assert.Equal(t, "G4", scene.XTicks[3].Label.Body)
	assert.Equal(t, scene.Plot.Right, scene.XTicks[3].Grid.From.X)
}

func TestLayout_XTicksCappedAtTen(t *testing.T) {
	ys := make([]float64, 25)
	for i := range ys {
		ys[i] = float64(i)
	}
	data := set(models.MetricPoints, 25, map[models.Player][]models.Point{"A": pts(ys...)})

	scene := chart.Layout([]models.Player{"A"}, models.MetricPoints, data, 800, 400)

	require.Len(t, scene.XTicks, 10)
	assert.Equal(t, "G1", scene.XTicks[0].Label.Body)
	assert.Equal(t, "G25", scene.XTicks[9].Label.Body)
	for i := 1; i < len(scene.XTicks); i++ {
		assert.Greater(t, scene.XTicks[i].Value, scene.XTicks[i-1].Value)
	}
}

func TestLayout_SeriesPaths(t *testing.T) {
	unsorted := []models.Point{{X: 3, Y: 9}, {X: 1, Y: 5}, {X: 2, Y: math.NaN()}}
	data := set(models.MetricPoints, 3, map[models.Player][]models.Point{
		"A": unsorted,
		"B": {},
		"C": pts(1, 2, 3),
	})

	scene := chart.Layout([]models.Player{"A", "B", "C"}, models.MetricPoints, data, 800, 400)

	require.Len(t, scene.Series, 2)
	a := scene.Series[0]
	assert.Equal(t, models.Player("A"), a.Player)
	assert.Equal(t, 0, a.Hue)
	assert.Equal(t, 2.0, a.LineWidth)
	assert.Equal(t, 3.0, a.Radius)
	require.Len(t, a.Values, 2)
	assert.Equal(t, 1, a.Values[0].X)
	assert.Equal(t, 3, a.Values[1].X)
	assert.Less(t, a.Points[0].X, a.Points[1].X)

	c := scene.Series[1]
	assert.Equal(t, models.Player("C"), c.Player)
	assert.Equal(t, 200, c.Hue)

	// B has nothing to draw but still appears in the legend.
	require.Len(t, scene.Legend, 3)
	assert.Equal(t, models.Player("B"), scene.Legend[1].Player)
}

func TestLayout_LegendWraps(t *testing.T) {
	data := set(models.MetricPoints, 1, map[models.Player][]models.Point{"Alexander": pts(1)})
	selected := []models.Player{"Alexander", "Benjamin", "Cy"}

	scene := chart.Layout(selected, models.MetricPoints, data, 400, 300)

	require.Len(t, scene.Legend, 3)
	assert.Equal(t, chart.Text{X: 72, Y: 18, Body: "Alexander", Size: 13, Color: scene.Legend[0].Label.Color}, scene.Legend[0].Label)
	assert.Equal(t, chart.Rect{Left: 54, Top: 8, Right: 66, Bottom: 20}, scene.Legend[0].Swatch)
	assert.Equal(t, 162.0, scene.Legend[1].Swatch.Left)
	assert.Equal(t, 18.0, scene.Legend[1].Label.Y)
	assert.Equal(t, 54.0, scene.Legend[2].Swatch.Left)
	assert.Equal(t, 36.0, scene.Legend[2].Label.Y)
}

func TestSeriesHue(t *testing.T) {
	assert.Equal(t, 0, chart.SeriesHue(0, 1))
	assert.Equal(t, 0, chart.SeriesHue(0, 0))
	assert.Equal(t, 100, chart.SeriesHue(1, 3))
	assert.Equal(t, 225, chart.SeriesHue(3, 4))

	c := chart.SeriesColor(0)
	assert.Equal(t, uint8(242), c.A)
	assert.Greater(t, c.R, c.G)
}
