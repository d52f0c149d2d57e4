package render_test

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/chart"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/render"
)

func trendScene() chart.Scene {
	data := models.SeriesSet{
		Metric:    models.MetricPoints,
		GameCount: 2,
		Series: map[models.Player][]models.Point{
			"A":     {{X: 1, Y: 20, GameID: 1}, {X: 2, Y: 10, GameID: 2}},
			"B & C": {{X: 1, Y: 6, GameID: 1}},
		},
	}
	return chart.Layout([]models.Player{"A", "B & C"}, models.MetricPoints, data, 600, 300)
}

func TestParseFormat(t *testing.T) {
	f, ok := render.ParseFormat(" PNG ")
	require.True(t, ok)
	assert.Equal(t, render.FormatPNG, f)
	assert.Equal(t, "image/png", f.ContentType())

	f, ok = render.ParseFormat("svg")
	require.True(t, ok)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	_, ok = render.ParseFormat("gif")
	assert.False(t, ok)
}

func TestWrite_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, trendScene(), render.FormatSVG))

	out := buf.String()
	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `width="600"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	// 6 y grid lines, 2 x grid lines and one series segment.
	assert.Equal(t, 9, strings.Count(out, "<line"))
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, "B &amp; C")
	assert.Contains(t, out, ">G2</text>")
}

func TestWrite_SVGPlaceholder(t *testing.T) {
	scene := chart.Layout(nil, models.MetricPoints, models.SeriesSet{}, 400, 200)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, scene, render.FormatSVG))

	assert.Contains(t, buf.String(), chart.MessageNoSelection)
	assert.NotContains(t, buf.String(), "<line")
}

func TestWrite_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, trendScene(), render.FormatPNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, uint32(render.Background.R), r>>8)
	assert.Equal(t, uint32(render.Background.G), g>>8)
	assert.Equal(t, uint32(render.Background.B), b>>8)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := render.Write(&bytes.Buffer{}, trendScene(), render.Format("gif"))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_SVGReportsWriteError(t *testing.T) {
	err := render.Write(failingWriter{}, trendScene(), render.FormatSVG)
	assert.EqualError(t, err, "disk full")
}
