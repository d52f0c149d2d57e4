package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/render"
	"github.com/vytor/hoopstats/internal/testutil"
)

func writeSeason(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(testutil.SampleSeason())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestRun_SVGToStdout(t *testing.T) {
	season := writeSeason(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-season", season, "-players", "A, B", "-width", "600"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "<svg")
	assert.Contains(t, stdout.String(), ">A</text>")
}

func TestRun_PNGFromExtension(t *testing.T) {
	season := writeSeason(t)
	out := filepath.Join(t.TempDir(), "chart.png")

	err := run(context.Background(), []string{"-season", season, "-metric", "fgp", "-o", out}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRun_Errors(t *testing.T) {
	season := writeSeason(t)
	ctx := context.Background()

	err := run(ctx, []string{"-season", season, "-metric", "dunks"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown metric")

	err = run(ctx, []string{"-season", season, "-format", "gif"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown format")

	err = run(ctx, []string{"-season", season, "-players", "Z"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run(ctx, []string{"-season", filepath.Join(t.TempDir(), "missing.json")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	roster := []models.Player{"A", "B"}

	assert.Equal(t, roster, options{all: true}.selection(roster))
	assert.Empty(t, options{all: false}.selection(roster))
	assert.Equal(t, []models.Player{"B"}, options{players: " B ,", all: true}.selection(roster))

	f, err := options{out: "x.PNG"}.outputFormat()
	require.NoError(t, err)
	assert.Equal(t, render.FormatPNG, f)

	f, err = options{out: "-"}.outputFormat()
	require.NoError(t, err)
	assert.Equal(t, render.FormatSVG, f)
}
