package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/vytor/hoopstats/internal/models"
)

// Layout computes the scene for the selected players at a surface size in
// device pixels. An empty selection or a selection without a single defined
// value produces a placeholder scene instead of axes.
func Layout(selected []models.Player, m models.Metric, data models.SeriesSet, width, height int) Scene {
	scene := Scene{Kind: KindTrend, Width: width, Height: height, Metric: m}
	if len(selected) == 0 {
		return placeholder(scene, KindNoSelection, MessageNoSelection)
	}

	visible := make([][]models.Point, len(selected))
	var (
		count      int
		maxX       int
		yMin, yMax = math.Inf(1), math.Inf(-1)
	)
	for i, p := range selected {
		visible[i] = visiblePoints(data.Series[p])
		for _, pt := range visible[i] {
			count++
			maxX = max(maxX, pt.X)
			yMin = math.Min(yMin, pt.Y)
			yMax = math.Max(yMax, pt.Y)
		}
	}
	if count == 0 {
		return placeholder(scene, KindNoData, MessageNoData)
	}

	w, h := float64(width), float64(height)
	pad := (yMax - yMin) * 0.1
	if pad == 0 {
		pad = 1
	}
	tr := Transform{
		Plot: Rect{Left: padLeft, Top: padTop, Right: w - padRight, Bottom: h - padBottom},
		X:    Domain{Min: 1, Max: float64(max(data.GameCount, maxX))},
		Y:    Domain{Min: yMin - pad, Max: yMax + pad},
	}

	scene.Plot = tr.Plot
	scene.X = tr.X
	scene.Y = tr.Y
	scene.YTicks = yTicks(tr, m)
	scene.XTicks = xTicks(tr)
	scene.Series = seriesPaths(selected, visible, tr)
	scene.Legend = legend(selected, w)
	return scene
}

func placeholder(scene Scene, kind Kind, body string) Scene {
	scene.Kind = kind
	scene.Message = &Text{
		X:     messageX,
		Y:     messageY,
		Body:  body,
		Size:  math.Max(minMessageFont, roundHalfUp(float64(scene.Width)/70)),
		Color: messageColor,
	}
	return scene
}

// visiblePoints drops undefined values and orders the rest by game index.
func visiblePoints(pts []models.Point) []models.Point {
	out := make([]models.Point, 0, len(pts))
	for _, pt := range pts {
		if pt.Defined() {
			out = append(out, pt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// yTicks spans the padded y domain with evenly spaced values, both ends included.
func yTicks(tr Transform, m models.Metric) []Tick {
	ticks := make([]Tick, 0, yTickCount)
	for i := 0; i < yTickCount; i++ {
		v := tr.Y.Min + float64(i)/float64(yTickCount-1)*(tr.Y.Max-tr.Y.Min)
		py := tr.Apply(tr.X.Min, v).Y

		label := strconv.FormatInt(int64(roundHalfUp(v)), 10)
		if m.IsRatio() {
			label += "%"
		}
		ticks = append(ticks, Tick{
			Value: v,
			Grid: Segment{
				From:  Pixel{X: tr.Plot.Left, Y: py},
				To:    Pixel{X: tr.Plot.Right, Y: py},
				Color: gridColor,
				Width: gridWidth,
			},
			Label: Text{X: yLabelX, Y: py + yLabelOffset, Body: label, Size: tickFontSize, Color: tickLabelColor},
		})
	}
	return ticks
}

// xTicks places up to maxXTicks integer game indices across [1, xMax], one
// per game when there are fewer games than that.
func xTicks(tr Transform) []Tick {
	xMax := int(tr.X.Max)
	n := min(maxXTicks, xMax)
	steps := n - 1
	if steps == 0 {
		steps = 1
	}

	ticks := make([]Tick, 0, n)
	for i := 1; i <= n; i++ {
		x := roundHalfUp(1 + float64(i-1)*(tr.X.Max-1)/float64(steps))
		px := tr.Apply(x, tr.Y.Min).X
		ticks = append(ticks, Tick{
			Value: x,
			Grid: Segment{
				From:  Pixel{X: px, Y: tr.Plot.Top},
				To:    Pixel{X: px, Y: tr.Plot.Bottom},
				Color: gridColor,
				Width: gridWidth,
			},
			Label: Text{
				X:     px - xLabelOffset,
				Y:     tr.Plot.Bottom + padBottom - xLabelFromBot,
				Body:  fmt.Sprintf("G%d", int(x)),
				Size:  tickFontSize,
				Color: tickLabelColor,
			},
		})
	}
	return ticks
}

func seriesPaths(selected []models.Player, visible [][]models.Point, tr Transform) []SeriesPath {
	paths := make([]SeriesPath, 0, len(selected))
	for idx, p := range selected {
		pts := visible[idx]
		if len(pts) == 0 {
			continue
		}
		hue := SeriesHue(idx, len(selected))
		path := SeriesPath{
			Player:    p,
			Hue:       hue,
			Color:     SeriesColor(hue),
			LineWidth: seriesWidth,
			Radius:    markerRadius,
			Values:    pts,
			Points:    make([]Pixel, 0, len(pts)),
		}
		for _, pt := range pts {
			path.Points = append(path.Points, tr.Apply(float64(pt.X), pt.Y))
		}
		paths = append(paths, path)
	}
	return paths
}

// legend lays entries left to right, wrapping once the running offset passes
// the surface width minus a fixed margin.
func legend(selected []models.Player, width float64) []LegendEntry {
	entries := make([]LegendEntry, 0, len(selected))
	lx, ly := float64(padLeft), float64(legendTop)
	for idx, p := range selected {
		c := SeriesColor(SeriesHue(idx, len(selected)))
		entries = append(entries, LegendEntry{
			Player: p,
			Color:  c,
			Swatch: Rect{Left: lx, Top: ly - legendSwatchRise, Right: lx + legendSwatch, Bottom: ly - legendSwatchRise + legendSwatch},
			Label:  Text{X: lx + legendGap, Y: ly, Body: string(p), Size: legendFontSize, Color: legendTextColor},
		})

		lx += legendGap + float64(utf8.RuneCountInString(string(p)))*legendCharWidth + legendGap
		if lx > width-legendWrapMargin {
			lx = padLeft
			ly += legendLineStep
		}
	}
	return entries
}
