package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	padLeft   = 54
	padRight  = 16
	padTop    = 16
	padBottom = 40

	yTickCount = 6
	maxXTicks  = 10

	tickFontSize   = 12
	legendFontSize = 13
	minMessageFont = 14

	messageX = 18
	messageY = 32

	yLabelX       = 10
	yLabelOffset  = 4
	xLabelOffset  = 10
	xLabelFromBot = 16

	gridWidth    = 1
	seriesWidth  = 2
	markerRadius = 3

	hueRange        = 300
	seriesSat       = 0.85
	seriesLightness = 0.65

	legendTop        = 18
	legendSwatch     = 12
	legendSwatchRise = 10
	legendGap        = 18
	legendCharWidth  = 8
	legendLineStep   = 18
	legendWrapMargin = 180
)

var (
	messageColor    = Color{R: 255, G: 255, B: 255, A: 191}
	gridColor       = Color{R: 255, G: 255, B: 255, A: 20}
	tickLabelColor  = Color{R: 255, G: 255, B: 255, A: 166}
	legendTextColor = Color{R: 255, G: 255, B: 255, A: 217}
	seriesAlpha     = uint8(242)
)

// SeriesHue spreads hues over 0-300 degrees by selection position.
func SeriesHue(idx, count int) int {
	if count < 1 {
		count = 1
	}
	return int(math.Floor(float64(idx) / float64(count) * hueRange))
}

// SeriesColor is the stroke and fill color for a series hue.
func SeriesColor(hue int) Color {
	r, g, b := colorful.Hsl(float64(hue), seriesSat, seriesLightness).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: seriesAlpha}
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
