package chart

import "math"

const (
	AspectWidth  = 1200
	AspectHeight = 420

	MinCanvasWidth  = 300
	MinCanvasHeight = 200
)

// CanvasSize is a drawing surface size in device pixels together with the
// displayed (CSS) height that keeps the chart aspect ratio.
type CanvasSize struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	CSSWidth  int `json:"css_width"`
	CSSHeight int `json:"css_height"`
}

// SizeFor derives the surface size from the container's displayed width and
// the device pixel ratio. A non-positive width falls back to the aspect width
// and a non-positive ratio to 1.
func SizeFor(cssWidth, dpr float64) CanvasSize {
	if cssWidth <= 0 || math.IsNaN(cssWidth) || math.IsInf(cssWidth, 0) {
		cssWidth = AspectWidth
	}
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	cssHeight := roundHalfUp(cssWidth * AspectHeight / AspectWidth)

	return CanvasSize{
		Width:     max(MinCanvasWidth, int(math.Floor(cssWidth*dpr))),
		Height:    max(MinCanvasHeight, int(math.Floor(cssHeight*dpr))),
		CSSWidth:  int(roundHalfUp(cssWidth)),
		CSSHeight: int(cssHeight),
	}
}
