// Package chart turns trend series into pixel-space scenes and paints them
// onto a drawing surface. Layout and painting are separate so geometry can be
// tested without a surface.
package chart

import (
	"github.com/vytor/hoopstats/internal/models"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color is an 8-bit RGBA color.
type Color = drawing.Color

type Kind string

const (
	KindTrend       Kind = "trend"
	KindNoSelection Kind = "no_selection"
	KindNoData      Kind = "no_data"
)

const (
	MessageNoSelection = "Select one or more players to view trends."
	MessageNoData      = "No data for selected players/metric."
)

type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Domain is a closed interval in data space.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span is the width of the domain, with a zero width treated as 1.
func (d Domain) Span() float64 {
	if w := d.Max - d.Min; w != 0 {
		return w
	}
	return 1
}

// Text is a label anchored at its baseline start.
type Text struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Body  string  `json:"body"`
	Size  float64 `json:"size"`
	Color Color   `json:"color"`
}

type Segment struct {
	From  Pixel   `json:"from"`
	To    Pixel   `json:"to"`
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

// Tick is one axis mark: its data value, its grid line and its label.
type Tick struct {
	Value float64 `json:"value"`
	Grid  Segment `json:"grid"`
	Label Text    `json:"label"`
}

// SeriesPath is one player's polyline and point markers.
type SeriesPath struct {
	Player    models.Player  `json:"player"`
	Hue       int            `json:"hue"`
	Color     Color          `json:"color"`
	LineWidth float64        `json:"line_width"`
	Radius    float64        `json:"radius"`
	Values    []models.Point `json:"values"`
	Points    []Pixel        `json:"points"`
}

type LegendEntry struct {
	Player models.Player `json:"player"`
	Color  Color         `json:"color"`
	Swatch Rect          `json:"swatch"`
	Label  Text          `json:"label"`
}

// Scene is the complete pixel-space description of one chart render.
// Placeholder scenes carry only a Message.
type Scene struct {
	Kind    Kind          `json:"kind"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Metric  models.Metric `json:"metric"`
	Message *Text         `json:"message,omitempty"`
	Plot    Rect          `json:"plot"`
	X       Domain        `json:"x_domain"`
	Y       Domain        `json:"y_domain"`
	YTicks  []Tick        `json:"y_ticks,omitempty"`
	XTicks  []Tick        `json:"x_ticks,omitempty"`
	Series  []SeriesPath  `json:"series,omitempty"`
	Legend  []LegendEntry `json:"legend,omitempty"`
}

// Transform maps data space onto the plot rectangle, larger y values upward.
type Transform struct {
	Plot Rect
	X    Domain
	Y    Domain
}

func (t Transform) Apply(x, y float64) Pixel {
	return Pixel{
		X: t.Plot.Left + (x-t.X.Min)/t.X.Span()*t.Plot.Width(),
		Y: t.Plot.Top + (1-(y-t.Y.Min)/t.Y.Span())*t.Plot.Height(),
	}
}
