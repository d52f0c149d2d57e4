package render

import (
	"fmt"
	"io"

	"github.com/vytor/hoopstats/internal/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// PNGSurface rasterizes drawing calls with the go-chart renderer.
type PNGSurface struct {
	r          gochart.Renderer
	background chart.Color
}

func NewPNG(width, height int, background chart.Color) (*PNGSurface, error) {
	r, err := gochart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("render: create png renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	// Font sizes are pixels.
	r.SetDPI(72)
	r.SetFont(font)
	return &PNGSurface{r: r, background: background}, nil
}

func (s *PNGSurface) Clear(r chart.Rect) {
	s.FillRect(r, s.background)
}

func (s *PNGSurface) Line(seg chart.Segment) {
	s.r.SetStrokeColor(seg.Color)
	s.r.SetStrokeWidth(seg.Width)
	s.r.MoveTo(px(seg.From.X), px(seg.From.Y))
	s.r.LineTo(px(seg.To.X), px(seg.To.Y))
	s.r.Stroke()
}

func (s *PNGSurface) Circle(center chart.Pixel, radius float64, c chart.Color) {
	s.r.SetFillColor(c)
	s.r.Circle(radius, px(center.X), px(center.Y))
	s.r.Fill()
}

func (s *PNGSurface) Text(t chart.Text) {
	s.r.SetFontColor(t.Color)
	s.r.SetFontSize(t.Size)
	s.r.Text(t.Body, px(t.X), px(t.Y))
}

func (s *PNGSurface) FillRect(r chart.Rect, c chart.Color) {
	s.r.SetFillColor(c)
	s.r.MoveTo(px(r.Left), px(r.Top))
	s.r.LineTo(px(r.Right), px(r.Top))
	s.r.LineTo(px(r.Right), px(r.Bottom))
	s.r.LineTo(px(r.Left), px(r.Bottom))
	s.r.Close()
	s.r.Fill()
}

func (s *PNGSurface) Encode(w io.Writer) error {
	return s.r.Save(w)
}
