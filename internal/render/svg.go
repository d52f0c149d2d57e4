package render

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/vytor/hoopstats/internal/chart"
)

const fontFamily = "system-ui,-apple-system,Segoe UI,Roboto,sans-serif"

// SVGSurface streams drawing calls as SVG elements.
type SVGSurface struct {
	out        *errWriter
	canvas     *svg.SVG
	background chart.Color
}

func NewSVG(w io.Writer, width, height int, background chart.Color) *SVGSurface {
	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(width, height)
	return &SVGSurface{out: out, canvas: canvas, background: background}
}

func (s *SVGSurface) Clear(r chart.Rect) {
	s.FillRect(r, s.background)
}

func (s *SVGSurface) Line(seg chart.Segment) {
	s.canvas.Line(px(seg.From.X), px(seg.From.Y), px(seg.To.X), px(seg.To.Y),
		fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%g", rgb(seg.Color), opacity(seg.Color), seg.Width))
}

func (s *SVGSurface) Circle(center chart.Pixel, radius float64, c chart.Color) {
	s.canvas.Circle(px(center.X), px(center.Y), px(radius), fill(c))
}

func (s *SVGSurface) Text(t chart.Text) {
	s.canvas.Text(px(t.X), px(t.Y), t.Body,
		fmt.Sprintf("font-family:%s;font-size:%gpx;%s", fontFamily, t.Size, fill(t.Color)))
}

func (s *SVGSurface) FillRect(r chart.Rect, c chart.Color) {
	s.canvas.Rect(px(r.Left), px(r.Top), px(r.Width()), px(r.Height()), fill(c))
}

// Close ends the document and reports the first write error, if any.
func (s *SVGSurface) Close() error {
	s.canvas.End()
	return s.out.err
}

func rgb(c chart.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c chart.Color) string {
	return strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
}

func fill(c chart.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", rgb(c), opacity(c))
}

// errWriter keeps the first error so svg calls, which return nothing, can be
// checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
