// Package render encodes chart scenes as SVG or PNG images.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vytor/hoopstats/internal/chart"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Background fills the whole surface before anything else is drawn. Chart
// colors are light on dark.
var Background = chart.Color{R: 17, G: 24, B: 39, A: 255}

func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, true
	}
	return "", false
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Write paints scene onto a surface of the given format and writes the
// encoded image to w.
func Write(w io.Writer, scene chart.Scene, f Format) error {
	switch f {
	case FormatSVG:
		s := NewSVG(w, scene.Width, scene.Height, Background)
		chart.Paint(scene, s)
		return s.Close()
	case FormatPNG:
		s, err := NewPNG(scene.Width, scene.Height, Background)
		if err != nil {
			return err
		}
		chart.Paint(scene, s)
		return s.Encode(w)
	}
	return fmt.Errorf("render: unknown format %q", f)
}

func px(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
