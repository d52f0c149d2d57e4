package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/hoopstats/internal/chart"
)

func TestSizeFor(t *testing.T) {
	tests := []struct {
		name     string
		cssWidth float64
		dpr      float64
		want     chart.CanvasSize
	}{
		{"aspect width", 1200, 1, chart.CanvasSize{Width: 1200, Height: 420, CSSWidth: 1200, CSSHeight: 420}},
		{"retina", 800, 2, chart.CanvasSize{Width: 1600, Height: 560, CSSWidth: 800, CSSHeight: 280}},
		{"fractional ratio floors", 1000, 1.5, chart.CanvasSize{Width: 1500, Height: 525, CSSWidth: 1000, CSSHeight: 350}},
		{"minimums", 100, 1, chart.CanvasSize{Width: 300, Height: 200, CSSWidth: 100, CSSHeight: 35}},
		{"zero width falls back", 0, 1, chart.CanvasSize{Width: 1200, Height: 420, CSSWidth: 1200, CSSHeight: 420}},
		{"zero ratio falls back", 600, 0, chart.CanvasSize{Width: 600, Height: 210, CSSWidth: 600, CSSHeight: 210}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chart.SizeFor(tt.cssWidth, tt.dpr))
		})
	}
}
