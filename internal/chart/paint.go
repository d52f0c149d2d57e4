package chart

// Surface is a drawing backend with pixel coordinates, origin top-left.
type Surface interface {
	Clear(r Rect)
	Line(s Segment)
	Circle(center Pixel, radius float64, c Color)
	Text(t Text)
	FillRect(r Rect, c Color)
}

// Paint draws a scene: grid and tick labels, then each series' polyline and
// markers, then the legend.
func Paint(scene Scene, s Surface) {
	s.Clear(Rect{Right: float64(scene.Width), Bottom: float64(scene.Height)})
	if scene.Message != nil {
		s.Text(*scene.Message)
		return
	}

	for _, t := range scene.YTicks {
		s.Line(t.Grid)
		s.Text(t.Label)
	}
	for _, t := range scene.XTicks {
		s.Line(t.Grid)
		s.Text(t.Label)
	}

	for _, path := range scene.Series {
		for i := 1; i < len(path.Points); i++ {
			s.Line(Segment{From: path.Points[i-1], To: path.Points[i], Color: path.Color, Width: path.LineWidth})
		}
		for _, pt := range path.Points {
			s.Circle(pt, path.Radius, path.Color)
		}
	}

	for _, e := range scene.Legend {
		s.FillRect(e.Swatch, e.Color)
		s.Text(e.Label)
	}
}
