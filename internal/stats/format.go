package stats

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vytor/hoopstats/internal/models"
)

// Missing is shown for undefined values and absent lines.
const Missing = "—"

// FormatPct renders a fraction as a one-decimal percentage.
func FormatPct(v float64) string {
	if !finite(v) {
		return Missing
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

func FormatOne(v float64) string {
	if !finite(v) {
		return Missing
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatMetric renders a metric value: percentages for ratios, integers
// otherwise.
func FormatMetric(m models.Metric, v float64) string {
	if m.IsRatio() {
		return FormatPct(v)
	}
	if !finite(v) {
		return Missing
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMakes renders made-attempted, e.g. "8-15".
func FormatMakes(made, attempts int) string {
	return fmt.Sprintf("%d-%d", made, attempts)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
