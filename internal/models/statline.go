package models

import "math"

// StatLine is one player's counting stats for one game.
type StatLine struct {
	Pts int `json:"pts"`
	Reb int `json:"reb"`
	Ast int `json:"ast"`
	Stl int `json:"stl"`
	Blk int `json:"blk"`
	FGM int `json:"fgm"`
	FGA int `json:"fga"`
	TPM int `json:"tpm"`
	TPA int `json:"tpa"`
}

// Add returns the field-wise sum of two lines.
func (s StatLine) Add(o StatLine) StatLine {
	return StatLine{
		Pts: s.Pts + o.Pts,
		Reb: s.Reb + o.Reb,
		Ast: s.Ast + o.Ast,
		Stl: s.Stl + o.Stl,
		Blk: s.Blk + o.Blk,
		FGM: s.FGM + o.FGM,
		FGA: s.FGA + o.FGA,
		TPM: s.TPM + o.TPM,
		TPA: s.TPA + o.TPA,
	}
}

// FGPct is fgm/fga, NaN when there were no attempts.
func (s StatLine) FGPct() float64 {
	return ratio(s.FGM, s.FGA)
}

// TPPct is tpm/tpa, NaN when there were no attempts.
func (s StatLine) TPPct() float64 {
	return ratio(s.TPM, s.TPA)
}

// Value projects the line onto a metric. Ratio metrics are fractions in [0, 1].
func (s StatLine) Value(m Metric) float64 {
	switch m {
	case MetricPoints:
		return float64(s.Pts)
	case MetricRebounds:
		return float64(s.Reb)
	case MetricAssists:
		return float64(s.Ast)
	case MetricSteals:
		return float64(s.Stl)
	case MetricBlocks:
		return float64(s.Blk)
	case MetricFieldGoalPct:
		return s.FGPct()
	case MetricThreePointPct:
		return s.TPPct()
	default:
		return math.NaN()
	}
}

func ratio(made, attempts int) float64 {
	if attempts == 0 {
		return math.NaN()
	}
	return float64(made) / float64(attempts)
}

// Totals is a season-long sum of stat lines plus the games-played count.
// Percentages come from the promoted StatLine methods, so they are always
// computed from summed makes and attempts.
type Totals struct {
	G int `json:"g"`
	StatLine
}

// PerGame divides a counting total by games played, treating 0 games as 1.
func (t Totals) PerGame(m Metric) float64 {
	g := t.G
	if g == 0 {
		g = 1
	}
	return t.Value(m) / float64(g)
}
