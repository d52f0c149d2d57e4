package models

import (
	"encoding/json"
	"math"
)

// Point is one game's value in a player's trend series. X is the 1-based index
// of the game in the full chronological sequence, so a player's X values skip
// the games they missed.
type Point struct {
	X      int
	Y      float64
	GameID int64
}

// Defined reports whether the point has a plottable value.
func (p Point) Defined() bool {
	return !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// MarshalJSON writes an undefined value as null.
func (p Point) MarshalJSON() ([]byte, error) {
	out := struct {
		X      int      `json:"x"`
		Y      *float64 `json:"y"`
		GameID int64    `json:"game_id"`
	}{X: p.X, GameID: p.GameID}
	if p.Defined() {
		y := p.Y
		out.Y = &y
	}
	return json.Marshal(out)
}

// SeriesSet is the output of the series builder for one metric.
type SeriesSet struct {
	Metric    Metric             `json:"metric"`
	Series    map[Player][]Point `json:"series"`
	GameCount int                `json:"game_count"`
}
