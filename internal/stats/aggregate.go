// Package stats folds per-game stat lines into season totals, leaders, trend
// series and the tabular views built on them. Every function is a pure
// function of its arguments.
package stats

import (
	"math"

	"github.com/vytor/hoopstats/internal/models"
)

// TotalsTable maps players to their season totals and remembers the player
// order, which is the iteration order used for tie-breaking.
type TotalsTable struct {
	Players  []models.Player
	ByPlayer map[models.Player]models.Totals
}

func (t TotalsTable) Get(p models.Player) (models.Totals, bool) {
	tot, ok := t.ByPlayer[p]
	return tot, ok
}

func (t TotalsTable) Len() int {
	return len(t.Players)
}

// Aggregate sums each player's stat lines over the games they appear in.
// Games are expected in ascending id order; the sums do not depend on it.
// Stat lines for players outside the list are ignored.
func Aggregate(players []models.Player, games []models.Game) TotalsTable {
	table := TotalsTable{
		Players:  players,
		ByPlayer: make(map[models.Player]models.Totals, len(players)),
	}
	for _, p := range players {
		table.ByPlayer[p] = models.Totals{}
	}

	for _, g := range games {
		for _, p := range players {
			line, ok := g.Line(p)
			if !ok {
				continue
			}
			t := table.ByPlayer[p]
			t.G++
			t.StatLine = t.StatLine.Add(line)
			table.ByPlayer[p] = t
		}
	}
	return table
}

// Leader is the player holding the highest value of a metric. Value is NaN
// when no player has a defined value.
type Leader struct {
	Player models.Player `json:"player"`
	Value  float64       `json:"-"`
}

// Defined reports whether the leader's value can be displayed.
func (l Leader) Defined() bool {
	return !math.IsNaN(l.Value)
}

// LeaderOf scans the table for the maximum of the metric. Undefined values
// rank below every defined value, and on ties the earlier player in the table
// order wins. The bool is false only for an empty table.
func LeaderOf(table TotalsTable, m models.Metric) (Leader, bool) {
	if len(table.Players) == 0 {
		return Leader{}, false
	}

	var (
		best  Leader
		found bool
	)
	for _, p := range table.Players {
		v := table.ByPlayer[p].Value(m)
		if !found || rank(v) > rank(best.Value) {
			best = Leader{Player: p, Value: v}
			found = true
		}
	}
	return best, found
}

func rank(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}
