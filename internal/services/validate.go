package services

import (
	"fmt"
	"sort"

	"github.com/vytor/hoopstats/internal/models"
)

// ValidateSeason checks loaded data against the stat line rules and returns
// every problem found, in a stable order. An empty result means the season is
// safe to hand to the stats and chart packages.
func ValidateSeason(season models.Season) []string {
	var problems []string

	known := make(map[models.Player]bool, len(season.Players))
	for i, p := range season.Players {
		switch {
		case p == "":
			problems = append(problems, fmt.Sprintf("player %d: empty name", i))
		case known[p]:
			problems = append(problems, fmt.Sprintf("duplicate player %q", p))
		}
		known[p] = true
	}

	seen := make(map[int64]bool, len(season.Games))
	for _, g := range season.Games {
		if seen[g.ID] {
			problems = append(problems, fmt.Sprintf("duplicate game id %d", g.ID))
		}
		seen[g.ID] = true

		if g.For < 0 || g.Against < 0 {
			problems = append(problems, fmt.Sprintf("game %d: negative score %d-%d", g.ID, g.For, g.Against))
		}

		names := make([]models.Player, 0, len(g.Players))
		for p := range g.Players {
			names = append(names, p)
		}
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

		for _, p := range names {
			if !known[p] {
				problems = append(problems, fmt.Sprintf("game %d: stat line for unknown player %q", g.ID, p))
				continue
			}
			for _, msg := range lineProblems(g.Players[p]) {
				problems = append(problems, fmt.Sprintf("game %d: %s: %s", g.ID, p, msg))
			}
		}
	}
	return problems
}

func lineProblems(s models.StatLine) []string {
	var out []string
	for _, f := range []struct {
		name  string
		value int
	}{
		{"pts", s.Pts}, {"reb", s.Reb}, {"ast", s.Ast}, {"stl", s.Stl}, {"blk", s.Blk},
		{"fgm", s.FGM}, {"fga", s.FGA}, {"tpm", s.TPM}, {"tpa", s.TPA},
	} {
		if f.value < 0 {
			out = append(out, fmt.Sprintf("negative %s %d", f.name, f.value))
		}
	}
	if s.FGM > s.FGA {
		out = append(out, fmt.Sprintf("fgm %d > fga %d", s.FGM, s.FGA))
	}
	if s.TPM > s.TPA {
		out = append(out, fmt.Sprintf("tpm %d > tpa %d", s.TPM, s.TPA))
	}
	return out
}
