package api

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/stats"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"pct": stats.FormatPct,
		"one": stats.FormatOne,

		// metricValue formats a leader or total value for the metric.
		"metricValue": stats.FormatMetric,

		"makes": stats.FormatMakes,
		"perGame": func(t models.Totals, m models.Metric) string {
			return stats.FormatOne(t.PerGame(m))
		},
		// has reports whether the selection contains the player.
		"has": func(selected []models.Player, p models.Player) bool {
			for _, s := range selected {
				if s == p {
					return true
				}
			}
			return false
		},
		"urlquery": func(s string) string {
			return url.QueryEscape(s)
		},
		"pathescape": func(p models.Player) string {
			return url.PathEscape(string(p))
		},
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}

// LoadTemplates parses the layouts and pages found in fsys. Each page defines
// a template named after its path, e.g. "pages/overview.html".
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	t := template.New("base").Funcs(templateFuncs())

	patterns := []string{
		"templates/layouts/*.html",
		"templates/pages/*.html",
		"templates/partials/*.html",
	}
	for _, p := range patterns {
		if matches, _ := fs.Glob(fsys, p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseFS(fsys, p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
