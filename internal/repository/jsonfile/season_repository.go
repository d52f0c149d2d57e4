// Package jsonfile reads a season from a games.json document.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/repository"
)

type seasonRepository struct {
	path string
}

func NewSeasonRepository(path string) repository.SeasonRepository {
	return &seasonRepository{path: path}
}

func (r *seasonRepository) Source() string {
	return "json:" + r.path
}

func (r *seasonRepository) Load(ctx context.Context) (models.Season, error) {
	log := logger.FromContext(ctx).WithPrefix("season_repo")
	log.Debug("reading season file: path=%s", r.path)

	f, err := os.Open(r.path)
	if err != nil {
		log.Error("failed to open season file: %v", err)
		return models.Season{}, err
	}
	defer f.Close()

	season, err := Decode(f)
	if err != nil {
		log.Error("failed to decode season file: %v", err)
		return models.Season{}, fmt.Errorf("%s: %w", r.path, err)
	}
	log.Debug("season file read: players=%d, games=%d", len(season.Players), len(season.Games))
	return season, nil
}

// Decode parses a games.json document. Unknown fields are ignored and a game
// without a players object has no stat lines.
func Decode(rd io.Reader) (models.Season, error) {
	var season models.Season
	if err := json.NewDecoder(rd).Decode(&season); err != nil {
		return models.Season{}, fmt.Errorf("decode season: %w", err)
	}
	for i := range season.Games {
		if season.Games[i].Players == nil {
			season.Games[i].Players = map[models.Player]models.StatLine{}
		}
	}
	return season, nil
}
