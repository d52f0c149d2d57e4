package repository

import (
	"context"

	"github.com/vytor/hoopstats/internal/models"
)

// SeasonRepository loads a complete season from its backing source.
type SeasonRepository interface {
	Load(ctx context.Context) (models.Season, error)
	// Source describes where the season comes from, for logs and readiness output.
	Source() string
}
