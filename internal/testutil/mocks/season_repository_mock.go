package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/hoopstats/internal/models"
)

// MockSeasonRepository is a mock implementation of repository.SeasonRepository
type MockSeasonRepository struct {
	mock.Mock
}

func (m *MockSeasonRepository) Load(ctx context.Context) (models.Season, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return models.Season{}, args.Error(1)
	}
	return args.Get(0).(models.Season), args.Error(1)
}

func (m *MockSeasonRepository) Source() string {
	args := m.Called()
	return args.String(0)
}
