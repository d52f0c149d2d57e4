package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/hoopstats/internal/errors"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/services"
	"github.com/vytor/hoopstats/internal/testutil"
	"github.com/vytor/hoopstats/internal/testutil/mocks"
)

func TestSeasonService_Load(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockSeasonRepository)
	repo.On("Source").Return("json:games.json")
	repo.On("Load", mock.Anything).Return(testutil.SampleSeason(), nil)

	svc := services.NewSeasonService(repo)
	st, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, st.Games(), 4)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Same(t, st, current)
	assert.Equal(t, "json:games.json", svc.Source())
	repo.AssertExpectations(t)
}

func TestSeasonService_CurrentBeforeLoad(t *testing.T) {
	svc := services.NewSeasonService(new(mocks.MockSeasonRepository))

	_, err := svc.Current(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrSeasonNotLoaded)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
}

func TestSeasonService_LoadFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockSeasonRepository)
	repo.On("Source").Return("sqlite:season.db")
	repo.On("Load", mock.Anything).Return(testutil.SampleSeason(), nil).Once()
	repo.On("Load", mock.Anything).Return(nil, stderrors.New("database is locked")).Once()

	svc := services.NewSeasonService(repo)
	first, err := svc.Load(ctx)
	require.NoError(t, err)

	_, err = svc.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Same(t, first, current)
}

func TestSeasonService_LoadRejectsInvalidSeason(t *testing.T) {
	repo := new(mocks.MockSeasonRepository)
	repo.On("Source").Return("json:bad.json")
	repo.On("Load", mock.Anything).Return(models.Season{
		Players: []models.Player{"A"},
		Games: []models.Game{{ID: 1, Players: map[models.Player]models.StatLine{
			"A": {FGM: 9, FGA: 8},
		}}},
	}, nil)

	svc := services.NewSeasonService(repo)
	_, err := svc.Load(context.Background())

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidSeason, appErr.Code)
	assert.Equal(t, []string{"game 1: A: fgm 9 > fga 8"}, appErr.Problems)

	_, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, services.ErrSeasonNotLoaded)
}
