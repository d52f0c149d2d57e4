package services

import (
	"context"
	stderrors "errors"
	"sync/atomic"

	"github.com/vytor/hoopstats/internal/errors"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/repository"
	"github.com/vytor/hoopstats/internal/store"
)

// ErrSeasonNotLoaded is returned by Current before the first successful Load.
var ErrSeasonNotLoaded = stderrors.New("season not loaded")

// SeasonService loads the season once at the boundary, validates it and
// publishes it as a read-only store.
type SeasonService interface {
	// Load replaces the current season. On failure the previous season, if
	// any, stays current.
	Load(ctx context.Context) (*store.Store, error)
	Current(ctx context.Context) (*store.Store, error)
	Source() string
}

type seasonService struct {
	repo    repository.SeasonRepository
	current atomic.Pointer[store.Store]
}

func NewSeasonService(repo repository.SeasonRepository) SeasonService {
	return &seasonService{repo: repo}
}

// NewStaticSeasonService serves an already loaded store.
func NewStaticSeasonService(st *store.Store) SeasonService {
	s := &seasonService{}
	s.current.Store(st)
	return s
}

func (s *seasonService) Source() string {
	if s.repo == nil {
		return "static"
	}
	return s.repo.Source()
}

func (s *seasonService) Load(ctx context.Context) (*store.Store, error) {
	log := logger.FromContext(ctx).WithField("source", s.Source())
	if s.repo == nil {
		return s.Current(ctx)
	}
	log.Debug("loading season")

	season, err := s.repo.Load(ctx)
	if err != nil {
		log.Error("failed to load season: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if problems := ValidateSeason(season); len(problems) > 0 {
		for _, p := range problems {
			log.Warn("invalid season data: %s", p)
		}
		return nil, errors.NewInvalidSeasonError(problems)
	}

	st := store.New(season)
	s.current.Store(st)
	log.Info("season loaded: players=%d, games=%d, fingerprint=%s", len(st.Players()), len(st.Games()), st.Fingerprint())
	return st, nil
}

func (s *seasonService) Current(ctx context.Context) (*store.Store, error) {
	st := s.current.Load()
	if st == nil {
		logger.FromContext(ctx).Warn("season requested before load")
		return nil, errors.NewInternalError(ErrSeasonNotLoaded)
	}
	return st, nil
}
