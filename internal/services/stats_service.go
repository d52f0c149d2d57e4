package services

import (
	"context"

	"github.com/vytor/hoopstats/internal/errors"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/stats"
	"github.com/vytor/hoopstats/internal/store"
)

// Overview is the season summary page: record, scoring, totals, the leader
// for one metric, the game log and one game's box score.
type Overview struct {
	Players []models.Player
	Record  stats.Record
	Scoring stats.Scoring
	Totals  stats.TotalsTable
	Metric  models.Metric
	Leader  stats.Leader
	// HasLeader is false only when the player list is empty.
	HasLeader bool
	GameLog   []stats.GameLogRow
	Box       *GameView
}

// GameView is one game's box score with team shooting.
type GameView struct {
	Game   models.Game
	Label  string
	Result stats.Result
	Rows   []stats.BoxRow
	Team   models.StatLine
}

// StatsService builds the tabular views over the current season.
type StatsService interface {
	// Overview uses the first game for the box score when gameID is 0.
	Overview(ctx context.Context, metric models.Metric, gameID int64) (*Overview, error)
	Totals(ctx context.Context) (stats.TotalsTable, error)
	Leader(ctx context.Context, metric models.Metric) (stats.Leader, bool, error)
	GameLog(ctx context.Context) ([]stats.GameLogRow, error)
	// Game uses the most recent game when id is 0.
	Game(ctx context.Context, id int64) (*GameView, error)
	PlayerLog(ctx context.Context, player models.Player) (*stats.PlayerLog, error)
	Series(ctx context.Context, metric models.Metric, players []models.Player) (models.SeriesSet, error)
}

type statsService struct {
	seasons SeasonService
}

func NewStatsService(seasons SeasonService) StatsService {
	return &statsService{seasons: seasons}
}

func (s *statsService) Overview(ctx context.Context, metric models.Metric, gameID int64) (*Overview, error) {
	log := logger.FromContext(ctx)
	log.Debug("building overview: metric=%s, game_id=%d", metric, gameID)

	st, err := s.seasons.Current(ctx)
	if err != nil {
		return nil, err
	}

	games := st.Games()
	totals := stats.Aggregate(st.Players(), games)
	leader, ok := stats.LeaderOf(totals, metric)
	out := &Overview{
		Players:   st.Players(),
		Record:    stats.TeamRecord(games),
		Scoring:   stats.TeamScoring(games),
		Totals:    totals,
		Metric:    metric,
		Leader:    leader,
		HasLeader: ok,
		GameLog:   stats.GameLog(games),
	}

	var g models.Game
	if gameID == 0 {
		g, ok = st.First()
	} else {
		g, ok = st.Game(gameID)
		if !ok {
			log.Debug("overview game not found: id=%d", gameID)
			return nil, errors.NewNotFoundError("game", gameID)
		}
	}
	if ok {
		out.Box = gameView(st.Players(), g)
	}
	return out, nil
}

func (s *statsService) Totals(ctx context.Context) (stats.TotalsTable, error) {
	st, err := s.seasons.Current(ctx)
	if err != nil {
		return stats.TotalsTable{}, err
	}
	return stats.Aggregate(st.Players(), st.Games()), nil
}

func (s *statsService) Leader(ctx context.Context, metric models.Metric) (stats.Leader, bool, error) {
	totals, err := s.Totals(ctx)
	if err != nil {
		return stats.Leader{}, false, err
	}
	leader, ok := stats.LeaderOf(totals, metric)
	logger.FromContext(ctx).Debug("leader: metric=%s, player=%s, defined=%t", metric, leader.Player, leader.Defined())
	return leader, ok, nil
}

func (s *statsService) GameLog(ctx context.Context) ([]stats.GameLogRow, error) {
	st, err := s.seasons.Current(ctx)
	if err != nil {
		return nil, err
	}
	return stats.GameLog(st.Games()), nil
}

func (s *statsService) Game(ctx context.Context, id int64) (*GameView, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting game: id=%d", id)

	st, err := s.seasons.Current(ctx)
	if err != nil {
		return nil, err
	}

	var (
		g  models.Game
		ok bool
	)
	if id == 0 {
		g, ok = st.Latest()
	} else {
		g, ok = st.Game(id)
	}
	if !ok {
		log.Debug("game not found: id=%d", id)
		return nil, errors.NewNotFoundError("game", id)
	}
	return gameView(st.Players(), g), nil
}

func (s *statsService) PlayerLog(ctx context.Context, player models.Player) (*stats.PlayerLog, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting player log: player=%s", player)

	st, err := s.seasons.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !st.HasPlayer(player) {
		log.Debug("player not found: %s", player)
		return nil, errors.NewNotFoundError("player", player)
	}
	pl := stats.PlayerLogOf(player, st.Games())
	return &pl, nil
}

func (s *statsService) Series(ctx context.Context, metric models.Metric, players []models.Player) (models.SeriesSet, error) {
	st, err := s.seasons.Current(ctx)
	if err != nil {
		return models.SeriesSet{}, err
	}
	if err := checkPlayers(st, players); err != nil {
		return models.SeriesSet{}, err
	}
	return stats.BuildSeries(players, st.Games(), metric), nil
}

func gameView(players []models.Player, g models.Game) *GameView {
	return &GameView{
		Game:   g,
		Label:  stats.GameLabel(g),
		Result: stats.ResultOf(g),
		Rows:   stats.BoxScore(players, g),
		Team:   stats.TeamLine(players, g),
	}
}

// checkPlayers rejects selections naming players outside the season.
func checkPlayers(st *store.Store, players []models.Player) error {
	for _, p := range players {
		if !st.HasPlayer(p) {
			return errors.NewValidationError("players", "unknown player "+string(p))
		}
	}
	return nil
}
