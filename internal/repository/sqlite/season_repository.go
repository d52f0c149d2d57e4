package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/models"
	"github.com/vytor/hoopstats/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type seasonRepository struct {
	db     *sql.DB
	source string
}

// NewSeasonRepository reads seasons from the players, games and stat_lines tables.
func NewSeasonRepository(db *sql.DB, source string) repository.SeasonRepository {
	return &seasonRepository{db: db, source: source}
}

func (r *seasonRepository) Source() string {
	return "sqlite:" + r.source
}

func (r *seasonRepository) Load(ctx context.Context) (models.Season, error) {
	log := logger.FromContext(ctx).WithPrefix("season_repo")
	log.Debug("loading season from sqlite")

	players, ids, err := r.players(ctx)
	if err != nil {
		log.Error("failed to load players: %v", err)
		return models.Season{}, err
	}
	games, err := r.games(ctx)
	if err != nil {
		log.Error("failed to load games: %v", err)
		return models.Season{}, err
	}
	if err := r.attachLines(ctx, games, ids); err != nil {
		log.Error("failed to load stat lines: %v", err)
		return models.Season{}, err
	}

	season := models.Season{Players: players, Games: make([]models.Game, 0, len(games))}
	for _, g := range games {
		season.Games = append(season.Games, *g)
	}
	log.Debug("season loaded: players=%d, games=%d", len(season.Players), len(season.Games))
	return season, nil
}

func (r *seasonRepository) players(ctx context.Context) ([]models.Player, map[int64]models.Player, error) {
	query, args, err := sqlBuilder.Select("id", "name").From("players").OrderBy("sort_order", "id").ToSql()
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var players []models.Player
	ids := make(map[int64]models.Player)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, err
		}
		players = append(players, models.Player(name))
		ids[id] = models.Player(name)
	}
	return players, ids, rows.Err()
}

// games returns pointers in id order so stat lines can be attached in place.
func (r *seasonRepository) games(ctx context.Context) ([]*models.Game, error) {
	query, args, err := sqlBuilder.Select("id", "played_on", "points_for", "points_against").
		From("games").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var (
			g        models.Game
			playedOn string
		)
		if err := rows.Scan(&g.ID, &playedOn, &g.For, &g.Against); err != nil {
			return nil, err
		}
		if g.Date, err = models.ParseDate(playedOn); err != nil {
			return nil, fmt.Errorf("game %d: %w", g.ID, err)
		}
		g.Players = make(map[models.Player]models.StatLine)
		games = append(games, &g)
	}
	return games, rows.Err()
}

func (r *seasonRepository) attachLines(ctx context.Context, games []*models.Game, players map[int64]models.Player) error {
	byID := make(map[int64]*models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	query, args, err := sqlBuilder.Select(
		"game_id", "player_id", "pts", "reb", "ast", "stl", "blk", "fgm", "fga", "tpm", "tpa",
	).From("stat_lines").ToSql()
	if err != nil {
		return err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			gameID, playerID int64
			s                models.StatLine
		)
		if err := rows.Scan(&gameID, &playerID, &s.Pts, &s.Reb, &s.Ast, &s.Stl, &s.Blk, &s.FGM, &s.FGA, &s.TPM, &s.TPA); err != nil {
			return err
		}
		g, ok := byID[gameID]
		if !ok {
			return fmt.Errorf("stat line references unknown game %d", gameID)
		}
		p, ok := players[playerID]
		if !ok {
			return fmt.Errorf("stat line references unknown player %d", playerID)
		}
		g.Players[p] = s
	}
	return rows.Err()
}
