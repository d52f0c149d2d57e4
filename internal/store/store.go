// Package store holds a loaded season as a read-only in-memory table.
package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/vytor/hoopstats/internal/models"
)

// Store is immutable after New. Slices returned by its accessors are shared
// with the store and must not be modified.
type Store struct {
	players     []models.Player
	playerIndex map[models.Player]int
	games       []models.Game
	gameIndex   map[int64]int
	fingerprint string
}

// New builds a store from a season, ordering games by ascending id.
func New(season models.Season) *Store {
	players := append([]models.Player(nil), season.Players...)
	games := append([]models.Game(nil), season.Games...)
	sort.SliceStable(games, func(i, j int) bool { return games[i].ID < games[j].ID })

	s := &Store{
		players:     players,
		playerIndex: make(map[models.Player]int, len(players)),
		games:       games,
		gameIndex:   make(map[int64]int, len(games)),
	}
	for i, p := range players {
		if _, dup := s.playerIndex[p]; !dup {
			s.playerIndex[p] = i
		}
	}
	for i, g := range games {
		if _, dup := s.gameIndex[g.ID]; !dup {
			s.gameIndex[g.ID] = i
		}
	}
	s.fingerprint = fingerprint(models.Season{Players: players, Games: games})
	return s
}

// Players returns the player list in season order.
func (s *Store) Players() []models.Player {
	return s.players
}

// Games returns every game in ascending id order.
func (s *Store) Games() []models.Game {
	return s.games
}

func (s *Store) Game(id int64) (models.Game, bool) {
	i, ok := s.gameIndex[id]
	if !ok {
		return models.Game{}, false
	}
	return s.games[i], true
}

func (s *Store) HasPlayer(p models.Player) bool {
	_, ok := s.playerIndex[p]
	return ok
}

// First returns the earliest game.
func (s *Store) First() (models.Game, bool) {
	if len(s.games) == 0 {
		return models.Game{}, false
	}
	return s.games[0], true
}

// Latest returns the most recent game.
func (s *Store) Latest() (models.Game, bool) {
	if len(s.games) == 0 {
		return models.Game{}, false
	}
	return s.games[len(s.games)-1], true
}

// Fingerprint identifies the season contents. Two stores built from equal
// seasons share a fingerprint.
func (s *Store) Fingerprint() string {
	return s.fingerprint
}

func fingerprint(season models.Season) string {
	// Map keys are emitted sorted, so the encoding is stable.
	b, err := json.Marshal(season)
	if err != nil {
		return "unhashable"
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}
