package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by season files and the sqlite schema.
const DateLayout = "2006-01-02"

// Player is identified by name, unique within a season.
type Player string

// Season is the loaded data object: the ordered player list and every game.
type Season struct {
	Players []Player `json:"players"`
	Games   []Game   `json:"games"`
}

type Game struct {
	ID      int64               `json:"id"`
	Date    Date                `json:"date"`
	For     int                 `json:"for"`
	Against int                 `json:"against"`
	Players map[Player]StatLine `json:"players"`
}

// Line returns the player's stat line for the game. The bool is false when the
// player did not appear, which is distinct from a line of zeros.
func (g Game) Line(p Player) (StatLine, bool) {
	s, ok := g.Players[p]
	return s, ok
}

// Diff is the final margin from the team's point of view.
func (g Game) Diff() int {
	return g.For - g.Against
}

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
