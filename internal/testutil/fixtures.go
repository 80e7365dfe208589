package testutil

import (
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// SampleGame returns a Lakers home game against the Celtics on date.
func SampleGame(date time.Time) games.Game {
	return games.Game{
		League:       leagues.NBA,
		LeagueName:   "Basketball (NBA)",
		Team:         "Los Angeles Lakers",
		TeamAbbr:     "LAL",
		Opponent:     "Boston Celtics",
		OpponentAbbr: "BOS",
		Location:     games.LocationHome,
		Date:         date,
	}
}

// Date builds a calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
