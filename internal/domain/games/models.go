package games

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// Location is the home/away state of a game. Unknown is distinct from both sides.
type Location int

const (
	LocationUnknown Location = iota
	LocationHome
	LocationAway
)

// UnknownOpponent is used when a provider record does not name the opponent.
const UnknownOpponent = "Unknown"

// String implements fmt.Stringer.
func (l Location) String() string {
	switch l {
	case LocationHome:
		return "home"
	case LocationAway:
		return "away"
	default:
		return "unknown"
	}
}

// IsHome reports a known home game.
func (l Location) IsHome() bool { return l == LocationHome }

// IsKnown reports whether the provider said home or away.
func (l Location) IsKnown() bool { return l == LocationHome || l == LocationAway }

// MarshalJSON encodes home/away as true/false and unknown as null.
func (l Location) MarshalJSON() ([]byte, error) {
	switch l {
	case LocationHome:
		return []byte("true"), nil
	case LocationAway:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts true/false/null.
func (l *Location) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = LocationFromBool(v)
	return nil
}

// LocationFromBool converts a nullable home flag.
func LocationFromBool(home *bool) Location {
	if home == nil {
		return LocationUnknown
	}
	if *home {
		return LocationHome
	}
	return LocationAway
}

// RawGame is a provider record before date parsing and opponent resolution.
type RawGame struct {
	Date         string
	OpponentAbbr string
	Location     Location
}

// Game is a provider-agnostic game matched for a query date.
type Game struct {
	League       leagues.League `json:"league"`
	LeagueName   string         `json:"leagueName"`
	Team         string         `json:"team"`
	TeamAbbr     string         `json:"teamAbbr"`
	Opponent     string         `json:"opponent"`
	OpponentAbbr string         `json:"opponentAbbr"`
	Location     Location       `json:"isHome"`
	Date         time.Time      `json:"-"`
	DateTime     string         `json:"datetime,omitempty"`
}

// DateString returns the game's calendar date as YYYY-MM-DD.
func (g Game) DateString() string {
	return g.Date.Format("2006-01-02")
}

// MarshalJSON adds the formatted date alongside the exported fields.
func (g Game) MarshalJSON() ([]byte, error) {
	type alias Game
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias: alias(g), Date: g.DateString()})
}

// DaySchedule holds the games found for one calendar date.
type DaySchedule struct {
	Date  time.Time `json:"-"`
	Games []Game    `json:"games"`
}

// Week is the ordered set of days in a weekly scan that have at least one game.
type Week []DaySchedule

// Dates returns the calendar dates present in the week.
func (w Week) Dates() []time.Time {
	out := make([]time.Time, 0, len(w))
	for _, day := range w {
		out = append(out, day.Date)
	}
	return out
}

// Games flattens the week in date order.
func (w Week) Games() []Game {
	var out []Game
	for _, day := range w {
		out = append(out, day.Games...)
	}
	return out
}

// Merge folds another week into w, keeping dates in ascending order.
func (w Week) Merge(other Week) Week {
	merged := make(Week, 0, len(w)+len(other))
	merged = append(merged, w...)
	for _, day := range other {
		placed := false
		for i := range merged {
			if merged[i].Date.Equal(day.Date) {
				merged[i].Games = append(append([]Game(nil), merged[i].Games...), day.Games...)
				placed = true
				break
			}
		}
		if !placed {
			merged = append(merged, day)
		}
	}
	sortDays(merged)
	return merged
}

func sortDays(w Week) {
	sort.SliceStable(w, func(i, j int) bool { return w[i].Date.Before(w[j].Date) })
}
