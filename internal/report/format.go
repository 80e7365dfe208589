package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
)

const (
	venueHome    = "🏠"
	venueAway    = "✈️"
	venueUnknown = "❔"

	noGamesLine = "No games scheduled."
	whenLayout  = "01/02/2006 03:04 PM MST"
	dayLayout   = "01/02/2006"
)

// WeekLabel heads the weekly notification summary.
const WeekLabel = "This Week's Games:"

// NoGamesMessage is shown instead of an empty table.
func NoGamesMessage(description string) string {
	if description == "" {
		return "📅 No games scheduled for your favorite teams"
	}
	return fmt.Sprintf("📅 No games scheduled for your favorite teams %s", description)
}

// Summary builds the compact text forwarded to notifications: the label, then one line per game.
func Summary(list []games.Game, label string) string {
	lines := []string{label}
	if len(list) == 0 {
		lines = append(lines, noGamesLine)
	}
	for _, g := range list {
		lines = append(lines, fmt.Sprintf("🏆%s vs %s %s", g.Team, g.Opponent, Venue(g.Location)))
	}
	return strings.Join(lines, "\n")
}

// Venue returns the icon for a home/away state.
func Venue(l games.Location) string {
	switch l {
	case games.LocationHome:
		return venueHome
	case games.LocationAway:
		return venueAway
	default:
		return venueUnknown
	}
}

// Matchup renders "{team} vs {opponent}" for home or unknown games and "{team} @ {opponent}" away.
func Matchup(g games.Game) string {
	if g.Location == games.LocationAway {
		return fmt.Sprintf("%s @ %s", g.Team, g.Opponent)
	}
	return fmt.Sprintf("%s vs %s", g.Team, g.Opponent)
}

// When renders the game's start converted to loc, or its date with "TBD" when no timestamp is known.
func When(g games.Game, loc *time.Location) string {
	if start, ok := startTime(g.DateTime); ok {
		if loc != nil {
			start = start.In(loc)
		}
		return start.Format(whenLayout)
	}
	if g.Date.IsZero() {
		return "TBD"
	}
	return g.Date.Format(dayLayout) + " TBD"
}

func startTime(raw string) (time.Time, bool) {
	if !strings.Contains(raw, "T") {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
