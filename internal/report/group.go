package report

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

const descriptionLayout = "January 02, 2006"

// LeagueGroup holds one league's games in input order.
type LeagueGroup struct {
	League     leagues.League
	LeagueName string
	Games      []games.Game
}

// GroupByLeague buckets games by league, keeping leagues in first-seen order.
func GroupByLeague(list []games.Game) []LeagueGroup {
	var groups []LeagueGroup
	index := make(map[leagues.League]int)
	for _, g := range list {
		i, ok := index[g.League]
		if !ok {
			i = len(groups)
			index[g.League] = i
			groups = append(groups, LeagueGroup{League: g.League, LeagueName: g.LeagueName})
		}
		groups[i].Games = append(groups[i].Games, g)
	}
	return groups
}

// DateDescription names target relative to today: "today", "tomorrow" or "January 02, 2006".
func DateDescription(target, today time.Time) string {
	target = dateOnly(target)
	today = dateOnly(today)
	switch {
	case target.Equal(today):
		return "today"
	case target.Equal(today.AddDate(0, 0, 1)):
		return "tomorrow"
	default:
		return target.Format(descriptionLayout)
	}
}

// WeekDescription describes a window of days starting today.
func WeekDescription(today time.Time, days int) string {
	if days < 1 {
		days = 1
	}
	end := dateOnly(today).AddDate(0, 0, days-1)
	return fmt.Sprintf("this week (%s - %s)", dateOnly(today).Format(descriptionLayout), end.Format(descriptionLayout))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
