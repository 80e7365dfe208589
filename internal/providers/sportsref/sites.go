package sportsref

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// site describes one Sports-Reference property and the schedule table it publishes.
type site struct {
	baseURL string
	// path formats a schedule page path from the site abbreviation and season.
	path string
	// table selects the schedule table on the page.
	table string

	dateStat     string
	opponentStat string
	locationStat string

	// boxscoreDates reads the calendar date from the row's boxscore link when the date cell omits the year.
	boxscoreDates bool
	lowerAbbr     bool
	season        func(now time.Time) int
	aliases       map[string]string
}

func (s site) url(abbr string, now time.Time) string {
	abbr = toSite(s.aliases, abbr)
	if s.lowerAbbr {
		abbr = strings.ToLower(abbr)
	}
	return s.baseURL + fmt.Sprintf(s.path, abbr, s.season(now))
}

// basketball seasons are named for the year they end in.
func basketballSeason(now time.Time) int {
	if now.Month() >= time.August {
		return now.Year() + 1
	}
	return now.Year()
}

// football seasons are named for the year they start in and run into February.
func footballSeason(now time.Time) int {
	if now.Month() < time.March {
		return now.Year() - 1
	}
	return now.Year()
}

func calendarSeason(now time.Time) int {
	return now.Year()
}

func defaultSites() map[leagues.League]site {
	return map[leagues.League]site{
		leagues.NBA: {
			baseURL:      "https://www.basketball-reference.com",
			path:         "/teams/%s/%d_games.html",
			table:        "table#games",
			dateStat:     "date_game",
			opponentStat: "opp_name",
			locationStat: "game_location",
			season:       basketballSeason,
		},
		leagues.NFL: {
			baseURL:       "https://www.pro-football-reference.com",
			path:          "/teams/%s/%d.htm",
			table:         "table#games",
			dateStat:      "game_date",
			opponentStat:  "opp",
			locationStat:  "game_location",
			boxscoreDates: true,
			lowerAbbr:     true,
			season:        footballSeason,
			aliases:       nflAliases,
		},
		leagues.MLB: {
			baseURL:      "https://www.baseball-reference.com",
			path:         "/teams/%s/%d-schedule-scores.shtml",
			table:        "table#team_schedule",
			dateStat:     "date_game",
			opponentStat: "opp_ID",
			locationStat: "homeORvis",
			season:       calendarSeason,
			aliases:      mlbAliases,
		},
	}
}
