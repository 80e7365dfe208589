package espn

import (
	"strings"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// sportPaths maps leagues to ESPN's sport/league URL segment.
var sportPaths = map[leagues.League]string{
	leagues.NFL: "football/nfl",
	leagues.NBA: "basketball/nba",
	leagues.MLB: "baseball/mlb",
}

// registryToESPN lists abbreviations where ESPN differs from the league registry.
var registryToESPN = map[leagues.League]map[string]string{
	leagues.NBA: {
		"BRK": "BKN",
		"CHO": "CHA",
		"GSW": "GS",
		"NOP": "NO",
		"NYK": "NY",
		"PHO": "PHX",
		"SAS": "SA",
		"UTA": "UTAH",
		"WAS": "WSH",
	},
	leagues.NFL: {
		"WAS": "WSH",
	},
	leagues.MLB: {
		"CWS": "CHW",
	},
}

var espnToRegistry = invert(registryToESPN)

func invert(in map[leagues.League]map[string]string) map[leagues.League]map[string]string {
	out := make(map[leagues.League]map[string]string, len(in))
	for league, aliases := range in {
		rev := make(map[string]string, len(aliases))
		for reg, espn := range aliases {
			rev[espn] = reg
		}
		out[league] = rev
	}
	return out
}

// toESPN converts a registry abbreviation to ESPN's, upper-cased.
func toESPN(league leagues.League, abbr string) string {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	if alias, ok := registryToESPN[league][abbr]; ok {
		return alias
	}
	return abbr
}

// fromESPN converts an ESPN abbreviation back to the registry's.
func fromESPN(league leagues.League, abbr string) string {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	if alias, ok := espnToRegistry[league][abbr]; ok {
		return alias
	}
	return abbr
}
