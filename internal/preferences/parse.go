package preferences

import "github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"

// ResolveSport maps a sport selector, either "1"/"2"/"3" or a league key, to a league.
func ResolveSport(raw string) (leagues.League, bool) {
	if l, ok := leagues.FromSportNumber(raw); ok {
		return l, true
	}
	return leagues.ParseLeague(raw)
}

// Parse builds preferences from a sport selector and per-league comma-separated team flags.
// Only one league's flag may be set. An empty sport is inferred from the single team flag given.
func Parse(reg *leagues.Registry, sport string, teamFlags map[leagues.League]string) (Preferences, error) {
	var (
		flagged  leagues.League
		provided int
	)
	for league, raw := range teamFlags {
		if len(SplitTeams(raw)) > 0 {
			flagged = league
			provided++
		}
	}
	if provided > 1 {
		return Preferences{}, ErrMultipleLeagues
	}

	league := flagged
	if sport != "" {
		resolved, ok := ResolveSport(sport)
		if !ok {
			return Preferences{}, &UnsupportedSportError{Sport: sport}
		}
		league = resolved
	}
	if league == "" {
		return Preferences{}, ErrNoTeams
	}

	return New(reg, league, SplitTeams(teamFlags[league]))
}
