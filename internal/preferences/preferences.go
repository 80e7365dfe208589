package preferences

import (
	"strings"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// Preferences maps leagues to favourite team abbreviations. Values are validated on construction
// and keep the order leagues were added in.
type Preferences struct {
	order []leagues.League
	teams map[leagues.League][]string
}

// New validates teams for league against reg and returns single-league preferences.
func New(reg *leagues.Registry, league leagues.League, teams []string) (Preferences, error) {
	var p Preferences
	return p.With(reg, league, teams)
}

// With returns a copy of p with league's teams validated and set. Entry points accept one league at a
// time through Parse and New; With composes several for programmatic callers such as tests and the
// schedule package, whose weekly merge orders games by date rather than by league.
func (p Preferences) With(reg *leagues.Registry, league leagues.League, teams []string) (Preferences, error) {
	if reg == nil {
		reg = leagues.Default()
	}
	info, ok := reg.Lookup(league)
	if !ok {
		return p, &UnsupportedSportError{Sport: string(league)}
	}
	teams = normalize(teams)
	if len(teams) == 0 {
		return p, &MissingTeamsError{League: league, LeagueName: info.Name}
	}
	if err := Validate(reg, league, teams); err != nil {
		return p, err
	}

	out := Preferences{teams: make(map[leagues.League][]string, len(p.teams)+1)}
	for _, l := range p.order {
		out.order = append(out.order, l)
		out.teams[l] = p.teams[l]
	}
	if _, exists := out.teams[league]; !exists {
		out.order = append(out.order, league)
	}
	out.teams[league] = teams
	return out, nil
}

// Validate reports every abbreviation in teams that is not in league.
func Validate(reg *leagues.Registry, league leagues.League, teams []string) error {
	if reg == nil {
		reg = leagues.Default()
	}
	var invalid []string
	for _, t := range teams {
		if !reg.IsValidAbbreviation(t, league) {
			invalid = append(invalid, t)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return &InvalidTeamsError{League: league, LeagueName: reg.Name(league), Teams: invalid}
}

// Leagues returns the configured leagues in insertion order.
func (p Preferences) Leagues() []leagues.League {
	out := make([]leagues.League, len(p.order))
	copy(out, p.order)
	return out
}

// Teams returns the abbreviations for league, lower-cased.
func (p Preferences) Teams(league leagues.League) []string {
	teams := p.teams[league]
	out := make([]string, len(teams))
	copy(out, teams)
	return out
}

// Has reports whether team is a favourite in league.
func (p Preferences) Has(league leagues.League, team string) bool {
	team = strings.ToLower(strings.TrimSpace(team))
	for _, t := range p.teams[league] {
		if t == team {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no league has teams.
func (p Preferences) IsEmpty() bool {
	return len(p.order) == 0
}

// Map renders the {league}_team shape used in logs and JSON responses.
func (p Preferences) Map() map[string][]string {
	out := make(map[string][]string, len(p.order))
	for _, l := range p.order {
		out[string(l)+"_team"] = p.Teams(l)
	}
	return out
}

// SplitTeams splits a comma-separated list, trimming and lower-casing each entry and dropping blanks.
func SplitTeams(raw string) []string {
	return normalize(strings.Split(raw, ","))
}

func normalize(teams []string) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
