package leagues

import "strings"

// Team pairs a full name with its league-unique abbreviation.
type Team struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Info describes a supported league.
type Info struct {
	ID    League `json:"id"`
	Name  string `json:"name"`
	Teams []Team `json:"teams"`
}

// Registry is an immutable table of leagues and their teams.
type Registry struct {
	order   []League
	leagues map[League]Info
	byAbbr  map[League]map[string]string
}

// NewRegistry builds a registry from league definitions, preserving their order.
func NewRegistry(infos ...Info) *Registry {
	r := &Registry{
		leagues: make(map[League]Info, len(infos)),
		byAbbr:  make(map[League]map[string]string, len(infos)),
	}
	for _, info := range infos {
		teams := make([]Team, len(info.Teams))
		copy(teams, info.Teams)
		info.Teams = teams

		index := make(map[string]string, len(teams))
		for _, t := range teams {
			index[strings.ToLower(t.Abbreviation)] = t.Name
		}

		r.order = append(r.order, info.ID)
		r.leagues[info.ID] = info
		r.byAbbr[info.ID] = index
	}
	return r
}

var defaultRegistry = NewRegistry(builtin...)

// Default returns the built-in NBA/NFL/MLB registry.
func Default() *Registry {
	return defaultRegistry
}

// All returns supported leagues in registry order.
func (r *Registry) All() []League {
	if r == nil {
		return nil
	}
	out := make([]League, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the league definition.
func (r *Registry) Lookup(l League) (Info, bool) {
	if r == nil {
		return Info{}, false
	}
	info, ok := r.leagues[l]
	return info, ok
}

// Name returns the display name of a league, or the raw key when unsupported.
func (r *Registry) Name(l League) string {
	if info, ok := r.Lookup(l); ok {
		return info.Name
	}
	return string(l)
}

// Teams returns a copy of the league's teams in table order.
func (r *Registry) Teams(l League) []Team {
	info, ok := r.Lookup(l)
	if !ok {
		return nil
	}
	out := make([]Team, len(info.Teams))
	copy(out, info.Teams)
	return out
}

// TeamFullName resolves an abbreviation (any case) to its full team name within a league.
// Unsupported leagues and unknown abbreviations report false.
func (r *Registry) TeamFullName(abbr string, l League) (string, bool) {
	if r == nil {
		return "", false
	}
	index, ok := r.byAbbr[l]
	if !ok {
		return "", false
	}
	name, ok := index[strings.ToLower(strings.TrimSpace(abbr))]
	return name, ok
}

// IsValidAbbreviation reports whether abbr names a team in the league.
func (r *Registry) IsValidAbbreviation(abbr string, l League) bool {
	_, ok := r.TeamFullName(abbr, l)
	return ok
}
