package preferences

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

var (
	// ErrMultipleLeagues is returned when team flags for more than one league are given at once.
	ErrMultipleLeagues = errors.New("teams for more than one sport specified")
	// ErrNoTeams is returned when a league is selected without any team abbreviations.
	ErrNoTeams = errors.New("no teams specified")
)

// UnsupportedSportError reports a sport selector that maps to no league.
type UnsupportedSportError struct {
	Sport string
}

func (e *UnsupportedSportError) Error() string {
	return fmt.Sprintf("Sport %s is not supported.", e.Sport)
}

// MissingTeamsError reports a selected league with no teams. It matches ErrNoTeams.
type MissingTeamsError struct {
	League     leagues.League
	LeagueName string
}

func (e *MissingTeamsError) Error() string {
	return fmt.Sprintf("No %s teams specified. Please provide team abbreviations using --%s-teams.", e.LeagueName, e.League)
}

// Is lets errors.Is match ErrNoTeams.
func (e *MissingTeamsError) Is(target error) bool {
	return target == ErrNoTeams
}

// InvalidTeamsError lists every abbreviation that is not in the league, in input order.
type InvalidTeamsError struct {
	League     leagues.League
	LeagueName string
	Teams      []string
}

func (e *InvalidTeamsError) Error() string {
	verb := "are"
	if len(e.Teams) == 1 {
		verb = "is"
	}
	return fmt.Sprintf("%s %s not valid %s team abbreviation(s).", strings.Join(e.Teams, ", "), verb, e.LeagueName)
}

// AsInvalidTeams extracts an InvalidTeamsError from err.
func AsInvalidTeams(err error) (*InvalidTeamsError, bool) {
	var invalid *InvalidTeamsError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
