package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// Fetch records one call made to a StubSource.
type Fetch struct {
	League leagues.League
	Team   string
}

// StubSource is a schedule source double keyed by upper-case team abbreviation.
type StubSource struct {
	Schedules map[string][]games.RawGame
	Errors    map[string]error

	mu    sync.Mutex
	calls []Fetch
}

// NewStubSource returns an empty StubSource.
func NewStubSource() *StubSource {
	return &StubSource{
		Schedules: make(map[string][]games.RawGame),
		Errors:    make(map[string]error),
	}
}

// WithSchedule sets the records returned for team.
func (s *StubSource) WithSchedule(team string, records ...games.RawGame) *StubSource {
	s.Schedules[strings.ToUpper(team)] = records
	return s
}

// WithError makes fetches for team fail with err.
func (s *StubSource) WithError(team string, err error) *StubSource {
	s.Errors[strings.ToUpper(team)] = err
	return s
}

// FetchSchedule returns configured records and errors while tracking calls.
func (s *StubSource) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	_ = ctx
	key := strings.ToUpper(teamAbbr)

	s.mu.Lock()
	s.calls = append(s.calls, Fetch{League: league, Team: key})
	s.mu.Unlock()

	if err := s.Errors[key]; err != nil {
		return nil, err
	}
	return s.Schedules[key], nil
}

// Calls returns the fetches made so far.
func (s *StubSource) Calls() []Fetch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Fetch, len(s.calls))
	copy(out, s.calls)
	return out
}

// Home builds a home record.
func Home(date, opponent string) games.RawGame {
	return games.RawGame{Date: date, OpponentAbbr: opponent, Location: games.LocationHome}
}

// Away builds an away record.
func Away(date, opponent string) games.RawGame {
	return games.RawGame{Date: date, OpponentAbbr: opponent, Location: games.LocationAway}
}
