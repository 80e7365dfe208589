package schedule

import (
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// EventKind distinguishes progress events.
type EventKind int

const (
	// EventSearchStarted fires once per league and target date before any team is checked.
	EventSearchStarted EventKind = iota
	// EventTeamChecked fires once per team after its schedule was scanned or skipped.
	EventTeamChecked
)

// Status is the outcome of checking one team for one date.
type Status string

const (
	StatusFound       Status = "found"
	StatusNoGame      Status = "no_game"
	StatusUnknownTeam Status = "unknown_team"
	StatusRateLimited Status = "rate_limited"
	StatusBlocked     Status = "blocked"
	StatusError       Status = "error"
	// StatusSkipped marks a team not fetched because it was refused earlier in the same scan.
	StatusSkipped     Status = "skipped"
)

// Event is a progress notification emitted while a scan runs. Events never affect results.
type Event struct {
	Kind       EventKind
	League     leagues.League
	LeagueName string
	// Date is the target date; Today is the reference-zone date when the scan ran.
	Date  time.Time
	Today time.Time

	TeamAbbr string
	Team     string
	Status   Status
	Game     *games.Game
	Err      error
}

// Observer receives progress events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f.
func (f ObserverFunc) Observe(e Event) { f(e) }

// NopObserver discards events.
type NopObserver struct{}

// Observe does nothing.
func (NopObserver) Observe(Event) {}

// MultiObserver fans events out to each observer in order.
type MultiObserver []Observer

// Observe forwards e to every non-nil observer.
func (m MultiObserver) Observe(e Event) {
	for _, o := range m {
		if o != nil {
			o.Observe(e)
		}
	}
}
