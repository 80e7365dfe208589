package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/dates"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

// WeekDays is the length of the weekly scan window, today inclusive.
const WeekDays = 7

// Finder matches favourite teams' schedules against target dates.
type Finder struct {
	source   providers.ScheduleSource
	registry *leagues.Registry
	loc      *time.Location
	now      func() time.Time
	parser   *dates.Parser
	observer Observer
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// Option customises a Finder.
type Option func(*Finder)

// WithRegistry replaces the built-in league table.
func WithRegistry(r *leagues.Registry) Option {
	return func(f *Finder) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithLocation sets the reference zone for "today" and timestamp conversion.
func WithLocation(loc *time.Location) Option {
	return func(f *Finder) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(f *Finder) {
		if now != nil {
			f.now = now
		}
	}
}

// WithObserver subscribes o to progress events.
func WithObserver(o Observer) Option {
	return func(f *Finder) {
		if o != nil {
			f.observer = o
		}
	}
}

// WithRecorder records games-found metrics.
func WithRecorder(r *metrics.Recorder) Option {
	return func(f *Finder) { f.recorder = r }
}

// WithLogger sets the logger used for skipped teams.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFinder builds a Finder over source.
func NewFinder(source providers.ScheduleSource, opts ...Option) *Finder {
	f := &Finder{
		source:   source,
		registry: leagues.Default(),
		loc:      timeutil.ResolveLocation(timeutil.DefaultZone),
		now:      time.Now,
		observer: NopObserver{},
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.parser = dates.NewParser(f.loc).WithClock(f.now)
	return f
}

// WithObserver returns a copy of f that reports progress to o instead.
func (f *Finder) WithObserver(o Observer) *Finder {
	cp := *f
	if o == nil {
		o = NopObserver{}
	}
	cp.observer = o
	return &cp
}

// Today returns the current calendar date in the reference zone.
func (f *Finder) Today() time.Time {
	return timeutil.Today(f.now(), f.loc)
}

// FindGames checks each team, in input order, for a game on target. A team contributes at most one game.
// Unknown teams and failed fetches are reported to the observer and skipped. The error is non-nil only
// for an unsupported league or a canceled context, in which case the games found so far are returned.
func (f *Finder) FindGames(ctx context.Context, teams []string, league leagues.League, target time.Time) ([]games.Game, error) {
	return f.findGames(ctx, teams, league, target, nil)
}

// refused holds the teams whose source answered rate limited or blocked during one query.
// Those teams are not fetched again until the query ends.
type refused map[string]bool

func (f *Finder) findGames(ctx context.Context, teams []string, league leagues.League, target time.Time, skip refused) ([]games.Game, error) {
	info, ok := f.registry.Lookup(league)
	if !ok {
		return nil, fmt.Errorf("%w: %q", providers.ErrUnsupportedLeague, league)
	}
	if f.source == nil {
		return nil, providers.ErrProviderUnavailable
	}
	target = timeutil.DateOf(target)
	today := f.Today()

	found := make([]games.Game, 0, len(teams))
	if len(teams) == 0 {
		return found, nil
	}

	f.observer.Observe(Event{
		Kind:       EventSearchStarted,
		League:     league,
		LeagueName: info.Name,
		Date:       target,
		Today:      today,
	})

	for _, abbr := range teams {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		game, ok := f.checkTeam(ctx, info, abbr, target, today, skip)
		if ok {
			found = append(found, game)
		}
	}

	f.recorder.RecordGamesFound(string(league), len(found))
	return found, nil
}

func (f *Finder) checkTeam(ctx context.Context, info leagues.Info, abbr string, target, today time.Time, skip refused) (games.Game, bool) {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	event := Event{
		Kind:       EventTeamChecked,
		League:     info.ID,
		LeagueName: info.Name,
		Date:       target,
		Today:      today,
		TeamAbbr:   abbr,
	}

	name, ok := f.registry.TeamFullName(abbr, info.ID)
	if !ok {
		logging.Warn(f.logger, "unknown team skipped",
			logging.FieldLeague, string(info.ID),
			logging.FieldTeam, abbr,
		)
		event.Status = StatusUnknownTeam
		f.observer.Observe(event)
		return games.Game{}, false
	}
	event.Team = name

	if skip[abbr] {
		event.Status = StatusSkipped
		f.observer.Observe(event)
		return games.Game{}, false
	}

	records, err := f.source.FetchSchedule(ctx, info.ID, abbr)
	if err != nil {
		event.Status = statusFor(err)
		event.Err = err
		if skip != nil && (event.Status == StatusRateLimited || event.Status == StatusBlocked) {
			skip[abbr] = true
			logging.Warn(f.logger, "team skipped for the rest of the scan",
				logging.FieldLeague, string(info.ID),
				logging.FieldTeam, abbr,
				"status", string(event.Status),
			)
		}
		f.observer.Observe(event)
		return games.Game{}, false
	}

	for _, record := range records {
		date, ok := f.parser.Parse(record.Date, info.ID)
		if !ok || !date.Equal(target) {
			continue
		}
		game := f.normalize(info, abbr, name, date, record)
		event.Status = StatusFound
		event.Game = &game
		f.observer.Observe(event)
		return game, true
	}

	event.Status = StatusNoGame
	f.observer.Observe(event)
	return games.Game{}, false
}

func (f *Finder) normalize(info leagues.Info, abbr, name string, date time.Time, record games.RawGame) games.Game {
	oppAbbr := strings.TrimSpace(record.OpponentAbbr)
	if oppAbbr == "" {
		oppAbbr = games.UnknownOpponent
	}
	opponent := oppAbbr
	if full, ok := f.registry.TeamFullName(oppAbbr, info.ID); ok {
		opponent = full
	}

	game := games.Game{
		League:       info.ID,
		LeagueName:   info.Name,
		Team:         name,
		TeamAbbr:     abbr,
		Opponent:     opponent,
		OpponentAbbr: oppAbbr,
		Location:     record.Location,
		Date:         date,
	}
	if strings.Contains(record.Date, "T") {
		game.DateTime = record.Date
	}
	return game
}

func statusFor(err error) Status {
	switch providers.Classify(err) {
	case providers.ConditionRateLimited:
		return StatusRateLimited
	case providers.ConditionBlocked:
		return StatusBlocked
	default:
		return StatusError
	}
}

// FindWeek runs the daily scan for each of the WeekDays dates starting today. Every day re-fetches every
// team's schedule, except teams that were rate limited or blocked earlier in the same scan, which are
// reported as skipped. Only dates with at least one game appear in the result, ascending.
func (f *Finder) FindWeek(ctx context.Context, teams []string, league leagues.League) (games.Week, error) {
	var week games.Week
	skip := refused{}
	for _, day := range timeutil.Window(f.Today(), WeekDays) {
		found, err := f.findGames(ctx, teams, league, day, skip)
		if len(found) > 0 {
			week = append(week, games.DaySchedule{Date: day, Games: found})
		}
		if err != nil {
			return week, err
		}
	}
	return week, nil
}

// FindForPreferences runs FindGames for every league in prefs, in preference order.
func (f *Finder) FindForPreferences(ctx context.Context, prefs preferences.Preferences, target time.Time) ([]games.Game, error) {
	var all []games.Game
	for _, league := range prefs.Leagues() {
		found, err := f.FindGames(ctx, prefs.Teams(league), league, target)
		all = append(all, found...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

// WeekForPreferences runs FindWeek for every league in prefs and merges the days. With several leagues
// the merged week is ordered by date, and within a date by league order.
func (f *Finder) WeekForPreferences(ctx context.Context, prefs preferences.Preferences) (games.Week, error) {
	var week games.Week
	for _, league := range prefs.Leagues() {
		found, err := f.FindWeek(ctx, prefs.Teams(league), league)
		week = week.Merge(found)
		if err != nil {
			return week, err
		}
	}
	return week, nil
}
