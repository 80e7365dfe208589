package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
	"github.com/preston-bernstein/friday-night-bytes/internal/notify"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/report"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
)

// NotificationTitle heads every pushed summary.
const NotificationTitle = "Friday Night Bytes"

// Finder is the schedule lookup the service runs checks against.
type Finder interface {
	Today() time.Time
	FindForPreferences(ctx context.Context, prefs preferences.Preferences, target time.Time) ([]games.Game, error)
	WeekForPreferences(ctx context.Context, prefs preferences.Preferences) (games.Week, error)
}

// Result is one completed check.
type Result struct {
	Preferences map[string][]string `json:"preferences"`
	Description string              `json:"description"`
	Games       []games.Game        `json:"games"`
	Week        games.Week          `json:"-"`
	Report      string              `json:"-"`
	Summary     string              `json:"summary"`
}

// Service runs game checks for preferences and formats their results.
type Service struct {
	finder   Finder
	renderer *report.Renderer
	notifier notify.Notifier
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service. A nil notifier drops notifications.
func NewService(finder Finder, renderer *report.Renderer, notifier notify.Notifier, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if renderer == nil {
		renderer = report.NewRenderer(nil, nil)
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		finder:   finder,
		renderer: renderer,
		notifier: notifier,
		recorder: recorder,
		logger:   logger,
	}
}

// Today returns the reference-zone date checks are relative to.
func (s *Service) Today() time.Time {
	return s.finder.Today()
}

// Week checks the seven days starting today. On error the partial result is still returned.
func (s *Service) Week(ctx context.Context, prefs preferences.Preferences) (Result, error) {
	start := time.Now()
	week, err := s.finder.WeekForPreferences(ctx, prefs)
	list := week.Games()

	res := s.result(prefs, list, report.WeekDescription(s.finder.Today(), schedule.WeekDays), report.WeekLabel)
	res.Week = week
	s.finish(ctx, "weekly check complete", res, start, err)
	return res, err
}

// Day checks a single date.
func (s *Service) Day(ctx context.Context, prefs preferences.Preferences, date time.Time) (Result, error) {
	start := time.Now()
	list, err := s.finder.FindForPreferences(ctx, prefs, date)

	desc := report.DateDescription(date, s.finder.Today())
	res := s.result(prefs, list, desc, fmt.Sprintf("Games for %s:", desc))
	s.finish(ctx, "daily check complete", res, start, err)
	return res, err
}

// Notify forwards the result's summary to the notifier.
func (s *Service) Notify(ctx context.Context, res Result) error {
	if err := s.notifier.Notify(ctx, NotificationTitle, res.Summary); err != nil {
		logging.Error(s.logger, "notification failed", err)
		return err
	}
	logging.Info(s.logger, "notification sent", logging.FieldCount, len(res.Games))
	return nil
}

func (s *Service) result(prefs preferences.Preferences, list []games.Game, description, label string) Result {
	if list == nil {
		list = []games.Game{}
	}
	return Result{
		Preferences: prefs.Map(),
		Description: description,
		Games:       list,
		Report:      s.renderer.Report(list, description),
		Summary:     report.Summary(list, label),
	}
}

func (s *Service) finish(ctx context.Context, msg string, res Result, start time.Time, err error) {
	elapsed := time.Since(start)
	s.recorder.RecordCheckRun(elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "check failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		return
	}
	logging.Info(logger, msg,
		logging.FieldCount, len(res.Games),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}
