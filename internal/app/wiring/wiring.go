package wiring

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/checker"
	"github.com/preston-bernstein/friday-night-bytes/internal/config"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
	"github.com/preston-bernstein/friday-night-bytes/internal/notify"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/report"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

var metricsSetup = metrics.Setup

// App bundles the collaborators shared by the CLI, HTTP server and scheduler.
type App struct {
	Config         config.Config
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	MetricsHandler http.Handler
	Registry       *leagues.Registry
	ReferenceZone  *time.Location
	DisplayZone    *time.Location
	Source         providers.ScheduleSource
	SourceName     string
	Notifier       notify.Notifier

	metricsStop func(context.Context) error
	now         func() time.Time
}

// Build assembles the application from configuration. Telemetry failures degrade to in-memory metrics.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	recorder, handler, stop := buildMetrics(ctx, cfg, logger)

	ref := timeutil.ResolveLocation(cfg.ReferenceZone)
	display := timeutil.ResolveLocation(cfg.DisplayZone)
	base, name := selectSource(cfg, ref, logger)

	return &App{
		Config:         cfg,
		Logger:         logger,
		Recorder:       recorder,
		MetricsHandler: handler,
		Registry:       leagues.Default(),
		ReferenceZone:  ref,
		DisplayZone:    display,
		Source:         buildSource(base, name, cfg.Sources.RequestDelay, logger, recorder),
		SourceName:     name,
		Notifier: notify.New(notify.PushoverConfig{
			UserKey:  cfg.Notify.PushoverUserKey,
			APIToken: cfg.Notify.PushoverAPIToken,
			BaseURL:  cfg.Notify.PushoverBaseURL,
		}),
		metricsStop: stop,
		now:         time.Now,
	}
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	rec, handler, stop, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, stop
}

// Finder builds a schedule finder reporting progress to observer.
func (a *App) Finder(observer schedule.Observer) *schedule.Finder {
	return schedule.NewFinder(a.Source,
		schedule.WithRegistry(a.Registry),
		schedule.WithLocation(a.ReferenceZone),
		schedule.WithClock(a.now),
		schedule.WithObserver(observer),
		schedule.WithRecorder(a.Recorder),
		schedule.WithLogger(a.Logger),
	)
}

// Service builds a checker whose reports are styled for out and whose progress goes to observer.
func (a *App) Service(observer schedule.Observer, out io.Writer) *checker.Service {
	return checker.NewService(
		a.Finder(observer),
		report.NewRenderer(out, a.DisplayZone),
		a.Notifier,
		a.Recorder,
		a.Logger,
	)
}

// FavoritePreferences builds preferences from the FAVORITE_SPORT and *_TEAMS settings.
func (a *App) FavoritePreferences() (preferences.Preferences, error) {
	fav := a.Config.Favorites
	return preferences.Parse(a.Registry, fav.Sport, map[leagues.League]string{
		leagues.NBA: fav.NBATeams,
		leagues.NFL: fav.NFLTeams,
		leagues.MLB: fav.MLBTeams,
	})
}

// Shutdown flushes telemetry exporters.
func (a *App) Shutdown(ctx context.Context) error {
	if a.metricsStop == nil {
		return nil
	}
	return a.metricsStop(ctx)
}
