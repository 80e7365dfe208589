package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/wiring"
	httpserver "github.com/preston-bernstein/friday-night-bytes/internal/http"
	"github.com/preston-bernstein/friday-night-bytes/internal/http/handlers"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
	"github.com/preston-bernstein/friday-night-bytes/internal/scheduler"
)

// Server runs the HTTP API and, when notifications are configured, the weekly scheduler.
type Server struct {
	logger      *slog.Logger
	httpServer  httpServer
	scheduler   Scheduler
	metricsStop func(context.Context) error
}

// New wires the HTTP surface over app. Favourite teams from configuration back /games requests
// without parameters and, with Pushover credentials, the scheduled weekly notification.
func New(app *wiring.App) (*Server, error) {
	logger := app.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	svc := app.Service(schedule.NopObserver{}, nil)

	favorites, err := app.FavoritePreferences()
	if err != nil && !errors.Is(err, preferences.ErrNoTeams) {
		return nil, err
	}

	var (
		sched    Scheduler
		statusFn func() scheduler.Status
	)
	if app.Config.Notify.Enabled() && !favorites.IsEmpty() {
		s, err := scheduler.New(svc, favorites, scheduler.Config{
			Schedule:   app.Config.Notify.Schedule,
			Location:   app.ReferenceZone,
			RunOnStart: app.Config.Notify.RunOnStart,
		}, logger)
		if err != nil {
			return nil, err
		}
		sched, statusFn = s, s.Status
	}

	handler := handlers.NewHandler(svc, app.Registry, favorites, logger, statusFn)
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		Logger:   logger,
		Recorder: app.Recorder,
		Metrics:  app.MetricsHandler,
	})

	return &Server{
		logger:      logger,
		httpServer:  newNetHTTPServer(app.Config.Port, router),
		scheduler:   sched,
		metricsStop: app.Shutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(logger *slog.Logger, httpSrv httpServer, sched Scheduler) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		logger:     logger,
		httpServer: httpSrv,
		scheduler:  sched,
	}
}

// Run starts the scheduler and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startServer(stop)
	if s.scheduler != nil {
		if err := s.scheduler.Start(ctx); err != nil {
			logging.Error(s.logger, "scheduler failed to start", err)
		}
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(s.logger, "http server failed", err)
			if stop != nil {
				stop()
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.scheduler != nil {
		if err := s.scheduler.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop scheduler", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Scheduled reports whether weekly notifications are active.
func (s *Server) Scheduled() bool {
	return s.scheduler != nil
}
