package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/friday-night-bytes/internal/http/handlers"
	"github.com/preston-bernstein/friday-night-bytes/internal/http/middleware"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
)

// RouterConfig carries the optional pieces mounted next to the handler routes.
type RouterConfig struct {
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	// Metrics is served at /metrics when non-nil.
	Metrics nethttp.Handler
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(cfg.Logger, cfg.Recorder, next)
	})

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/leagues", handler.Leagues)
	r.Get("/leagues/{league}/teams", handler.Teams)
	r.Get("/games", handler.Games)
	r.Get("/games/week", handler.Week)
	if cfg.Metrics != nil {
		r.Method(nethttp.MethodGet, "/metrics", cfg.Metrics)
	}
	return r
}
