package wiring

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/config"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers/espn"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers/fixture"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers/sportsref"
)

// selectSource returns the configured schedule source and its canonical name.
// Unknown names fall back to ESPN.
func selectSource(cfg config.Config, loc *time.Location, logger *slog.Logger) (providers.ScheduleSource, string) {
	client := &http.Client{Timeout: cfg.Sources.HTTPTimeout}

	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New(loc), config.ProviderFixture
	case config.ProviderSportsRef:
		return sportsref.NewClient(sportsref.Config{
			NBABaseURL: cfg.Sources.NBARefURL,
			NFLBaseURL: cfg.Sources.NFLRefURL,
			MLBBaseURL: cfg.Sources.MLBRefURL,
			HTTPClient: client,
			UserAgent:  cfg.Sources.UserAgent,
			Location:   loc,
		}), config.ProviderSportsRef
	case config.ProviderESPN, "":
	default:
		logging.Warn(logger, "unknown provider, falling back to espn", logging.FieldProvider, cfg.Provider)
	}
	return espn.NewClient(espn.Config{
		BaseURL:    cfg.Sources.ESPNBaseURL,
		HTTPClient: client,
		UserAgent:  cfg.Sources.UserAgent,
	}), config.ProviderESPN
}

// buildSource wraps a source with metrics and the inter-request throttle. The fixture source is not throttled.
func buildSource(base providers.ScheduleSource, name string, delay time.Duration, logger *slog.Logger, recorder *metrics.Recorder) providers.ScheduleSource {
	instrumented := providers.NewInstrumentedSource(base, logger, recorder, name)
	if name == config.ProviderFixture {
		return instrumented
	}
	return providers.NewThrottledSource(instrumented, delay, logger)
}
