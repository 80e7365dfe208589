package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
)

// instrumentedSource records metrics and logs for every fetch. It never retries:
// a failed team is skipped for the rest of the query.
type instrumentedSource struct {
	inner    ScheduleSource
	logger   *slog.Logger
	metrics  *metrics.Recorder
	provider string
	now      func() time.Time
}

// NewInstrumentedSource wraps a source with metrics and structured logging.
func NewInstrumentedSource(inner ScheduleSource, logger *slog.Logger, recorder *metrics.Recorder, provider string) ScheduleSource {
	if provider == "" {
		provider = "provider"
	}
	return &instrumentedSource{
		inner:    inner,
		logger:   logger,
		metrics:  recorder,
		provider: provider,
		now:      time.Now,
	}
}

func (s *instrumentedSource) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	if s.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := s.now()
	records, err := s.inner.FetchSchedule(ctx, league, teamAbbr)
	elapsed := s.now().Sub(start)

	s.metrics.RecordProviderAttempt(s.provider, elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	attrs := []any{
		slog.String(logging.FieldLeague, league.String()),
		slog.String(logging.FieldTeam, teamAbbr),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err != nil {
		condition := Classify(err)
		switch condition {
		case ConditionRateLimited:
			rl, _ := AsRateLimitError(err)
			s.metrics.RecordRateLimit(s.provider, rl.RetryAfter)
		case ConditionBlocked:
			s.metrics.RecordBlocked(s.provider)
		}
		logWithProvider(ctx, logger, slog.LevelWarn, s.provider, "schedule fetch failed",
			append(attrs, slog.String(logging.FieldCondition, condition), slog.Any("error", err))...)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, s.provider, "schedule fetched",
		append(attrs, slog.Int(logging.FieldCount, len(records)))...)
	return records, nil
}
