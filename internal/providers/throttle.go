package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
)

// DefaultRequestDelay spaces sequential schedule requests.
const DefaultRequestDelay = 500 * time.Millisecond

// throttledSource spaces calls to the wrapped source by a fixed delay.
type throttledSource struct {
	next    ScheduleSource
	limiter *rate.Limiter
	delay   time.Duration
	logger  *slog.Logger
}

// NewThrottledSource returns a ScheduleSource that waits delay between consecutive fetches.
// The first fetch is not delayed. A delay <= 0 uses DefaultRequestDelay.
func NewThrottledSource(next ScheduleSource, delay time.Duration, logger *slog.Logger) ScheduleSource {
	if delay <= 0 {
		delay = DefaultRequestDelay
	}
	return &throttledSource{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		delay:   delay,
		logger:  logger,
	}
}

func (s *throttledSource) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	if s == nil || s.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := s.limiter.Wait(ctx); err != nil {
		logging.Warn(s.logger, "throttled fetch canceled",
			slog.String(logging.FieldLeague, league.String()),
			slog.String(logging.FieldTeam, teamAbbr),
		)
		return nil, err
	}
	return s.next.FetchSchedule(ctx, league, teamAbbr)
}
