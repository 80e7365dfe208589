package providers

import (
	"context"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// ScheduleSource fetches a team's full schedule as raw provider records.
// Records keep provider order; an empty slice with a nil error means the provider had no data.
type ScheduleSource interface {
	FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error)
}

// ScheduleSourceFunc adapts a function to ScheduleSource.
type ScheduleSourceFunc func(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error)

func (f ScheduleSourceFunc) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	return f(ctx, league, teamAbbr)
}
