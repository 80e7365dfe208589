package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/dates"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

// horizon is how many days ahead of today the fixture schedules games.
const horizon = 14

// Provider returns a deterministic schedule useful for local runs and demos.
// Each team plays every other day starting today or tomorrow, cycling through
// the rest of its league as opponents.
type Provider struct {
	registry *leagues.Registry
	loc      *time.Location
	now      func() time.Time
}

// New creates a fixture provider dated relative to the reference zone.
func New(loc *time.Location) *Provider {
	if loc == nil {
		loc = timeutil.ResolveLocation(timeutil.DefaultZone)
	}
	return &Provider{
		registry: leagues.Default(),
		loc:      loc,
		now:      time.Now,
	}
}

// FetchSchedule returns raw records formatted in the league's primary date layout.
// Unknown teams have an empty schedule.
func (p *Provider) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	teams := p.registry.Teams(league)
	if len(teams) == 0 {
		return nil, fmt.Errorf("fixture: %w: %q", providers.ErrUnsupportedLeague, league)
	}

	self := indexOf(teams, teamAbbr)
	if self < 0 {
		return []games.RawGame{}, nil
	}

	today := timeutil.Today(p.now(), p.loc)
	layout := dates.PrimaryLayout(league)
	out := make([]games.RawGame, 0, horizon/2)
	for day := 0; day < horizon; day++ {
		if (day+self)%2 != 0 {
			continue
		}
		opp := teams[(self+1+day/2)%len(teams)]
		if opp.Abbreviation == teams[self].Abbreviation {
			opp = teams[(self+2+day/2)%len(teams)]
		}
		location := games.LocationHome
		if (day/2)%2 == 1 {
			location = games.LocationAway
		}
		out = append(out, games.RawGame{
			Date:         today.AddDate(0, 0, day).Format(layout),
			OpponentAbbr: opp.Abbreviation,
			Location:     location,
		})
	}
	return out, nil
}

func indexOf(teams []leagues.Team, abbr string) int {
	abbr = strings.TrimSpace(abbr)
	for i, t := range teams {
		if strings.EqualFold(t.Abbreviation, abbr) {
			return i
		}
	}
	return -1
}
