package espn

import (
	"strings"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

// mapSchedule keeps events where the requested team is a competitor, in response order.
func mapSchedule(league leagues.League, espnAbbr string, payload scheduleResponse) []games.RawGame {
	out := make([]games.RawGame, 0, len(payload.Events))
	for _, event := range payload.Events {
		if record, ok := mapEvent(league, espnAbbr, event); ok {
			out = append(out, record)
		}
	}
	return out
}

func mapEvent(league leagues.League, espnAbbr string, event eventResponse) (games.RawGame, bool) {
	if len(event.Competitions) == 0 {
		return games.RawGame{}, false
	}
	competitors := event.Competitions[0].Competitors

	for i, competitor := range competitors {
		if !strings.EqualFold(competitor.Team.Abbreviation, espnAbbr) {
			continue
		}
		return games.RawGame{
			Date:         eventDate(event),
			OpponentAbbr: opponentOf(league, competitors, i),
			Location:     mapHomeAway(competitor.HomeAway),
		}, true
	}
	return games.RawGame{}, false
}

func opponentOf(league leagues.League, competitors []competitorResponse, self int) string {
	for i, c := range competitors {
		if i == self {
			continue
		}
		if abbr := strings.TrimSpace(c.Team.Abbreviation); abbr != "" {
			return fromESPN(league, abbr)
		}
	}
	return games.UnknownOpponent
}

func eventDate(event eventResponse) string {
	if event.Date != "" {
		return event.Date
	}
	return event.Competitions[0].Date
}

func mapHomeAway(raw string) games.Location {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "home":
		return games.LocationHome
	case "away":
		return games.LocationAway
	default:
		return games.LocationUnknown
	}
}
