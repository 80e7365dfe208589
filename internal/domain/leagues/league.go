package leagues

import "strings"

// League identifies one of the supported professional leagues.
type League string

const (
	NBA League = "nba"
	NFL League = "nfl"
	MLB League = "mlb"
)

// ParseLeague resolves a case-insensitive league key.
func ParseLeague(raw string) (League, bool) {
	switch League(strings.ToLower(strings.TrimSpace(raw))) {
	case NBA:
		return NBA, true
	case NFL:
		return NFL, true
	case MLB:
		return MLB, true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (l League) String() string {
	return string(l)
}

// sportNumbers keeps the numeric selectors used by the CLI prompt.
var sportNumbers = map[string]League{
	"1": NBA,
	"2": NFL,
	"3": MLB,
}

// FromSportNumber maps "1"/"2"/"3" to a league.
func FromSportNumber(raw string) (League, bool) {
	l, ok := sportNumbers[strings.TrimSpace(raw)]
	return l, ok
}

// SportNumber returns the numeric selector for a league, or "" when unsupported.
func SportNumber(l League) string {
	for num, league := range sportNumbers {
		if league == l {
			return num
		}
	}
	return ""
}
