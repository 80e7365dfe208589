package dates

import "github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"

const (
	layoutShortWeekdayYear = "Mon, Jan 2, 2006"
	layoutLongWeekdayYear  = "Monday, Jan 2, 2006"
	layoutLongWeekday      = "Monday, Jan 2"
	layoutLongMonthYear    = "January 2, 2006"
	layoutSlash            = "1/2/2006"
	layoutISODate          = "2006-01-02"
	// ESPN schedule timestamps carry minutes but no seconds, e.g. 2024-10-22T23:30Z.
	layoutISOMinutes = "2006-01-02T15:04Z07:00"
)

// PlaceholderYear is the year time.Parse assigns when a layout has no year token.
// Sports-Reference MLB schedules print "Thursday, Mar 28" with no year, so a parse
// landing on this year is moved to the current reference-zone year.
const PlaceholderYear = 0

// primaryLayouts is the per-league format tried first.
var primaryLayouts = map[leagues.League]string{
	leagues.NBA: layoutShortWeekdayYear,
	leagues.NFL: layoutShortWeekdayYear,
	leagues.MLB: layoutLongWeekday,
}

// timestampLayouts are tried at the ISO step before the bare ISO date.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	layoutISOMinutes,
}

// fallbackLayouts are tried in order when the primary layout fails.
var fallbackLayouts = []string{
	layoutISODate,
	layoutLongWeekdayYear,
	layoutShortWeekdayYear,
	layoutLongWeekday,
	layoutLongMonthYear,
	layoutSlash,
}

// PrimaryLayout returns the league's primary layout, defaulting to the ISO date.
func PrimaryLayout(l leagues.League) string {
	if layout, ok := primaryLayouts[l]; ok {
		return layout
	}
	return layoutISODate
}
