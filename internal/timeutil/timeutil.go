package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultZone is the reference zone used for "today"/"tomorrow" and display conversion.
const DefaultZone = "America/New_York"

// ParseDate parses a YYYY-MM-DD date string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf returns the calendar date of t (in t's own location) as midnight UTC.
// Calendar dates compare with Equal regardless of the zone they were read in.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}

// Window returns days consecutive calendar dates starting at start.
func Window(start time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	start = DateOf(start)
	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// ResolveLocation loads a named zone, falling back to DefaultZone and then UTC.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultZone); err == nil {
		return loc
	}
	return time.UTC
}
