package dates

import (
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

// Parser turns provider date strings into calendar dates.
type Parser struct {
	now func() time.Time
	loc *time.Location
}

// NewParser builds a parser whose "current year" and timestamp conversion use loc.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = timeutil.ResolveLocation("")
	}
	return &Parser{now: time.Now, loc: loc}
}

// WithClock returns a copy of the parser using now as its time source.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	cp := *p
	cp.now = now
	return &cp
}

var defaultParser = NewParser(nil)

// ParseGameDate parses raw with the default reference zone. See Parser.Parse.
func ParseGameDate(raw string, league leagues.League) (time.Time, bool) {
	return defaultParser.Parse(raw, league)
}

// Parse tries the league's primary layout, then each fallback in order, and returns the
// calendar date of the first match. Empty or unparsable input reports false.
func (p *Parser) Parse(raw string, league leagues.League) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	primary := PrimaryLayout(league)
	if d, ok := p.parseLayout(raw, primary); ok {
		return d, true
	}

	for _, layout := range fallbackLayouts {
		if layout == layoutISODate {
			for _, ts := range timestampLayouts {
				if d, ok := p.parseTimestamp(raw, ts); ok {
					return d, true
				}
			}
		}
		if layout == primary {
			continue
		}
		if d, ok := p.parseLayout(raw, layout); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func (p *Parser) parseLayout(raw, layout string) (time.Time, bool) {
	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, false
	}
	if parsed.Year() == PlaceholderYear {
		return p.withCurrentYear(parsed)
	}
	return timeutil.DateOf(parsed), true
}

// parseTimestamp reads an instant and takes its calendar date in the reference zone.
func (p *Parser) parseTimestamp(raw, layout string) (time.Time, bool) {
	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return timeutil.DateOf(parsed.In(p.loc)), true
}

func (p *Parser) withCurrentYear(parsed time.Time) (time.Time, bool) {
	year := p.now().In(p.loc).Year()
	fixed := time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	// Feb 29 parses in the placeholder year but not in every current year.
	if fixed.Month() != parsed.Month() || fixed.Day() != parsed.Day() {
		return time.Time{}, false
	}
	return fixed, true
}
