package sportsref

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
)

var (
	teamHrefPattern     = regexp.MustCompile(`/teams/([A-Za-z]{2,4})/`)
	boxscoreHrefPattern = regexp.MustCompile(`/boxscores/(\d{4})(\d{2})(\d{2})`)
	sortKeyDatePattern  = regexp.MustCompile(`^(\d{4})-?(\d{2})-?(\d{2})$`)
)

// yearlessDateLayout is the football date cell, e.g. "September 17".
const yearlessDateLayout = "January 2"

// parseSchedule reads schedule rows from a Sports-Reference page. Header and spacer rows are skipped,
// missing opponent or location cells degrade to Unknown. season is the season year in the page URL.
func parseSchedule(body io.Reader, s site, season int) ([]games.RawGame, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var out []games.RawGame
	doc.Find(s.table + " tbody tr").Each(func(_ int, row *goquery.Selection) {
		if row.HasClass("thead") || row.HasClass("spacer") {
			return
		}
		date := rowDate(row, s, season)
		if date == "" {
			return
		}
		out = append(out, games.RawGame{
			Date:         date,
			OpponentAbbr: rowOpponent(row, s),
			Location:     rowLocation(row, s),
		})
	})
	return out, nil
}

func cell(row *goquery.Selection, stat string) *goquery.Selection {
	return row.Find(`[data-stat="` + stat + `"]`).First()
}

func rowDate(row *goquery.Selection, s site, season int) string {
	dateCell := cell(row, s.dateStat)
	text := strings.TrimSpace(dateCell.Text())
	if !s.boxscoreDates {
		return text
	}

	href, _ := row.Find(`a[href*="/boxscores/"]`).First().Attr("href")
	if m := boxscoreHrefPattern.FindStringSubmatch(href); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	// Upcoming games have no boxscore link; the cell's sort key still carries the full date.
	if key, ok := dateCell.Attr("csk"); ok {
		if m := sortKeyDatePattern.FindStringSubmatch(strings.TrimSpace(key)); m != nil {
			return m[1] + "-" + m[2] + "-" + m[3]
		}
	}
	return withSeasonYear(text, season)
}

// withSeasonYear dates a yearless football cell. January and February games belong to the following year.
func withSeasonYear(text string, season int) string {
	t, err := time.Parse(yearlessDateLayout, text)
	if err != nil || season <= 0 {
		return text
	}
	year := season
	if t.Month() < time.March {
		year++
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func rowOpponent(row *goquery.Selection, s site) string {
	c := cell(row, s.opponentStat)
	if href, ok := c.Find("a").First().Attr("href"); ok {
		if m := teamHrefPattern.FindStringSubmatch(href); m != nil {
			return fromSite(s.aliases, m[1])
		}
	}
	if text := strings.TrimSpace(c.Text()); text != "" && !strings.Contains(text, " ") {
		return fromSite(s.aliases, text)
	}
	return games.UnknownOpponent
}

func rowLocation(row *goquery.Selection, s site) games.Location {
	c := cell(row, s.locationStat)
	if c.Length() == 0 {
		return games.LocationUnknown
	}
	switch strings.TrimSpace(c.Text()) {
	case "@":
		return games.LocationAway
	case "":
		return games.LocationHome
	default:
		// "N" marks a neutral site.
		return games.LocationUnknown
	}
}
