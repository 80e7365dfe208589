package espn

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/testutil"
)

const lakersSchedule = `{
  "events": [
    {"id": "1", "date": "2024-03-08T00:30Z", "competitions": [{"competitors": [
      {"homeAway": "home", "team": {"abbreviation": "LAL"}},
      {"homeAway": "away", "team": {"abbreviation": "BOS"}}
    ]}]},
    {"id": "2", "date": "2024-03-10T19:00Z", "competitions": [{"competitors": [
      {"homeAway": "home", "team": {"abbreviation": "GS"}},
      {"homeAway": "away", "team": {"abbreviation": "lal"}}
    ]}]},
    {"id": "3", "date": "2024-03-12T19:00Z", "competitions": [{"competitors": [
      {"homeAway": "home", "team": {"abbreviation": "LAL"}}
    ]}]},
    {"id": "4", "date": "2024-03-13T19:00Z", "competitions": [{"competitors": [
      {"homeAway": "home", "team": {"abbreviation": "MIA"}},
      {"homeAway": "away", "team": {"abbreviation": "NY"}}
    ]}]},
    {"id": "5", "date": "2024-03-14T19:00Z", "competitions": []}
  ]
}`

func newTestClient(fn testutil.RoundTripperFunc) *Client {
	c := NewClient(Config{
		BaseURL:    "https://espn.test/sports/",
		HTTPClient: &http.Client{Transport: fn},
	})
	c.now = func() time.Time { return time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestFetchScheduleMapsEventsForTeam(t *testing.T) {
	var gotURL, gotUA string
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		gotUA = req.Header.Get("User-Agent")
		return testutil.Respond(http.StatusOK, lakersSchedule), nil
	})

	records, err := c.FetchSchedule(context.Background(), leagues.NBA, "lal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotURL != "https://espn.test/sports/basketball/nba/teams/lal/schedule" {
		t.Fatalf("unexpected url %s", gotURL)
	}
	if gotUA == "" {
		t.Fatalf("expected user agent header")
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}
	if records[0].OpponentAbbr != "BOS" || records[0].Location != games.LocationHome || records[0].Date != "2024-03-08T00:30Z" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[1].OpponentAbbr != "GSW" || records[1].Location != games.LocationAway {
		t.Fatalf("expected ESPN alias mapped back to GSW away, got %+v", records[1])
	}
	if records[2].OpponentAbbr != games.UnknownOpponent {
		t.Fatalf("expected unknown opponent, got %+v", records[2])
	}
}

func TestFetchScheduleTranslatesRegistryAbbreviation(t *testing.T) {
	var gotURL string
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.Path
		return testutil.Respond(http.StatusOK, `{"events":[]}`), nil
	})

	records, err := c.FetchSchedule(context.Background(), leagues.NFL, "WAS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if gotURL != "/sports/football/nfl/teams/wsh/schedule" {
		t.Fatalf("unexpected path %s", gotURL)
	}
}

func TestFetchScheduleRateLimited(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := testutil.Respond(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})

	_, err := c.FetchSchedule(context.Background(), leagues.MLB, "NYY")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second || rl.Provider != providerName {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestFetchScheduleBlocked(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return testutil.Respond(http.StatusForbidden, "no"), nil
	})

	_, err := c.FetchSchedule(context.Background(), leagues.NBA, "BOS")
	if !providers.IsBlocked(err) {
		t.Fatalf("expected blocked error, got %v", err)
	}
}

func TestFetchScheduleStatusError(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return testutil.Respond(http.StatusBadGateway, "  upstream down \n"), nil
	})

	_, err := c.FetchSchedule(context.Background(), leagues.NBA, "BOS")
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway || statusErr.Body != "upstream down" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchScheduleDecodeError(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return testutil.Respond(http.StatusOK, "<html>"), nil
	})

	_, err := c.FetchSchedule(context.Background(), leagues.NBA, "BOS")
	var decodeErr *providers.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if providers.Classify(err) != providers.ConditionDecode {
		t.Fatalf("expected decode condition, got %s", providers.Classify(err))
	}
}

func TestFetchScheduleTransportError(t *testing.T) {
	boom := errors.New("dial failed")
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := c.FetchSchedule(context.Background(), leagues.NBA, "BOS")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestFetchScheduleUnsupportedLeague(t *testing.T) {
	called := false
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		called = true
		return testutil.Respond(http.StatusOK, "{}"), nil
	})

	_, err := c.FetchSchedule(context.Background(), leagues.League("nhl"), "BOS")
	if !errors.Is(err, providers.ErrUnsupportedLeague) {
		t.Fatalf("expected unsupported league, got %v", err)
	}
	if called {
		t.Fatalf("expected no request for unsupported league")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultBaseURL || c.userAgent != defaultUserAgent || c.httpClient == nil {
		t.Fatalf("unexpected defaults %+v", c)
	}
}
