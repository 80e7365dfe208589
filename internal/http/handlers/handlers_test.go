package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/checker"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/report"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
	"github.com/preston-bernstein/friday-night-bytes/internal/scheduler"
	"github.com/preston-bernstein/friday-night-bytes/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 8, 15, 0, 0, 0, time.UTC)

func newChecker(source *testutil.StubSource) *checker.Service {
	finder := schedule.NewFinder(source,
		schedule.WithLocation(time.UTC),
		schedule.WithClock(testutil.NowAt(fixedNow)),
	)
	return checker.NewService(finder, report.NewRenderer(nil, time.UTC), nil, nil, nil)
}

func routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/leagues", h.Leagues)
	r.Get("/leagues/{league}/teams", h.Teams)
	r.Get("/games", h.Games)
	r.Get("/games/week", h.Week)
	return r
}

func TestHealth(t *testing.T) {
	h := NewHandler(newChecker(testutil.NewStubSource()), nil, preferences.Preferences{}, nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(newChecker(testutil.NewStubSource()), nil, preferences.Preferences{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		status func() scheduler.Status
		want   int
	}{
		{name: "no scheduler", status: nil, want: http.StatusOK},
		{name: "healthy", status: func() scheduler.Status { return scheduler.Status{LastSuccess: fixedNow} }, want: http.StatusOK},
		{name: "started awaiting first run", status: func() scheduler.Status { return scheduler.Status{Running: true} }, want: http.StatusOK},
		{name: "running but failing", status: func() scheduler.Status {
			return scheduler.Status{Running: true, ConsecutiveFailures: 3, LastError: "boom"}
		}, want: http.StatusServiceUnavailable},
		{name: "never succeeded", status: func() scheduler.Status { return scheduler.Status{LastError: "boom"} }, want: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(newChecker(testutil.NewStubSource()), nil, preferences.Preferences{}, nil, tc.status)
			rr := testutil.Serve(routes(h), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tc.want)
		})
	}
}

func TestLeaguesAndTeams(t *testing.T) {
	h := NewHandler(newChecker(testutil.NewStubSource()), nil, preferences.Preferences{}, nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/leagues", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var list []struct {
		ID     string `json:"id"`
		Number string `json:"number"`
	}
	testutil.DecodeJSON(t, rr, &list)
	if len(list) != 3 || list[0].ID != "nba" || list[0].Number != "1" {
		t.Fatalf("unexpected leagues %+v", list)
	}

	rr = testutil.Serve(routes(h), http.MethodGet, "/leagues/mlb/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var info leagues.Info
	testutil.DecodeJSON(t, rr, &info)
	if info.ID != leagues.MLB || len(info.Teams) != 30 {
		t.Fatalf("unexpected mlb info: %s with %d teams", info.ID, len(info.Teams))
	}

	rr = testutil.Serve(routes(h), http.MethodGet, "/leagues/nhl/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestGamesReturnsTodaysGame(t *testing.T) {
	source := testutil.NewStubSource().WithSchedule("LAL", testutil.Home("Fri, Mar 8, 2024", "BOS"))
	h := NewHandler(newChecker(source), nil, preferences.Preferences{}, nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/games?league=nba&teams=lal", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Date        string `json:"date"`
		Description string `json:"description"`
		Summary     string `json:"summary"`
		Games       []struct {
			Team     string `json:"team"`
			Opponent string `json:"opponent"`
			IsHome   *bool  `json:"isHome"`
		} `json:"games"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Date != "2024-03-08" || resp.Description != "today" {
		t.Fatalf("unexpected date %s / %s", resp.Date, resp.Description)
	}
	if len(resp.Games) != 1 || resp.Games[0].Opponent != "Boston Celtics" {
		t.Fatalf("unexpected games %+v", resp.Games)
	}
	if resp.Games[0].IsHome == nil || !*resp.Games[0].IsHome {
		t.Fatalf("expected home game")
	}
}

func TestGamesTextFormat(t *testing.T) {
	h := NewHandler(newChecker(testutil.NewStubSource()), nil, preferences.Preferences{}, nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/games?league=nba&teams=lal&date=2024-03-09&format=text", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("expected text response, got %s", rr.Header().Get("Content-Type"))
	}
	if !strings.Contains(rr.Body.String(), "No games scheduled for your favorite teams tomorrow") {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestGamesValidation(t *testing.T) {
	source := testutil.NewStubSource()
	h := NewHandler(newChecker(source), nil, preferences.Preferences{}, nil, nil)

	cases := []struct {
		path string
		want string
	}{
		{path: "/games", want: "league and teams are required"},
		{path: "/games?league=cricket&teams=abc", want: "Sport cricket is not supported."},
		{path: "/games?league=mlb&teams=xyz", want: "xyz is not valid Baseball (MLB) team abbreviation(s)."},
		{path: "/games?league=nba&teams=lal&date=03-08-2024", want: "invalid date format (expected YYYY-MM-DD)"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rr := testutil.Serve(routes(h), http.MethodGet, tc.path, nil)
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			if resp["error"] != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, resp["error"])
			}
		})
	}
	if len(source.Calls()) != 0 {
		t.Fatalf("expected validation before any fetch, got %d calls", len(source.Calls()))
	}
}

func TestGamesFallsBackToFavorites(t *testing.T) {
	source := testutil.NewStubSource().WithSchedule("NYY", testutil.Away("Friday, Mar 8", "BOS"))
	favorites, err := preferences.New(nil, leagues.MLB, []string{"nyy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := NewHandler(newChecker(source), nil, favorites, nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	calls := source.Calls()
	if len(calls) != 1 || calls[0].Team != "NYY" {
		t.Fatalf("expected favourite team fetched, got %+v", calls)
	}
}

func TestWeekListsDays(t *testing.T) {
	source := testutil.NewStubSource().WithSchedule("LAL",
		testutil.Home("Sat, Mar 9, 2024", "BOS"),
		testutil.Away("Tue, Mar 12, 2024", "GSW"),
	)
	h := NewHandler(newChecker(source), nil, preferences.Preferences{}, nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/games/week?league=1&teams=lal", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp struct {
		Days []struct {
			Date string `json:"date"`
		} `json:"days"`
		Games []any `json:"games"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Days) != 2 || resp.Days[0].Date != "2024-03-09" || resp.Days[1].Date != "2024-03-12" {
		t.Fatalf("unexpected days %+v", resp.Days)
	}
	if len(resp.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp.Games))
	}
	if len(source.Calls()) != schedule.WeekDays {
		t.Fatalf("expected one fetch per day, got %d", len(source.Calls()))
	}
}

type failingChecker struct{ err error }

func (f failingChecker) Today() time.Time { return fixedNow }
func (f failingChecker) Day(context.Context, preferences.Preferences, time.Time) (checker.Result, error) {
	return checker.Result{}, f.err
}
func (f failingChecker) Week(context.Context, preferences.Preferences) (checker.Result, error) {
	return checker.Result{}, f.err
}

func TestCheckFailuresMapToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{err: context.Canceled, want: http.StatusServiceUnavailable},
		{err: providers.ErrProviderUnavailable, want: http.StatusBadGateway},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		logger, _ := testutil.NewBufferLogger()
		h := NewHandler(failingChecker{err: tc.err}, nil, preferences.Preferences{}, logger, nil)
		rr := testutil.Serve(routes(h), http.MethodGet, "/games/week?league=nba&teams=lal", nil)
		testutil.AssertStatus(t, rr, tc.want)
	}
}
