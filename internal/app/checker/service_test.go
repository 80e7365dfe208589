package checker

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
	"github.com/preston-bernstein/friday-night-bytes/internal/notify"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/report"
	"github.com/preston-bernstein/friday-night-bytes/internal/schedule"
	"github.com/preston-bernstein/friday-night-bytes/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 8, 15, 0, 0, 0, time.UTC)

type stubNotifier struct {
	title, message string
	calls          int
	err            error
}

func (n *stubNotifier) Notify(ctx context.Context, title, message string) error {
	n.calls++
	n.title, n.message = title, message
	return n.err
}

func newService(t *testing.T, source *testutil.StubSource, notifier *stubNotifier) (*Service, *metrics.Recorder) {
	t.Helper()
	recorder := metrics.NewRecorder()
	finder := schedule.NewFinder(source,
		schedule.WithLocation(time.UTC),
		schedule.WithClock(testutil.NowAt(fixedNow)),
		schedule.WithRecorder(recorder),
	)
	logger, _ := testutil.NewBufferLogger()
	var n notify.Notifier
	if notifier != nil {
		n = notifier
	}
	return NewService(finder, report.NewRenderer(nil, time.UTC), n, recorder, logger), recorder
}

func lakers(t *testing.T) preferences.Preferences {
	t.Helper()
	prefs, err := preferences.New(nil, leagues.NBA, []string{"lal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return prefs
}

func TestWeekFindsHomeGameToday(t *testing.T) {
	source := testutil.NewStubSource().WithSchedule("LAL", testutil.Home("Fri, Mar 8, 2024", "BOS"))
	svc, recorder := newService(t, source, nil)

	res, err := svc.Week(context.Background(), lakers(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Games) != 1 || res.Games[0].Location != games.LocationHome {
		t.Fatalf("unexpected games %+v", res.Games)
	}
	if !strings.Contains(res.Report, "Los Angeles Lakers vs Boston Celtics") || !strings.Contains(res.Report, "🏠") {
		t.Fatalf("expected home game line in report:\n%s", res.Report)
	}
	if res.Summary != "This Week's Games:\n🏆Los Angeles Lakers vs Boston Celtics 🏠" {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
	if res.Description != "this week (March 08, 2024 - March 14, 2024)" {
		t.Fatalf("unexpected description %q", res.Description)
	}
	if len(res.Week) != 1 {
		t.Fatalf("expected one day in week, got %d", len(res.Week))
	}
	if recorder.GamesFound("nba") != 1 {
		t.Fatalf("expected games-found metric")
	}
}

func TestWeekWithoutMatchesRendersNoGames(t *testing.T) {
	source := testutil.NewStubSource().WithSchedule("LAL", testutil.Home("Fri, Mar 22, 2024", "BOS"))
	svc, _ := newService(t, source, nil)

	res, err := svc.Week(context.Background(), lakers(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Games) != 0 || res.Games == nil {
		t.Fatalf("expected empty non-nil games, got %#v", res.Games)
	}
	if !strings.Contains(res.Report, "No games scheduled for your favorite teams") {
		t.Fatalf("expected no games message, got %q", res.Report)
	}
	if res.Summary != "This Week's Games:\nNo games scheduled." {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
}

func TestDayUsesDateDescription(t *testing.T) {
	source := testutil.NewStubSource().WithSchedule("LAL", testutil.Away("Sat, Mar 9, 2024", "GSW"))
	svc, _ := newService(t, source, nil)

	res, err := svc.Day(context.Background(), lakers(t), testutil.Date(2024, 3, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Description != "tomorrow" || len(res.Games) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.HasPrefix(res.Summary, "Games for tomorrow:\n🏆Los Angeles Lakers vs Golden State Warriors ✈️") {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
	if len(source.Calls()) != 1 {
		t.Fatalf("expected a single fetch, got %d", len(source.Calls()))
	}
}

func TestWeekSurfacesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc, _ := newService(t, testutil.NewStubSource(), nil)

	_, err := svc.Week(ctx, lakers(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestNotifyForwardsSummary(t *testing.T) {
	n := &stubNotifier{}
	svc, _ := newService(t, testutil.NewStubSource(), n)

	res := Result{Summary: "This Week's Games:\nNo games scheduled."}
	if err := svc.Notify(context.Background(), res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.calls != 1 || n.title != NotificationTitle || n.message != res.Summary {
		t.Fatalf("unexpected notification %+v", n)
	}

	n.err = errors.New("down")
	if err := svc.Notify(context.Background(), res); err == nil {
		t.Fatalf("expected notifier error")
	}
}

func TestNotifyWithoutNotifierIsNoop(t *testing.T) {
	svc, _ := newService(t, testutil.NewStubSource(), nil)
	if err := svc.Notify(context.Background(), Result{}); err != nil {
		t.Fatalf("expected nop notifier, got %v", err)
	}
}

func TestTodayComesFromFinder(t *testing.T) {
	svc, _ := newService(t, testutil.NewStubSource(), nil)
	if !svc.Today().Equal(testutil.Date(2024, 3, 8)) {
		t.Fatalf("unexpected today %v", svc.Today())
	}
}
