package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("espn", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("espn", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("espn"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("espn"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}
}

func TestRecorderTracksRateLimitsAndBlocks(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("sportsref", 5*time.Second)
	rec.RecordRateLimit("sportsref", 0)
	rec.RecordBlocked("sportsref")

	if got := rec.RateLimitHits("sportsref"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("sportsref"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
	if got := rec.Snapshot("sportsref").Blocks; got != 1 {
		t.Fatalf("expected 1 block, got %d", got)
	}
}

func TestRecorderTracksGamesFound(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGamesFound("nba", 2)
	rec.RecordGamesFound("nba", 0)
	rec.RecordGamesFound("mlb", 1)

	if rec.GamesFound("nba") != 2 || rec.GamesFound("mlb") != 1 || rec.GamesFound("nfl") != 0 {
		t.Fatalf("unexpected games found nba=%d mlb=%d", rec.GamesFound("nba"), rec.GamesFound("mlb"))
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordRateLimit("espn", time.Second)
	rec.RecordBlocked("espn")
	rec.RecordGamesFound("nba", 1)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordCheckRun(time.Millisecond, nil)
	if snap := rec.Snapshot("espn"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}
