package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/friday-night-bytes/internal/metrics"
	"github.com/preston-bernstein/friday-night-bytes/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, rec, next), http.MethodGet, "/games", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") {
		t.Fatalf("expected completion log with status, got %s", out)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})
	rr := httptest.NewRecorder()
	LoggingMiddleware(logger, nil, next).ServeHTTP(rr, req)

	if seen != "abc-123" || rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected incoming id preserved, got ctx=%q header=%q", seen, rr.Header().Get("X-Request-ID"))
	}
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "not valid!")
	rr := httptest.NewRecorder()
	LoggingMiddleware(nil, nil, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got == "" || got == "not valid!" {
		t.Fatalf("expected generated id, got %q", got)
	}
}

func TestRoutePatternUsesChiPattern(t *testing.T) {
	router := chi.NewRouter()
	var pattern string
	router.Get("/leagues/{league}/teams", func(w http.ResponseWriter, r *http.Request) {
		pattern = routePattern(r)
	})
	testutil.Serve(router, http.MethodGet, "/leagues/nba/teams", nil)
	if pattern != "/leagues/{league}/teams" {
		t.Fatalf("expected route pattern, got %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := routePattern(req); got != "unmatched" {
		t.Fatalf("expected unmatched, got %q", got)
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}
