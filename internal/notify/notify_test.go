package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/preston-bernstein/friday-night-bytes/internal/testutil"
)

func TestNewFallsBackToNop(t *testing.T) {
	if _, ok := New(PushoverConfig{UserKey: "u"}).(Nop); !ok {
		t.Fatalf("expected Nop without api token")
	}
	if _, ok := New(PushoverConfig{UserKey: "u", APIToken: "t"}).(*Pushover); !ok {
		t.Fatalf("expected Pushover with credentials")
	}
	if _, err := NewPushover(PushoverConfig{}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected missing credentials, got %v", err)
	}
	if err := (Nop{}).Notify(context.Background(), "t", "m"); err != nil {
		t.Fatalf("expected nop to succeed, got %v", err)
	}
}

func TestPushoverPostsForm(t *testing.T) {
	var form url.Values
	var gotURL, contentType string
	client := &http.Client{Transport: testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		contentType = req.Header.Get("Content-Type")
		body, _ := io.ReadAll(req.Body)
		form, _ = url.ParseQuery(string(body))
		return testutil.Respond(http.StatusOK, `{"status":1}`), nil
	})}

	p, err := NewPushover(PushoverConfig{UserKey: "user", APIToken: "token", BaseURL: "https://push.test/1/messages.json", HTTPClient: client})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Notify(context.Background(), "Friday Night Bytes", "This Week's Games:\nNo games scheduled."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotURL != "https://push.test/1/messages.json" || contentType != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected request %s %s", gotURL, contentType)
	}
	if form.Get("token") != "token" || form.Get("user") != "user" || form.Get("title") != "Friday Night Bytes" {
		t.Fatalf("unexpected form %v", form)
	}
	if form.Get("message") != "This Week's Games:\nNo games scheduled." {
		t.Fatalf("unexpected message %q", form.Get("message"))
	}
}

func TestPushoverAPIError(t *testing.T) {
	client := &http.Client{Transport: testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return testutil.Respond(http.StatusBadRequest, `{"status":0,"errors":["user identifier is invalid"]}`), nil
	})}
	p, _ := NewPushover(PushoverConfig{UserKey: "u", APIToken: "t", HTTPClient: client})

	err := p.Notify(context.Background(), "", "hi")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected api error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || !strings.Contains(apiErr.Error(), "user identifier is invalid") {
		t.Fatalf("unexpected api error %v", apiErr)
	}
}

func TestPushoverTruncatesLongMessages(t *testing.T) {
	var message string
	client := &http.Client{Transport: testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		form, _ := url.ParseQuery(string(body))
		message = form.Get("message")
		return testutil.Respond(http.StatusOK, `{"status":1}`), nil
	})}
	p, _ := NewPushover(PushoverConfig{UserKey: "u", APIToken: "t", HTTPClient: client})

	_ = p.Notify(context.Background(), "", strings.Repeat("🏆", pushoverMessageLimit+10))
	if got := len([]rune(message)); got != pushoverMessageLimit {
		t.Fatalf("expected %d runes, got %d", pushoverMessageLimit, got)
	}
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	if err := n.Notify(context.Background(), "Title", "body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Title\nbody\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.Notify(ctx, "", "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}
