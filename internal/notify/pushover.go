package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultPushoverURL  = "https://api.pushover.net/1/messages.json"
	defaultPushoverWait = 10 * time.Second
	// pushoverMessageLimit is the API's maximum message length in characters.
	pushoverMessageLimit = 1024
)

// ErrMissingCredentials is returned when a Pushover notifier lacks its user key or API token.
var ErrMissingCredentials = errors.New("pushover credentials missing")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PushoverConfig holds Pushover credentials and transport settings.
type PushoverConfig struct {
	UserKey    string
	APIToken   string
	BaseURL    string
	HTTPClient *http.Client
}

// Enabled reports whether both credentials are set.
func (c PushoverConfig) Enabled() bool {
	return c.UserKey != "" && c.APIToken != ""
}

// Pushover sends messages through the Pushover API.
type Pushover struct {
	userKey    string
	apiToken   string
	endpoint   string
	httpClient httpDoer
}

// APIError is a non-2xx Pushover response.
type APIError struct {
	StatusCode int
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("pushover: status %d", e.StatusCode)
	}
	return fmt.Sprintf("pushover: status %d: %s", e.StatusCode, strings.Join(e.Errors, "; "))
}

// NewPushover builds a Pushover notifier.
func NewPushover(cfg PushoverConfig) (*Pushover, error) {
	if !cfg.Enabled() {
		return nil, ErrMissingCredentials
	}
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = defaultPushoverURL
	}
	var doer httpDoer = &http.Client{Timeout: defaultPushoverWait}
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	}
	return &Pushover{
		userKey:    cfg.UserKey,
		apiToken:   cfg.APIToken,
		endpoint:   endpoint,
		httpClient: doer,
	}, nil
}

// New returns a Pushover notifier when credentials are present and Nop otherwise.
func New(cfg PushoverConfig) Notifier {
	p, err := NewPushover(cfg)
	if err != nil {
		return Nop{}
	}
	return p
}

type pushoverResponse struct {
	Status int      `json:"status"`
	Errors []string `json:"errors"`
}

// Notify posts one message. Messages longer than the API limit are truncated.
func (p *Pushover) Notify(ctx context.Context, title, message string) error {
	form := url.Values{}
	form.Set("token", p.apiToken)
	form.Set("user", p.userKey)
	form.Set("message", truncate(message, pushoverMessageLimit))
	if title != "" {
		form.Set("title", title)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pushover: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var body pushoverResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	return &APIError{StatusCode: resp.StatusCode, Errors: body.Errors}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
