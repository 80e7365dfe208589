package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
)

// Config controls how the ESPN client reaches the site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches team schedules from ESPN's public site API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSchedule issues one GET to {base}/{sport}/teams/{abbr}/schedule and maps each event
// in which the team competes to a raw record.
func (c *Client) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	sportPath, ok := sportPaths[league]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", providerName, providers.ErrUnsupportedLeague, league)
	}
	espnAbbr := toESPN(league, teamAbbr)

	req, err := c.buildRequest(ctx, sportPath, espnAbbr)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request schedule: %w", providerName, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, req.URL.String()); err != nil {
		return nil, err
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.DecodeError{Provider: providerName, Err: err}
	}

	return mapSchedule(league, espnAbbr, payload), nil
}

func (c *Client) buildRequest(ctx context.Context, sportPath, espnAbbr string) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, sportPath, url.PathEscape(strings.ToLower(espnAbbr)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) checkStatus(resp *http.Response, endpoint string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: providers.ParseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		}
	case http.StatusForbidden:
		return &providers.BlockedError{Provider: providerName, URL: endpoint}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
}
