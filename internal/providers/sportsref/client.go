package sportsref

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

const (
	providerName       = "sportsref"
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (compatible; friday-night-bytes/1.0)"
	errorBodyLimit     = 512
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls the scraper. Empty base URLs use the public Sports-Reference sites.
type Config struct {
	NBABaseURL string
	NFLBaseURL string
	MLBBaseURL string
	HTTPClient *http.Client
	UserAgent  string
	// Location picks the season from the reference zone's current date.
	Location *time.Location
}

// Client scrapes team schedule pages from basketball-, pro-football- and baseball-reference.
type Client struct {
	sites      map[leagues.League]site
	httpClient httpDoer
	userAgent  string
	loc        *time.Location
	now        func() time.Time
}

// NewClient constructs a scraper with the provided configuration.
func NewClient(cfg Config) *Client {
	sites := defaultSites()
	overrideBase(sites, leagues.NBA, cfg.NBABaseURL)
	overrideBase(sites, leagues.NFL, cfg.NFLBaseURL)
	overrideBase(sites, leagues.MLB, cfg.MLBBaseURL)

	var doer httpDoer = &http.Client{Timeout: defaultHTTPTimeout}
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	loc := cfg.Location
	if loc == nil {
		loc = timeutil.ResolveLocation(timeutil.DefaultZone)
	}

	return &Client{
		sites:      sites,
		httpClient: doer,
		userAgent:  ua,
		loc:        loc,
		now:        time.Now,
	}
}

func overrideBase(sites map[leagues.League]site, league leagues.League, base string) {
	if base == "" {
		return
	}
	s := sites[league]
	s.baseURL = strings.TrimSuffix(base, "/")
	sites[league] = s
}

// FetchSchedule downloads the current season's schedule page for a team and returns its rows.
func (c *Client) FetchSchedule(ctx context.Context, league leagues.League, teamAbbr string) ([]games.RawGame, error) {
	s, ok := c.sites[league]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", providerName, providers.ErrUnsupportedLeague, league)
	}

	now := c.now().In(c.loc)
	endpoint := s.url(teamAbbr, now)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request schedule: %w", providerName, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: providers.ParseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		}
	case http.StatusForbidden:
		return nil, &providers.BlockedError{Provider: providerName, URL: endpoint}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	records, err := parseSchedule(resp.Body, s, s.season(now))
	if err != nil {
		return nil, &providers.DecodeError{Provider: providerName, Err: err}
	}
	return records, nil
}
