package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no schedule source is configured.
	ErrProviderUnavailable = errors.New("schedule provider unavailable")
	// ErrUnsupportedLeague means a league reached a source that cannot serve it.
	// Input validation should make this unreachable.
	ErrUnsupportedLeague = errors.New("unsupported league")
)

// Conditions reported for failed fetches in logs, metrics and progress events.
const (
	ConditionRateLimited = "rate_limited"
	ConditionBlocked     = "blocked"
	ConditionNetwork     = "network"
	ConditionHTTP        = "http"
	ConditionDecode      = "decode"
	ConditionUnsupported = "unsupported_league"
	ConditionCanceled    = "canceled"
	ConditionError       = "error"
)

// RateLimitError captures HTTP 429 responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// BlockedError captures HTTP 403 responses, typically a scraper being refused.
type BlockedError struct {
	Provider string
	URL      string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s: request blocked (status=403)", e.Provider)
}

// StatusError is any other non-200 response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// DecodeError wraps a malformed upstream payload.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Provider, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// IsBlocked reports whether err is a BlockedError.
func IsBlocked(err error) bool {
	var blocked *BlockedError
	return errors.As(err, &blocked)
}

// Classify maps a fetch error to a condition string. A nil error yields "".
func Classify(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := AsRateLimitError(err); ok {
		return ConditionRateLimited
	}
	if IsBlocked(err) {
		return ConditionBlocked
	}
	if errors.Is(err, ErrUnsupportedLeague) {
		return ConditionUnsupported
	}
	if errors.Is(err, context.Canceled) {
		return ConditionCanceled
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return ConditionHTTP
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return ConditionDecode
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return ConditionNetwork
	}
	return ConditionError
}

// ParseRetryAfter reads a Retry-After header given in seconds or as an HTTP date.
func ParseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := time.Parse(time.RFC1123, raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
