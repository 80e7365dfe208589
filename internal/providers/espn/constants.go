package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (compatible; friday-night-bytes/1.0)"
	errorBodyLimit     = 512
)
