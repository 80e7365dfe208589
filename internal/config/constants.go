package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envReferenceZone = "REFERENCE_TIMEZONE"
	envDisplayZone   = "DISPLAY_TIMEZONE"
	envRequestDelay  = "REQUEST_DELAY"
	envHTTPTimeout   = "HTTP_TIMEOUT"
	envUserAgent     = "HTTP_USER_AGENT"
	envESPNBaseURL   = "ESPN_BASE_URL"
	envNBARefBaseURL = "SPORTSREF_NBA_BASE_URL"
	envNFLRefBaseURL = "SPORTSREF_NFL_BASE_URL"
	envMLBRefBaseURL = "SPORTSREF_MLB_BASE_URL"

	envSport    = "FAVORITE_SPORT"
	envNBATeams = "NBA_TEAMS"
	envNFLTeams = "NFL_TEAMS"
	envMLBTeams = "MLB_TEAMS"

	envPushoverUser  = "PUSHOVER_USER_KEY"
	envPushoverToken = "PUSHOVER_API_TOKEN"
	envPushoverURL   = "PUSHOVER_BASE_URL"
	envNotifySched   = "NOTIFY_SCHEDULE"
	envNotifyOnStart = "NOTIFY_ON_START"

	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultPort          = "4000"
	defaultProvider      = ProviderESPN
	defaultZone          = "America/New_York"
	defaultRequestDelay  = 500 * time.Millisecond
	defaultHTTPTimeout   = 10 * time.Second
	defaultNotifySched   = "0 9 * * 1"
	defaultServiceName   = "friday-night-bytes"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultMetricsOn     = false
	defaultOtelInsecure  = true
	defaultNotifyOnStart = false
)

// Provider names accepted by PROVIDER.
const (
	ProviderESPN      = "espn"
	ProviderSportsRef = "sportsref"
	ProviderFixture   = "fixture"
)
