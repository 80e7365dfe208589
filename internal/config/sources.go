package config

import "time"

// SourcesConfig controls how schedule sources reach upstream sites.
type SourcesConfig struct {
	RequestDelay time.Duration
	HTTPTimeout  time.Duration
	UserAgent    string
	ESPNBaseURL  string
	NBARefURL    string
	NFLRefURL    string
	MLBRefURL    string
}

func loadSources() SourcesConfig {
	return SourcesConfig{
		RequestDelay: durationEnvOrDefault(envRequestDelay, defaultRequestDelay),
		HTTPTimeout:  durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		UserAgent:    envOrDefault(envUserAgent, ""),
		ESPNBaseURL:  envOrDefault(envESPNBaseURL, ""),
		NBARefURL:    envOrDefault(envNBARefBaseURL, ""),
		NFLRefURL:    envOrDefault(envNFLRefBaseURL, ""),
		MLBRefURL:    envOrDefault(envMLBRefBaseURL, ""),
	}
}
