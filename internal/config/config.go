package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the CLI, server and scheduler.
type Config struct {
	Port          string
	Provider      string
	ReferenceZone string
	DisplayZone   string
	Sources       SourcesConfig
	Favorites     FavoritesConfig
	Notify        NotifyConfig
	Metrics       MetricsConfig
	Log           LogConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// FavoritesConfig holds default preferences for unattended runs.
type FavoritesConfig struct {
	Sport    string
	NBATeams string
	NFLTeams string
	MLBTeams string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		Provider:      strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		ReferenceZone: envOrDefault(envReferenceZone, defaultZone),
		DisplayZone:   envOrDefault(envDisplayZone, defaultZone),
		Sources:       loadSources(),
		Favorites: FavoritesConfig{
			Sport:    envOrDefault(envSport, ""),
			NBATeams: envOrDefault(envNBATeams, ""),
			NFLTeams: envOrDefault(envNFLTeams, ""),
			MLBTeams: envOrDefault(envMLBTeams, ""),
		},
		Notify:  loadNotify(),
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// LoadDotEnv loads variables from the given files (".env" when none) without overriding ones already set.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
