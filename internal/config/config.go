package config

import (
	"fmt"
	"os"
	"time"

	"lol-tracker/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey string

	// Riot splits its API across a platform host (summoner lookups) and a
	// regional host (match-v5). Overridable so tests can point at a stub.
	RiotPlatformURL string
	RiotRegionalURL string

	// per-call deadline for Riot requests
	RiotTimeout time.Duration

	DBPath     string
	ServerPort string
	LogLevel   string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:      getEnv("RIOT_API_KEY", ""),
		RiotPlatformURL: getEnv("RIOT_PLATFORM_URL", "https://na1.api.riotgames.com"),
		RiotRegionalURL: getEnv("RIOT_REGIONAL_URL", "https://americas.api.riotgames.com"),
		RiotTimeout:     constants.ExternalAPITimeout,
		DBPath:          getEnv("DB_PATH", "lol-tracker.db"),
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if v := getEnv("RIOT_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RIOT_TIMEOUT %q: %w", v, err)
		}
		cfg.RiotTimeout = d
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("riot_platform_url", cfg.RiotPlatformURL).
		Str("riot_regional_url", cfg.RiotRegionalURL).
		Dur("riot_timeout", cfg.RiotTimeout).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
