package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey string
	Region     string
	ServerPort string
	LogLevel   string

	// SampleBuffer is the pause between sequential match fetches in the
	// sampled trend mode; FullReportBuffer the same for full-report mode.
	// Both exist to stay under the upstream per-key rate ceiling.
	SampleBuffer     time.Duration
	FullReportBuffer time.Duration
	FullReport       bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:       getEnv("RIOT_API_KEY", ""),
		Region:           getEnv("RIOT_REGION", "americas"),
		ServerPort:       getEnv("SERVER_PORT", "4000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SampleBuffer:     getEnvMillis("SAMPLE_BUFFER_MS", 3000),
		FullReportBuffer: getEnvMillis("FULL_REPORT_BUFFER_MS", 2000),
		FullReport:       getEnvBool("FULL_REPORT", false),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("region", cfg.Region).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("sample_buffer", cfg.SampleBuffer).
		Dur("full_report_buffer", cfg.FullReportBuffer).
		Bool("full_report", cfg.FullReport).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvMillis(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallback) * time.Millisecond
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
