// Package config loads menuview settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"menuview/internal/menu"
)

const (
	DefaultAPIURL   = "https://api.mudoapi.site"
	DefaultTimeout  = 10 * time.Second
	DefaultStubAddr = ":8089"
)

// Config holds every setting the menuview and menustub binaries read.
type Config struct {
	API       APIConfig
	Auth      AuthConfig
	LogFile   string
	Telemetry TelemetryConfig
	Stub      StubConfig
}

type APIConfig struct {
	BaseURL string
	PerPage int
	Timeout time.Duration
}

type AuthConfig struct {
	TokenFile string // empty means ~/.menuview/access_token
	Token     string // takes precedence over TokenFile
}

type TelemetryConfig struct {
	Endpoint    string // OTLP/HTTP endpoint; empty disables tracing
	ServiceName string
}

type StubConfig struct {
	Addr  string
	Token string // bearer token the stub accepts; empty accepts any
}

// Load reads .env (if present) and then the process environment.
// Malformed numbers and durations fall back to their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	perPage, err := strconv.Atoi(getEnv("MENUVIEW_PER_PAGE", ""))
	if err != nil || perPage <= 0 {
		perPage = menu.DefaultPerPage
	}
	timeout, err := time.ParseDuration(getEnv("MENUVIEW_TIMEOUT", ""))
	if err != nil || timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("MENUVIEW_API_URL", DefaultAPIURL), "/"),
			PerPage: perPage,
			Timeout: timeout,
		},
		Auth: AuthConfig{
			TokenFile: getEnv("MENUVIEW_TOKEN_FILE", ""),
			Token:     getEnv("MENUVIEW_ACCESS_TOKEN", ""),
		},
		LogFile: getEnv("MENUVIEW_LOG_FILE", ""),
		Telemetry: TelemetryConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "menuview"),
		},
		Stub: StubConfig{
			Addr:  getEnv("MENUSTUB_ADDR", DefaultStubAddr),
			Token: getEnv("MENUSTUB_TOKEN", ""),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
