// Package config centralizes environment-driven settings and logger
// construction. A .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port        string
	Environment string // "development" | "production"
	DataDir     string

	CORSAllowOrigins []string

	SweepEnabled  bool
	SweepInterval time.Duration
}

func Load() Config {
	_ = godotenv.Load() // optional; real env wins

	return Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("APP_ENV", "development"),
		DataDir:          getEnv("DATA_DIR", "data"),
		CORSAllowOrigins: splitEnv("CORS_ALLOW_ORIGINS", "*"),
		SweepEnabled:     getEnvBool("SWEEP_ENABLED", false),
		SweepInterval:    time.Duration(getEnvInt("SWEEP_INTERVAL_MINUTES", 15)) * time.Minute,
	}
}

// NewLogger builds the process logger: human-readable in development,
// JSON in production.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %s=%q is not an integer, using %d\n", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
