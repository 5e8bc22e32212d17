package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by BAYES_ENV (or .env by default), then
// its .secret sidecar if present. Values already in the environment win.
// Everything else in this package is a flat accessor over os.Getenv.
func Load() error {
	envFile := os.Getenv("BAYES_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// APIKey is the shared key required on /v1 routes. Empty disables auth.
func APIKey() string {
	return os.Getenv("API_KEY")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// NetworkCacheSize is the number of parsed networks kept in memory by the
// server. Defaults to 64.
func NetworkCacheSize() int {
	n, err := strconv.Atoi(os.Getenv("NETWORK_CACHE_SIZE"))
	if err != nil || n <= 0 {
		return 64
	}
	return n
}

// BatchWorkers bounds how many queries of one batch run at once.
// Defaults to 4.
func BatchWorkers() int {
	n, err := strconv.Atoi(os.Getenv("BATCH_WORKERS"))
	if err != nil || n <= 0 {
		return 4
	}
	return n
}

// RunRetentionDays is how long recorded query runs are kept by the server.
// Zero or unset keeps them forever.
func RunRetentionDays() int {
	n, err := strconv.Atoi(os.Getenv("RUN_RETENTION_DAYS"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
