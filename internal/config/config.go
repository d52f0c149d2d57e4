package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/hoopstats/internal/logger"
)

const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

type Config struct {
	Addr            string
	SeasonSource    string
	SeasonPath      string
	LogLevel        string
	RedisAddr       string
	RedisDB         int
	ChartCacheTTL   time.Duration
	RenderRateLimit int
	RenderBurst     int
	WarmWorkers     int
	WarmQueueSize   int
	CORSOrigins     []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or unparseable.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		SeasonSource:    strings.ToLower(envOr("SEASON_SOURCE", SourceJSON)),
		SeasonPath:      envOr("SEASON_PATH", "games.json"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		RedisAddr:       envOr("REDIS_ADDR", ""),
		RedisDB:         envIntOr("REDIS_DB", 0),
		ChartCacheTTL:   envDurationOr("CHART_CACHE_TTL", 10*time.Minute),
		RenderRateLimit: envIntOr("RENDER_RATE_LIMIT", 20),
		RenderBurst:     envIntOr("RENDER_BURST", 40),
		WarmWorkers:     envIntOr("WARM_WORKERS", 2),
		WarmQueueSize:   envIntOr("WARM_QUEUE_SIZE", 16),
		CORSOrigins:     envListOr("CORS_ORIGINS", []string{"*"}),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if c.SeasonSource != SourceJSON && c.SeasonSource != SourceSQLite {
		errs = append(errs, fmt.Errorf("SEASON_SOURCE must be %q or %q, got %q", SourceJSON, SourceSQLite, c.SeasonSource))
	}
	if c.SeasonPath == "" {
		errs = append(errs, errors.New("SEASON_PATH cannot be empty"))
	}
	if c.LogLevel == "" {
		errs = append(errs, errors.New("LOG_LEVEL cannot be empty"))
	} else if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("REDIS_DB must be >= 0, got %d", c.RedisDB))
	}
	if c.ChartCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("CHART_CACHE_TTL must be positive, got %s", c.ChartCacheTTL))
	}
	if c.RenderRateLimit < 1 {
		errs = append(errs, fmt.Errorf("RENDER_RATE_LIMIT must be >= 1, got %d", c.RenderRateLimit))
	}
	if c.RenderBurst < 1 {
		errs = append(errs, fmt.Errorf("RENDER_BURST must be >= 1, got %d", c.RenderBurst))
	}
	if c.WarmWorkers < 1 {
		errs = append(errs, fmt.Errorf("WARM_WORKERS must be >= 1, got %d", c.WarmWorkers))
	}
	if c.WarmQueueSize < 1 {
		errs = append(errs, fmt.Errorf("WARM_QUEUE_SIZE must be >= 1, got %d", c.WarmQueueSize))
	}
	if len(c.CORSOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ORIGINS cannot be empty"))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
