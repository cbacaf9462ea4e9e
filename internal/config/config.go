package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCheckTimeout  = 2 * time.Second
	defaultMaxHops       = 10
	defaultMaxRetries    = 5
	defaultCacheTTL      = 10 * time.Minute
	defaultSweepInterval = time.Hour
)

var ErrMissingEnv = errors.New("missing required environment variables")

type ClickHouse struct {
	Addr     string
	User     string
	Password string
	DB       string
}

type Config struct {
	Port               string
	BaseURL            string
	PostgresURL        string
	RedisAddr          string
	RedisPassword      string
	ClickHouse         ClickHouse
	GeoIPPath          string
	SafeBrowsingAPIKey string
	TelegramToken      string

	CheckTimeout    time.Duration
	CheckMaxHops    int
	CheckMaxRetries int
	CacheTTL        time.Duration
	SweepInterval   time.Duration
	Location        *time.Location
}

// Load reads .env (if present) and the process environment.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("Error loading .env file", "error", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		BaseURL:       strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		PostgresURL:   os.Getenv("DB_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ClickHouse: ClickHouse{
			Addr:     os.Getenv("CLICKHOUSE_ADDR"),
			User:     os.Getenv("CLICKHOUSE_USER"),
			Password: os.Getenv("CLICKHOUSE_PASSWORD"),
			DB:       os.Getenv("CLICKHOUSE_DB"),
		},
		GeoIPPath:          os.Getenv("GEOIP_DB_PATH"),
		SafeBrowsingAPIKey: os.Getenv("SAFE_BROWSING_API_KEY"),
		TelegramToken:      os.Getenv("TELEGRAM_API_TOKEN"),
	}

	var missing []string
	for name, value := range map[string]string{
		"PORT":            cfg.Port,
		"DB_URL":          cfg.PostgresURL,
		"REDIS_ADDR":      cfg.RedisAddr,
		"CLICKHOUSE_ADDR": cfg.ClickHouse.Addr,
		"CLICKHOUSE_USER": cfg.ClickHouse.User,
		"CLICKHOUSE_DB":   cfg.ClickHouse.DB,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	var err error
	if cfg.CheckTimeout, err = durationEnv("CHECK_TIMEOUT", defaultCheckTimeout); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = durationEnv("SWEEP_INTERVAL", defaultSweepInterval); err != nil {
		return nil, err
	}
	if cfg.CheckMaxHops, err = intEnv("CHECK_MAX_HOPS", defaultMaxHops); err != nil {
		return nil, err
	}
	if cfg.CheckMaxRetries, err = intEnv("CHECK_MAX_RETRIES", defaultMaxRetries); err != nil {
		return nil, err
	}

	cfg.Location = time.UTC
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
		}
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
