package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/eventfold/eventfold/pkg/querycache"
)

type Config struct {
	ListenAddr string
	LogLevel   string

	PlatformURL string

	// DatabaseDSN selects the durable token store: a postgres:// URL
	// or a sqlite file path.
	DatabaseDSN string

	KafkaBrokers []string
	KafkaTopic   string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	CacheStaleAfter time.Duration
	CacheEvictAfter time.Duration
	CacheRetries    int
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		ListenAddr:  envDefault("GATEWAY_ADDR", ":8080"),
		LogLevel:    envDefault("LOG_LEVEL", "info"),
		PlatformURL: must(os.Getenv("PLATFORM_URL"), "PLATFORM_URL"),
		DatabaseDSN: envDefault("DATABASE_DSN", "eventfold.db"),

		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envDefault("KAFKA_AUDIT_TOPIC", "audit_events"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    envDefault("ES_INDEX", "events"),

		CacheStaleAfter: envDurationDefault("CACHE_STALE_AFTER", 5*time.Minute),
		CacheEvictAfter: envDurationDefault("CACHE_EVICT_AFTER", 30*time.Minute),
		CacheRetries:    envRetries("CACHE_READ_RETRIES", 1),
	}
	return cfg
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envRetries reads a retry count where an explicit 0 (or negative)
// means "no retries" and must survive the cache treating its zero
// value as unset.
func envRetries(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n <= 0 {
		return querycache.NoRetries
	}
	return n
}

func envDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}
