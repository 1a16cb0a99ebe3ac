package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures all service configuration. FromEnv keeps main lean.
type Server struct {
	Addr string

	// PostgresDSN selects the full-dataset division store; empty means the
	// embedded GB/T 2260 table.
	PostgresDSN string

	// RedisURL enables the division read-through cache; empty disables it.
	RedisURL string
	CacheTTL time.Duration

	// KafkaBrokers enables the Kafka audit sink; empty keeps the trail in
	// memory.
	KafkaBrokers []string
	KafkaTopic   string

	// JWTSigningKey guards the admin endpoints.
	JWTSigningKey string

	BatchLimit int
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:          envOr("IDCHECK_ADDR", ":8080"),
		PostgresDSN:   os.Getenv("IDCHECK_POSTGRES_DSN"),
		RedisURL:      os.Getenv("IDCHECK_REDIS_URL"),
		CacheTTL:      envDuration("IDCHECK_CACHE_TTL", 12*time.Hour),
		KafkaTopic:    envOr("IDCHECK_KAFKA_TOPIC", "idcheck.audit"),
		JWTSigningKey: envOr("IDCHECK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		BatchLimit:    envInt("IDCHECK_BATCH_LIMIT", 100),
	}
	if brokers := os.Getenv("IDCHECK_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
