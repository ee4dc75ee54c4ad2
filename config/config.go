package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Lead ingestion
	LeadEndpointURL string
	// CORS: extra origins beyond the site domains (comma separated)
	ExtraCORSOrigins []string
	// Redis (optional shared cache / rate-limit backend)
	RedisURL      string
	RedisPassword string
	// Region cache freshness window
	RegionCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production where no .env exists.
	_ = godotenv.Load()

	regionTTL, err := getEnvDuration("REGION_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LeadEndpointURL: getEnv("LEAD_ENDPOINT_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RegionCacheTTL:  regionTTL,
	}

	if origins := getEnv("CORS_EXTRA_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.ExtraCORSOrigins = append(cfg.ExtraCORSOrigins, strings.TrimRight(strings.TrimSpace(origin), "/"))
		}
	}

	if cfg.LeadEndpointURL == "" {
		log.Println("WARNING: LEAD_ENDPOINT_URL is missing. Submissions will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Caching and rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvDuration reads a duration environment variable given in seconds.
// An unset variable takes the fallback; a set but malformed or non-positive
// value is a configuration error.
func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive number of seconds, got %q", key, value)
	}
	return time.Duration(secs) * time.Second, nil
}
