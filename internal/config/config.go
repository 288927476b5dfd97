package config

import (
	"os"
	"time"
)

type Config struct {
	Port          string
	GinMode       string
	SessionTTL    time.Duration
	SubmitTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SessionTTL:    getDuration("SESSION_TTL", 30*time.Minute),
		SubmitTimeout: getDuration("SUBMIT_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
