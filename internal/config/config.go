package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	TokenSecret        string
	TokenValidity      time.Duration
	SimInterval        time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
}

func Load() Config {
	port := os.Getenv("TRACKING_PORT")
	if port == "" {
		port = "3000"
	}

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "dev-only-insecure-secret"
	}

	return Config{
		Port:               port,
		TokenSecret:        secret,
		TokenValidity:      readDurationSeconds("TOKEN_VALIDITY_SECONDS", 24*60*60),
		SimInterval:        readDurationSeconds("SIM_INTERVAL_SECONDS", 15),
		RateLimitPerMinute: readInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     readInt("RATE_LIMIT_BURST", 30),
	}
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		return 0
	}
	return time.Duration(value) * time.Second
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
