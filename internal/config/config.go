package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the kubeconfig service. Cluster
// inputs are not configured here: they arrive with each render request.
type Config struct {
	Port           string  `json:"port"`
	CORSOrigin     string  `json:"-"`
	RateLimitRPS   float64 `json:"rateLimitRps"`
	RateLimitBurst int     `json:"rateLimitBurst"`
}

// Load reads configuration from environment variables, applying defaults
// where appropriate, and validates the result.
func Load() (*Config, error) {
	rps, err := envFloat("RATE_LIMIT_RPS", 10)
	if err != nil {
		return nil, err
	}

	burst, err := envInt("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           envOrDefault("PORT", "8080"),
		CORSOrigin:     os.Getenv("CORS_ORIGIN"),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envFloat(key string, defaultValue float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, v)
	}
	return f, nil
}

func envInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
