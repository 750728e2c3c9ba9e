// Package config provides configuration management for the multinoise climate
// sampling library. It handles environment variable loading, validation, and
// secure defaults for the catalog loader and the bulk grid sampler.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"multinoise/pkg/retry"
)

// Config holds environment-driven defaults for the catalog loader and the
// cmd/worldgen CLI. The pure noise/climate/sampler packages take all their
// parameters as explicit Go values; this Config exists only for the ambient
// concerns that have an environment surface: where catalogs live on disk,
// retry tuning values, and how fast a bulk grid evaluation is allowed to
// run. The retry values are exposed through GetRetryConfig; catalog loads
// use the fixed retry configurations of pkg/integration, not these values.
//
// Config is safe for concurrent reads; field access should go through the
// getter methods when shared across goroutines.
type Config struct {
	mu sync.RWMutex `json:"-"`

	// CatalogDir is the directory biome catalog and noise preset YAML files
	// are loaded from and saved to.
	CatalogDir string `json:"catalog_dir"`

	// LogLevel controls logrus verbosity (debug, info, warn, error).
	LogLevel string `json:"log_level"`

	// Retry configuration, returned by GetRetryConfig. Catalog/preset file
	// loads do not read these fields.

	RetryEnabled           bool          `json:"retry_enabled"`
	RetryMaxAttempts       int           `json:"retry_max_attempts"`
	RetryInitialDelay      time.Duration `json:"retry_initial_delay"`
	RetryMaxDelay          time.Duration `json:"retry_max_delay"`
	RetryBackoffMultiplier float64       `json:"retry_backoff_multiplier"`
	RetryJitterPercent     int           `json:"retry_jitter_percent"`

	// Grid sampling rate limit, consulted by cmd/worldgen for large bulk
	// evaluations. A zero SamplesPerSecond disables limiting.

	SamplesPerSecond float64 `json:"samples_per_second"`
	SampleBurst      int     `json:"sample_burst"`
}

// Load creates a new Config from environment variables, applying secure
// defaults when a variable is unset.
func Load() (*Config, error) {
	cfg := &Config{
		CatalogDir: getEnvAsString("WORLDGEN_CATALOG_DIR", "./catalogs"),
		LogLevel:   getEnvAsString("WORLDGEN_LOG_LEVEL", "info"),

		RetryEnabled:           getEnvAsBool("WORLDGEN_RETRY_ENABLED", true),
		RetryMaxAttempts:       getEnvAsInt("WORLDGEN_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay:      getEnvAsDuration("WORLDGEN_RETRY_INITIAL_DELAY", 100*time.Millisecond),
		RetryMaxDelay:          getEnvAsDuration("WORLDGEN_RETRY_MAX_DELAY", 5*time.Second),
		RetryBackoffMultiplier: getEnvAsFloat64("WORLDGEN_RETRY_BACKOFF_MULTIPLIER", 2.0),
		RetryJitterPercent:     getEnvAsInt("WORLDGEN_RETRY_JITTER_PERCENT", 10),

		SamplesPerSecond: getEnvAsFloat64("WORLDGEN_SAMPLES_PER_SECOND", 0),
		SampleBurst:      getEnvAsInt("WORLDGEN_SAMPLE_BURST", 1024),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if strings.ToLower(c.LogLevel) == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("log level must be one of %v, got %s", validLogLevels, c.LogLevel)
	}

	if c.RetryEnabled {
		if c.RetryMaxAttempts < 1 {
			return fmt.Errorf("retry max attempts must be at least 1 when retry is enabled")
		}
		if c.RetryInitialDelay < 0 {
			return fmt.Errorf("retry initial delay must be non-negative when retry is enabled")
		}
		if c.RetryMaxDelay < c.RetryInitialDelay {
			return fmt.Errorf("retry max delay must be greater than or equal to initial delay when retry is enabled")
		}
		if c.RetryBackoffMultiplier <= 1.0 {
			return fmt.Errorf("retry backoff multiplier must be greater than 1.0 when retry is enabled")
		}
		if c.RetryJitterPercent < 0 || c.RetryJitterPercent > 100 {
			return fmt.Errorf("retry jitter percent must be between 0 and 100 when retry is enabled")
		}
	}

	if c.SamplesPerSecond < 0 {
		return fmt.Errorf("samples per second must be non-negative, got %v", c.SamplesPerSecond)
	}
	if c.SamplesPerSecond > 0 && c.SampleBurst <= 0 {
		return fmt.Errorf("sample burst must be greater than 0 when a sample rate limit is set")
	}

	return nil
}

// GetCatalogDir returns the configured catalog directory.
func (c *Config) GetCatalogDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogDir
}

// GetRetryConfig converts the retry settings into a retry.RetryConfig for use
// with retry.NewRetrier.
func (c *Config) GetRetryConfig() retry.RetryConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return retry.RetryConfig{
		MaxAttempts:       c.RetryMaxAttempts,
		InitialDelay:      c.RetryInitialDelay,
		MaxDelay:          c.RetryMaxDelay,
		BackoffMultiplier: c.RetryBackoffMultiplier,
		JitterMaxPercent:  c.RetryJitterPercent,
		RetryableErrors:   []error{},
	}
}

// Helper functions for environment variable parsing with type safety and defaults.

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
