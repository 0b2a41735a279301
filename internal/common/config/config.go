// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default upstream endpoint for the CTA Train Tracker arrivals API.
const DefaultAPIBaseURL = "http://lapi.transitchicago.com/api/1.0/ttarrivals.aspx"

type Config struct {
	API     APIConfig
	Board   BoardConfig
	Logging LoggingConfig
}

// APIConfig for the upstream arrivals call
type APIConfig struct {
	Key     string
	StopID  string
	BaseURL string
	Timeout time.Duration
}

// BoardConfig for the rendered arrivals board
type BoardConfig struct {
	OutputDir       string
	RefreshInterval int // seconds, drives the page's meta-refresh directive
	Timezone        string
}

type LoggingConfig struct {
	Level    string
	FilePath string
}

// Load builds the configuration from the environment. The API key and stop
// identifier are required; missing either is a startup error, surfaced before
// any fetch or render is attempted.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			Key:     os.Getenv("CTA_API_KEY"),
			StopID:  os.Getenv("CTA_STOP_ID"),
			BaseURL: getEnv("CTA_API_BASE_URL", DefaultAPIBaseURL),
			Timeout: getDurationEnv("CTA_HTTP_TIMEOUT", 10*time.Second),
		},
		Board: BoardConfig{
			OutputDir:       getEnv("OUTPUT_DIR", "www"),
			RefreshInterval: getIntEnv("REFRESH_INTERVAL_SECONDS", 2),
			Timezone:        getEnv("CTA_TIMEZONE", "America/Chicago"),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", "ctatracker.log"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present and usable.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("CTA_API_KEY is required")
	}
	if c.API.StopID == "" {
		return fmt.Errorf("CTA_STOP_ID is required")
	}
	if _, err := time.LoadLocation(c.Board.Timezone); err != nil {
		return fmt.Errorf("invalid CTA_TIMEZONE %q: %w", c.Board.Timezone, err)
	}
	return nil
}

// Location returns the transit system's local zone. Validate has already
// checked that the name loads.
func (c *BoardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
