package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"worldclock/internal/worldclock"
)

type Config struct {
	// Server
	Address     string `envconfig:"ADDRESS" default:":8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	SiteName    string `envconfig:"SITE_NAME" default:"World Clock"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Clocks
	LocalTimezone  string   `envconfig:"LOCAL_TIMEZONE"`
	ReferenceZones []string `envconfig:"REFERENCE_ZONES" default:"US/Eastern,US/Pacific,Europe/Paris,Asia/Kolkata,Asia/Tokyo"`
	ClockCount     int      `envconfig:"CLOCK_COUNT" default:"5"`
	HourFormat     string   `envconfig:"HOUR_FORMAT" default:"12-hour"`
	RefreshSeconds int      `envconfig:"REFRESH_SECONDS" default:"1"`
	ZoneCacheSize  int      `envconfig:"ZONE_CACHE_SIZE" default:"128"`

	// EnvFile reports whether a .env file was read.
	EnvFile bool `ignored:"true"`
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	cfg.EnvFile = envErr == nil

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ClockCount < 1 {
		return fmt.Errorf("CLOCK_COUNT must be at least 1, got %d", c.ClockCount)
	}
	if c.RefreshSeconds < 1 {
		return fmt.Errorf("REFRESH_SECONDS must be at least 1, got %d", c.RefreshSeconds)
	}
	if c.ZoneCacheSize < 1 {
		return fmt.Errorf("ZONE_CACHE_SIZE must be at least 1, got %d", c.ZoneCacheSize)
	}
	if _, err := worldclock.ParseHourStyle(c.HourFormat); err != nil {
		return fmt.Errorf("HOUR_FORMAT: %w", err)
	}
	return nil
}

func (c *Config) HourStyle() worldclock.HourStyle {
	style, _ := worldclock.ParseHourStyle(c.HourFormat)
	return style
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
