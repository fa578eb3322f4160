package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogLevel  string
	LogFormat string

	DefaultStrategy   string
	ScheduleMaxMonths int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// Load reads the environment, after merging any of files that exist
// (".env" when none are given). Variables already set win over file values.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)

	c := &Config{
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFormat:         getenv("LOG_FORMAT", "text"),
		DefaultStrategy:   getenv("DEFAULT_STRATEGY", "default"),
		ScheduleMaxMonths: 600,
	}
	if v := os.Getenv("SCHEDULE_MAX_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ScheduleMaxMonths = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid LOG_FORMAT %q (want text or json)", c.LogFormat)
	}
	if c.DefaultStrategy == "" {
		return errors.New("missing DEFAULT_STRATEGY")
	}
	if c.ScheduleMaxMonths <= 0 {
		return fmt.Errorf("SCHEDULE_MAX_MONTHS must be positive, got %d", c.ScheduleMaxMonths)
	}
	return nil
}
