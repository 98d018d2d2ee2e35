package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"
)

// Config represents the full application configuration surface.
type Config struct {
	Studio    StudioConfig
	Reporting ReportingConfig
	Metrics   MetricsConfig
	Log       LogConfig
}

// StudioConfig holds the bulk-load file locations.
type StudioConfig struct {
	MemberFile   string
	ScheduleFile string
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// Enabled reports whether a billing report schedule is configured.
func (r ReportingConfig) Enabled() bool {
	return r.CronSchedule != ""
}

// MetricsConfig controls the prometheus textfile export.
type MetricsConfig struct {
	TextfilePath string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Studio: StudioConfig{
			MemberFile:   getenvWithDefault("MEMBER_LIST_FILE", "memberList.txt"),
			ScheduleFile: getenvWithDefault("CLASS_SCHEDULE_FILE", "classSchedule.txt"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * 5"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/New_York"),
		},
		Metrics: MetricsConfig{
			TextfilePath: os.Getenv("METRICS_TEXTFILE"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
	}
	if value, ok := os.LookupEnv("REPORT_CRON_SCHEDULE"); ok && value == "" {
		cfg.Reporting.CronSchedule = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and parse.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Studio.MemberFile == "" {
		return errors.New("MEMBER_LIST_FILE must not be empty")
	}
	if c.Studio.ScheduleFile == "" {
		return errors.New("CLASS_SCHEDULE_FILE must not be empty")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if c.Reporting.Enabled() {
		if _, err := cron.ParseStandard(c.Reporting.CronSchedule); err != nil {
			return fmt.Errorf("REPORT_CRON_SCHEDULE: %w", err)
		}
		if _, err := c.Reporting.Location(); err != nil {
			return fmt.Errorf("TIMEZONE: %w", err)
		}
	}

	return nil
}

// Location resolves the configured timezone.
func (r ReportingConfig) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(r.Timezone)
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
