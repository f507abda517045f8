// Package config loads application configuration from file and environment.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/types"
)

// Configuration is the root configuration object.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Sentry  SentryConfig  `mapstructure:"sentry"`
	Billing BillingConfig `mapstructure:"billing"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// BillingConfig controls the invoicing run.
type BillingConfig struct {
	// CronSpec is the schedule for the invoicing run, cron format.
	CronSpec string `mapstructure:"cron_spec" validate:"required"`
	// RunOnStart triggers one run immediately when the daemon starts.
	RunOnStart bool `mapstructure:"run_on_start"`
	// InitialLookback bounds the very first run, before a watermark from a
	// completed run exists. RFC3339 date.
	InitialLookback string `mapstructure:"initial_lookback" validate:"required"`
}

// InitialLookbackTime parses the configured initial lookback date.
func (c BillingConfig) InitialLookbackTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.InitialLookback)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("Invalid initial_lookback %q, expected RFC3339", c.InitialLookback).
			Mark(ierr.ErrValidation)
	}
	return t, nil
}

// NewConfig loads configuration from ./config.yaml (optional) and the
// environment (PARTSBILLING_ prefix), then validates it.
func NewConfig() (*Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("PARTSBILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, env and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read configuration file").
				Mark(ierr.ErrSystem)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrSystem)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("billing.cron_spec", "0 0 * * *")
	v.SetDefault("billing.run_on_start", true)
	v.SetDefault("billing.initial_lookback", "2021-04-01T00:00:00Z")
}

// Validate validates the configuration.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return ierr.WithError(err).
			WithHint("Configuration validation failed").
			Mark(ierr.ErrValidation)
	}
	if !c.Logging.Level.Validate() {
		return ierr.NewErrorf("invalid logging level: %s", c.Logging.Level).
			WithHint("Logging level must be one of debug, info, warn, error").
			Mark(ierr.ErrValidation)
	}
	if _, err := c.Billing.InitialLookbackTime(); err != nil {
		return err
	}
	return nil
}

// GetDefaultConfig returns a configuration suitable for tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Sentry:  SentryConfig{Enabled: false, SampleRate: 1.0},
		Billing: BillingConfig{
			CronSpec:        "0 0 * * *",
			RunOnStart:      true,
			InitialLookback: "2021-04-01T00:00:00Z",
		},
	}
}
