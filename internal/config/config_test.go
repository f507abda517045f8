package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speero/partsbilling/internal/types"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())

	lookback, err := cfg.Billing.InitialLookbackTime()
	require.NoError(t, err)
	assert.Equal(t, 2021, lookback.Year())
}

func TestValidateRejectsBadLookback(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Billing.InitialLookback = "01-04-2021"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = types.LogLevel("verbose")

	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateRejectsMissingCronSpec(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Billing.CronSpec = ""

	err := cfg.Validate()
	require.Error(t, err)
}
