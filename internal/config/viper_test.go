package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 1.0, cfg.Reconciliation.AmountTolerance)
	assert.Equal(t, 3, cfg.Reconciliation.DayTolerance)
	assert.False(t, cfg.Reconciliation.ExclusiveMatching)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Setenv("FIN_LOG_LEVEL", "debug")
	t.Setenv("FIN_RECONCILIATION_DAY_TOLERANCE", "5")

	cfg := defaultConfig(t)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Reconciliation.DayTolerance)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"multi char delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }, "single character"},
		{"negative amount tolerance", func(c *Config) { c.Reconciliation.AmountTolerance = -1 }, "amount_tolerance"},
		{"negative day tolerance", func(c *Config) { c.Reconciliation.DayTolerance = -1 }, "day_tolerance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfig_InvalidLevelFallsBack(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Log.Level = "chatty"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
