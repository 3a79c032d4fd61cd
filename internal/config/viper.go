// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		CategoriesFile      string `mapstructure:"categories_file" yaml:"categories_file"`
		TransfersFile       string `mapstructure:"transfers_file" yaml:"transfers_file"`
		BroadCategoriesFile string `mapstructure:"broad_categories_file" yaml:"broad_categories_file"`
	} `mapstructure:"rules" yaml:"rules"`

	Reconciliation struct {
		AmountTolerance   float64 `mapstructure:"amount_tolerance" yaml:"amount_tolerance"`
		DayTolerance      int     `mapstructure:"day_tolerance" yaml:"day_tolerance"`
		ExclusiveMatching bool    `mapstructure:"exclusive_matching" yaml:"exclusive_matching"`
	} `mapstructure:"reconciliation" yaml:"reconciliation"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finanalyzer")
	v.AddConfigPath(".finanalyzer")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("rules.categories_file", "")
	v.SetDefault("rules.transfers_file", "")
	v.SetDefault("rules.broad_categories_file", "")

	v.SetDefault("reconciliation.amount_tolerance", 1.0)
	v.SetDefault("reconciliation.day_tolerance", 3)
	v.SetDefault("reconciliation.exclusive_matching", false)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Reconciliation.AmountTolerance < 0 {
		return fmt.Errorf("reconciliation.amount_tolerance must be non-negative, got: %f", config.Reconciliation.AmountTolerance)
	}

	if config.Reconciliation.DayTolerance < 0 {
		return fmt.Errorf("reconciliation.day_tolerance must be non-negative, got: %d", config.Reconciliation.DayTolerance)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
