// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/voice-expense/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key read from the environment.
const EnvPrefix = "VOICE_EXPENSE"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Taxonomy struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"taxonomy" yaml:"taxonomy"`

	Dates struct {
		Timezone string `mapstructure:"timezone" yaml:"timezone"`
	} `mapstructure:"dates" yaml:"dates"`

	Batch struct {
		Workers   int    `mapstructure:"workers" yaml:"workers"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then VOICE_EXPENSE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.voice-expense")
	v.AddConfigPath(".voice-expense")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// keep going with defaults and env vars
			logging.GetLogger().WithError(err).Warn("Error reading config file",
				logging.Field{Key: logging.FieldInputFile, Value: v.ConfigFileUsed()})
		}
	}

	// the API key keeps its conventional, unprefixed name
	if err := v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "GEMINI_API_KEY"); err != nil {
		logging.GetLogger().WithError(err).Warn("Failed to bind GEMINI_API_KEY environment variable")
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

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("taxonomy.file", "")

	v.SetDefault("dates.timezone", "Local")

	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	if _, err := time.LoadLocation(config.Dates.Timezone); err != nil {
		return fmt.Errorf("invalid dates.timezone: %s", config.Dates.Timezone)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return fmt.Errorf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers)
	}

	if len([]rune(config.Batch.Delimiter)) != 1 {
		return fmt.Errorf("batch delimiter must be a single character, got: %s", config.Batch.Delimiter)
	}

	return nil
}

// Validate checks a configuration that was changed after loading,
// for instance by command-line flags.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// Location returns the time zone used to decide what "today" is.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Dates.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AITimeout returns the per-request deadline for the remote collaborator.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// DelimiterRune returns the batch CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Batch.Delimiter {
		return r
	}
	return ','
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
