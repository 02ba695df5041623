package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Airtable AirtableConfig `mapstructure:"airtable"`
	Log      LogConfig      `mapstructure:"log"`
}

// TelegramConfig holds the messaging transport credential
type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

// AirtableConfig holds the data source credentials and collection
type AirtableConfig struct {
	APIKey string `mapstructure:"api_key"`
	BaseID string `mapstructure:"base_id"`
	Table  string `mapstructure:"table"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Airtable defaults
	viper.SetDefault("airtable.table", "MainDB")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// Validate checks the startup-fatal parameters for the bot process.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Telegram.Token) == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	missing = append(missing, c.missingAirtable()...)
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateSource checks only the data-source parameters, for commands that
// never touch the chat transport.
func (c *Config) ValidateSource() error {
	if missing := c.missingAirtable(); len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) missingAirtable() []string {
	var missing []string
	if strings.TrimSpace(c.Airtable.APIKey) == "" {
		missing = append(missing, "AIRTABLE_API_KEY")
	}
	if strings.TrimSpace(c.Airtable.BaseID) == "" {
		missing = append(missing, "AIRTABLE_BASE_ID")
	}
	return missing
}
