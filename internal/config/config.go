// Package config loads CLI configuration from environment variables
// and an optional config file. The library itself takes an explicit
// struct; this package only serves the command line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "NOTION2HTML"

	// ConfigFileName is the name of the config file.
	ConfigFileName = "config"
	// ConfigFileType is the type of the config file.
	ConfigFileType = "toml"
)

// Config holds the CLI configuration.
type Config struct {
	Token      string        `mapstructure:"token"`
	DatabaseID string        `mapstructure:"database_id"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

// Load loads configuration from environment variables and the config
// file. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Token == "" {
		// NOTION_TOKEN is the conventional variable for integrations.
		cfg.Token = os.Getenv("NOTION_TOKEN")
	}
	if cfg.DatabaseID == "" {
		cfg.DatabaseID = os.Getenv("NOTION_DATABASE_ID")
	}

	return &cfg, nil
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notion2html"), nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required. Set NOTION2HTML_TOKEN or NOTION_TOKEN")
	}
	return nil
}

// ValidateDatabase checks that a database is configured for listing.
func (c *Config) ValidateDatabase() error {
	if c.DatabaseID == "" {
		return fmt.Errorf("database_id is required. Set NOTION2HTML_DATABASE_ID or NOTION_DATABASE_ID")
	}
	return nil
}
