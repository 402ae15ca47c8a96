package config

import (
	"os"
	"strconv"

	"datalens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Sampling SamplingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
}

// DataConfig holds data source settings
type DataConfig struct {
	FilePath string
}

// DatabaseConfig holds optional profile-registry settings
type DatabaseConfig struct {
	URL string // empty disables the registry
}

// SamplingConfig holds defaults for the sampling controls
type SamplingConfig struct {
	DefaultN int
	MinN     int
	Seed     int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8090"),
		},
		Data: DataConfig{
			FilePath: getEnvOrDefault("DATA_FILE", "data/raw/merged_file.csv"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Sampling: SamplingConfig{
			DefaultN: getEnvIntOrDefault("SAMPLE_DEFAULT", 5000),
			MinN:     getEnvIntOrDefault("SAMPLE_MIN", 100),
			Seed:     int64(getEnvIntOrDefault("SAMPLE_SEED", 42)),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.FilePath == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	if config.Sampling.DefaultN < 1 {
		return errors.ConfigInvalid("SAMPLE_DEFAULT must be positive")
	}
	if config.Sampling.MinN < 1 {
		return errors.ConfigInvalid("SAMPLE_MIN must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
