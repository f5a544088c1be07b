package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	IsProduction   bool
	EnableDBCheck  bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable not set")
	}

	return cfg, nil
}
