package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobboard-dev/jobboard/internal/client"
	"github.com/spf13/viper"
)

// initConfig loads ~/.jobctl/config.yaml, overridable with JOBCTL_*
// environment variables.
func initConfig() error {
	homeDir, err := os.UserHomeDir()

	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".jobctl")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetDefault("base_url", "http://localhost:5000")
	viper.SetDefault("session_file", filepath.Join(configDir, "session.json"))
	viper.SetDefault("database_url", "")

	viper.SetEnvPrefix("jobctl")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// apiClient builds a Client with the persisted session attached.
func apiClient() (*client.Client, error) {
	session, err := client.NewSession(viper.GetString("session_file"))

	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return client.New(viper.GetString("base_url"), session), nil
}

func databaseURL() (string, error) {
	dsn := viper.GetString("database_url")

	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}

	if dsn == "" {
		return "", fmt.Errorf("database_url is not configured (set it in config.yaml or DATABASE_URL)")
	}

	return dsn, nil
}
