// Package config holds app configuration (paths, logging) and the typed
// user settings blob persisted in the key-value store.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the process-level configuration, resolved from defaults, an
// optional config file and FAMLEDGER_* environment variables.
type Config struct {
	// DataDir is where the database file and key-value state live.
	DataDir string `mapstructure:"data_dir"`

	// DBFile is the database filename inside DataDir.
	DBFile string `mapstructure:"db_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DBPath returns the full path to the database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// StateDir returns the directory for key-value state.
func (c Config) StateDir() string {
	return filepath.Join(c.DataDir, "state")
}

// Load resolves the configuration. Precedence: environment variables over
// config file over defaults. A missing config file is fine; a malformed
// one is an error.
func Load() (Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	v.SetDefault("data_dir", filepath.Join(home, "Documents", "FamLedger"))
	v.SetDefault("db_file", "famledger.db")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("FAMLEDGER")
	v.AutomaticEnv()

	v.SetConfigName("famledger")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "famledger"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
