// Package config handles loading and parsing application configuration.
// Sources, lowest priority first:
//  1. a .env file in the working directory (optional)
//  2. a YAML file named by --config or CONFIG_PATH (optional)
//  3. environment variables, which override the file
//
// Without a file every value falls back to its env-default, so the editor
// starts with zero configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage selects the Record Store backend: "memory" or "sqlite".
	Storage string `yaml:"storage" env:"STORAGE" env-default:"memory"`

	// StorageName names the private in-memory SQLite database. It is never
	// a file path: nothing is written to disk.
	StorageName string `yaml:"storage_name" env:"STORAGE_NAME" env-default:"users"`

	// SkipSeed starts with an empty table instead of the three demo users.
	SkipSeed bool `yaml:"skip_seed" env:"SKIP_SEED"`

	// LogPath receives logs in TUI mode; empty discards them there.
	LogPath string `yaml:"log_path" env:"LOG_PATH"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP renderer.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:"localhost:8082"`
}

// Load reads the configuration. An empty path falls back to CONFIG_PATH,
// and when neither is set only the environment is consulted.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config.Load: config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read env: %w", err)
	}

	switch cfg.Storage {
	case StorageMemory, StorageSQLite:
	default:
		return nil, fmt.Errorf("config.Load: unknown storage %q", cfg.Storage)
	}

	return &cfg, nil
}
