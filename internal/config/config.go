// Package config loads the CLI configuration from a YAML file. The core
// packages take their dependencies by injection and never read config,
// flags, or environment themselves; this package belongs to the outer
// command surface only.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the buildsapi CLI.
type Config struct {
	Redis  RedisConfig  `yaml:"redis"`
	Player PlayerConfig `yaml:"player"`
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	Endpoint        string        `yaml:"endpoint"`
	PoolSize        int           `yaml:"pool_size"`
	MinIdleConns    int           `yaml:"min_idle_conns"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	MaxRetries      int           `yaml:"max_retries"`
}

// PlayerConfig holds defaults applied when a command omits a player id.
type PlayerConfig struct {
	DefaultID string `yaml:"default_id"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Redis: RedisConfig{
			Endpoint:        "localhost:6379",
			ConnMaxIdleTime: 5 * time.Minute,
		},
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error: the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from a CLI flag
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
