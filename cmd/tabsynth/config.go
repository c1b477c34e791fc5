package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/synthlab/tabsynth/pkg/tabsynth"
)

// Config represents the tabsynth.yaml configuration file.
type Config struct {
	Seed        uint64 `yaml:"seed"`
	Output      string `yaml:"output"`
	DatabaseURL string `yaml:"database_url"`
	Dialect     string `yaml:"dialect"`
	Table       string `yaml:"table"`
}

// loadConfig loads configuration from file, env vars, and CLI flags.
// Precedence: CLI flags > env vars > config file > defaults
func loadConfig() (*Config, error) {
	cfg := &Config{}

	// Load config file if it exists
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		// Handle env var interpolation in database_url
		cfg.DatabaseURL = os.Expand(cfg.DatabaseURL, os.Getenv)
	}

	// Override with env vars
	if envURL := os.Getenv("DATABASE_URL"); envURL != "" {
		cfg.DatabaseURL = envURL
	}
	if envSeed := os.Getenv("TABSYNTH_SEED"); envSeed != "" {
		if v, err := strconv.ParseUint(envSeed, 10, 64); err == nil {
			cfg.Seed = v
		}
	}

	// Override with CLI flags (highest priority)
	if seedFlagSet {
		cfg.Seed = seedFlag
	}

	return cfg, nil
}

// newClient creates a tabsynth client from the resolved configuration.
func newClient() (*tabsynth.Client, *Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return tabsynth.New(tabsynth.WithSeed(cfg.Seed)), cfg, nil
}
