// Package config provides runtime configuration for the dashboard:
// the four remote endpoint URLs, the durable slot path, and the HTTP
// timeout. Values come from an optional yaml file with environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file consulted when --config is not given.
const DefaultPath = "repricer.yaml"

// EndpointConfig names the four remote workflow execution URLs.
type EndpointConfig struct {
	Enroll  string `yaml:"enroll"`
	Fetch   string `yaml:"fetch"`
	Approve string `yaml:"approve"`
	Delete  string `yaml:"delete"`
}

// Config holds all runtime knobs.
type Config struct {
	Database       string         `yaml:"database"`
	TimeoutSeconds int            `yaml:"timeout_seconds"`
	Endpoints      EndpointConfig `yaml:"endpoints"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Database:       "repricer.db",
		TimeoutSeconds: 30,
	}
}

// Load reads configuration from the given path (or DefaultPath when path
// is empty and the file exists), then applies environment overrides:
// REPRICER_DB, REPRICER_TIMEOUT_SECONDS, REPRICER_ENROLL_URL,
// REPRICER_FETCH_URL, REPRICER_APPROVE_URL, REPRICER_DELETE_URL.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REPRICER_DB"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("REPRICER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("REPRICER_ENROLL_URL"); v != "" {
		cfg.Endpoints.Enroll = v
	}
	if v := os.Getenv("REPRICER_FETCH_URL"); v != "" {
		cfg.Endpoints.Fetch = v
	}
	if v := os.Getenv("REPRICER_APPROVE_URL"); v != "" {
		cfg.Endpoints.Approve = v
	}
	if v := os.Getenv("REPRICER_DELETE_URL"); v != "" {
		cfg.Endpoints.Delete = v
	}
}

// HTTPTimeout returns the transport timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ValidateEndpoints checks that all four remote URLs are configured.
// Only commands that talk to the remote authority require this.
func (c Config) ValidateEndpoints() error {
	missing := ""
	switch {
	case c.Endpoints.Enroll == "":
		missing = "enroll"
	case c.Endpoints.Fetch == "":
		missing = "fetch"
	case c.Endpoints.Approve == "":
		missing = "approve"
	case c.Endpoints.Delete == "":
		missing = "delete"
	}
	if missing != "" {
		return errors.New("missing endpoint URL: " + missing)
	}
	return nil
}
