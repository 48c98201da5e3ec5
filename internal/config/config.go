// Package config loads service configuration from an optional YAML file and
// the environment. Env vars win over the file; both win over defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port          int    `yaml:"port"`
	DBPath        string `yaml:"db_path"`
	EngineBaseURL string `yaml:"engine_base_url"`
	// EngineTimeoutSecs bounds each engine round trip; exceeding it counts
	// as a transport failure and degrades.
	EngineTimeoutSecs int    `yaml:"engine_timeout_secs"`
	AuthSecret        string `yaml:"auth_secret"`
	LogLevel          string `yaml:"log_level"`
}

// Load builds the config from defaults, then the YAML file named by
// LUMEN_CONFIG (if set), then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              8640,
		DBPath:            "/data/lumen.db",
		EngineBaseURL:     "http://localhost:8670",
		EngineTimeoutSecs: 30,
		LogLevel:          "info",
	}

	if path := os.Getenv("LUMEN_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.DBPath = envStr("LUMEN_DB_PATH", cfg.DBPath)
	cfg.EngineBaseURL = envStr("ENGINE_BASE_URL", cfg.EngineBaseURL)
	cfg.EngineTimeoutSecs = envInt("ENGINE_TIMEOUT_SECS", cfg.EngineTimeoutSecs)
	cfg.AuthSecret = envStr("AUTH_SECRET", cfg.AuthSecret)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// EngineTimeout is the per-call deadline for the analysis engine.
func (c *Config) EngineTimeout() time.Duration {
	return time.Duration(c.EngineTimeoutSecs) * time.Second
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("LUMEN_DB_PATH must not be empty")
	}
	if c.EngineBaseURL == "" {
		return fmt.Errorf("ENGINE_BASE_URL must not be empty")
	}
	if c.EngineTimeoutSecs < 1 {
		return fmt.Errorf("ENGINE_TIMEOUT_SECS must be positive, got %d", c.EngineTimeoutSecs)
	}
	if c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET must not be empty")
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
