package core

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds global configuration for mcpd.
type Config struct {
	Limits LimitsConfig `json:"limits"`
	Log    LogConfig    `json:"log"`
}

// LimitsConfig holds transport and handler limits.
type LimitsConfig struct {
	MaxFrameBytes    int `json:"max_frame_bytes"`
	HandlerTimeoutMS int `json:"handler_timeout_ms"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `json:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxFrameBytes:    10 * 1024 * 1024, // 10MB
			HandlerTimeoutMS: 0,                // disabled
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from config.json in the data directory.
// Falls back to default configuration if config.json doesn't exist.
// Environment variables override both file and default values.
func LoadConfig(dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config.json
	if data, err := os.ReadFile(ConfigPath(dataDir)); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.json: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config.json: %w", err)
	}
	// If file doesn't exist, we continue with defaults

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv("MCPD_MAX_FRAME_BYTES"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid MCPD_MAX_FRAME_BYTES: %w", err)
		}
		cfg.Limits.MaxFrameBytes = parsed
	}

	if val, ok := os.LookupEnv("MCPD_HANDLER_TIMEOUT_MS"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid MCPD_HANDLER_TIMEOUT_MS: %w", err)
		}
		cfg.Limits.HandlerTimeoutMS = parsed
	}

	if val, ok := os.LookupEnv("MCPD_LOG_LEVEL"); ok {
		cfg.Log.Level = val
	}

	return nil
}
