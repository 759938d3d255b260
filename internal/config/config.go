// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAPIURL       = "http://localhost:3001"
	DefaultTimeoutSecs  = 10
	DefaultUpcomingDays = 14
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultServePort    = 7180
)

// Config file names probed in the working directory, first hit wins.
var configFiles = []string{"taskboard.toml", ".taskboard.toml"}

// Config holds the full configuration for taskboard.
type Config struct {
	APIURL         string `toml:"api_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UpcomingDays   int    `toml:"upcoming_days"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
	ServePort      int    `toml:"serve_port"`
}

// Defaults returns a Config populated with default values.
func Defaults() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: DefaultTimeoutSecs,
		UpcomingDays:   DefaultUpcomingDays,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		ServePort:      DefaultServePort,
	}
}

// Load builds the configuration by layering defaults, then a TOML file,
// then environment variables. Flag overrides are applied afterwards by the
// CLI. An explicit path must exist; the default file names are optional.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	} else {
		for _, name := range configFiles {
			if _, err := os.Stat(name); err != nil {
				continue
			}
			if _, err := toml.DecodeFile(name, cfg); err != nil {
				return nil, fmt.Errorf("load config %s: %w", name, err)
			}
			break
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TASKBOARD_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TASKBOARD_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("TASKBOARD_UPCOMING_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.UpcomingDays = days
		}
	}
	if v := os.Getenv("TASKBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKBOARD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKBOARD_SERVE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.ServePort = port
		}
	}
}
