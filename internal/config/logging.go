package config

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLogLevel maps a config string to a log level, defaulting to info.
func ParseLogLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseLogFormatter maps a config string to a formatter, defaulting to text.
func ParseLogFormatter(s string) log.Formatter {
	switch strings.ToLower(s) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// NewLogger builds the application logger from the loaded config.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLogLevel(c.LogLevel),
		Formatter: ParseLogFormatter(c.LogFormat),
		Prefix:    "taskboard",
	})
}
