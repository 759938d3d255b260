package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeoutSecs, cfg.TimeoutSeconds)
	assert.Equal(t, DefaultUpcomingDays, cfg.UpcomingDays)
	assert.Equal(t, DefaultServePort, cfg.ServePort)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url = "https://tasks.example.com"
timeout_seconds = 30
upcoming_days = 7
log_level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://tasks.example.com", cfg.APIURL)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 7, cfg.UpcomingDays)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Fields absent from the file keep their defaults
	assert.Equal(t, DefaultServePort, cfg.ServePort)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url = "https://from-file.example.com"`), 0o644))

	t.Setenv("TASKBOARD_API_URL", "https://from-env.example.com")
	t.Setenv("TASKBOARD_UPCOMING_DAYS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", cfg.APIURL)
	assert.Equal(t, 3, cfg.UpcomingDays)
}

func TestEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("TASKBOARD_TIMEOUT_SECONDS", "soon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSecs, cfg.TimeoutSeconds)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, log.ErrorLevel, ParseLogLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLogLevel("unknown"))
}
