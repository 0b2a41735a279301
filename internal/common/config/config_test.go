package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CTA_API_KEY", "test-key")
	t.Setenv("CTA_STOP_ID", "41290")
}

func TestLoad(t *testing.T) {
	t.Run("missing API key is a startup error", func(t *testing.T) {
		t.Setenv("CTA_API_KEY", "")
		t.Setenv("CTA_STOP_ID", "41290")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CTA_API_KEY")
	})

	t.Run("missing stop identifier is a startup error", func(t *testing.T) {
		t.Setenv("CTA_API_KEY", "test-key")
		t.Setenv("CTA_STOP_ID", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CTA_STOP_ID")
	})

	t.Run("defaults apply when only required values are set", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CTA_API_BASE_URL", "")
		t.Setenv("CTA_HTTP_TIMEOUT", "")
		t.Setenv("OUTPUT_DIR", "")
		t.Setenv("REFRESH_INTERVAL_SECONDS", "")
		t.Setenv("CTA_TIMEZONE", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FILE", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, "www", cfg.Board.OutputDir)
		assert.Equal(t, 2, cfg.Board.RefreshInterval)
		assert.Equal(t, "America/Chicago", cfg.Board.Timezone)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "ctatracker.log", cfg.Logging.FilePath)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CTA_HTTP_TIMEOUT", "3s")
		t.Setenv("OUTPUT_DIR", "/srv/board")
		t.Setenv("REFRESH_INTERVAL_SECONDS", "10")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.API.Timeout)
		assert.Equal(t, "/srv/board", cfg.Board.OutputDir)
		assert.Equal(t, 10, cfg.Board.RefreshInterval)
	})

	t.Run("unparseable optional values fall back to defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CTA_HTTP_TIMEOUT", "soonish")
		t.Setenv("REFRESH_INTERVAL_SECONDS", "often")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, 2, cfg.Board.RefreshInterval)
	})

	t.Run("unknown timezone is a startup error", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CTA_TIMEZONE", "Mars/Olympus_Mons")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CTA_TIMEZONE")
	})
}

func TestBoardConfigLocation(t *testing.T) {
	cfg := BoardConfig{Timezone: "America/Chicago"}
	loc := cfg.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "America/Chicago", loc.String())
}
