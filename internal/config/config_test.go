package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "web/static", cfg.StaticDir)
	require.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("READ_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, "/srv/static", cfg.StaticDir)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
