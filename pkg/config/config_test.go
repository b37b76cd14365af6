package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	require.Equal(t, EnvDev, cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8888, cfg.Server.Port)
	require.NotEmpty(t, cfg.Database.DSN)
	require.Equal(t, 300, cfg.Redis.RoleTTLSeconds)
	require.Equal(t, 72, cfg.JWT.ExpirationHours)
	require.Equal(t, "local", cfg.Storage.Driver)
	require.Equal(t, "./uploads", cfg.Storage.UploadsPath)
	require.Equal(t, ":90", cfg.MetricsAddr)
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9999")
	t.Setenv("APP_STORAGE_DRIVER", "s3")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, "s3", cfg.Storage.Driver)
}
