package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)
	req.Equal(8080, cfg.Server.Port)
	req.Equal("development", cfg.Environment)
	req.Equal(15*time.Minute, cfg.JWT.AccessTTL)
	req.Equal("uploads", cfg.Uploads.Dir)
	req.NotEmpty(cfg.Database.DSN)
}

func Test_Load_EnvOverrides(t *testing.T) {
	req := require.New(t)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_ACCESS_TTL", "30m")

	cfg, err := Load()
	req.NoError(err)
	req.Equal(9090, cfg.Server.Port)
	req.Equal("debug", cfg.Log.Level)
	req.Equal(30*time.Minute, cfg.JWT.AccessTTL)
}

func Test_Load_BadValuesFallBackToDefaults(t *testing.T) {
	req := require.New(t)

	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("JWT_ACCESS_TTL", "soon")

	cfg, err := Load()
	req.NoError(err)
	req.Equal(8080, cfg.Server.Port)
	req.Equal(15*time.Minute, cfg.JWT.AccessTTL)
}
