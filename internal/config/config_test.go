package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/clubs")
	t.Setenv("PORT", "")
	t.Setenv("PASSWORD_SALT", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, DefaultPasswordSalt, cfg.Auth.PasswordSalt)
	require.Equal(t, "development", cfg.Environment)
	require.True(t, cfg.CORS.AllowAllOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/clubs")
	t.Setenv("PORT", "9001")
	t.Setenv("PASSWORD_SALT", "pepper")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://clubs.example.edu, https://app.example.edu")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, "pepper", cfg.Auth.PasswordSalt)
	require.False(t, cfg.CORS.AllowAllOrigins)
	require.Equal(t, []string{"https://clubs.example.edu", "https://app.example.edu"}, cfg.CORS.AllowedOrigins)
}

func TestLoadIgnoresUnparseablePort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/clubs")
	t.Setenv("PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8000, cfg.Server.Port)
}
