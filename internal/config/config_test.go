package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := NewConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestNewConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/medium")
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/medium")
	t.Setenv("JWT_SECRET", "secret")
	// t.Setenv registers restoration; unset so the defaults apply.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}
