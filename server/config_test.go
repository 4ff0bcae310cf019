package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencourse/enroll"
	"github.com/opencourse/enroll/server"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	// Act
	config := server.ConfigFromEnv()

	// Assert
	require.Equal(t, enroll.Development, config.Env)
	require.Equal(t, 8080, config.Port)
	require.Equal(t, "http://localhost:8080", config.BaseURL)
	require.Equal(t, 5*time.Second, config.ShutdownTimeout)
	require.Equal(t, "localhost", config.DB.Host)
	require.Equal(t, "5432", config.DB.Port)
	require.False(t, config.DB.IsTestDB)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "testing")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/enroll_test")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	// Act
	config := server.ConfigFromEnv()

	// Assert
	require.Equal(t, enroll.Testing, config.Env)
	require.Equal(t, 9000, config.Port)
	require.Equal(t, "postgres://app:secret@db:5432/enroll_test", config.DB.URL)
	require.Equal(t, 30*time.Second, config.ShutdownTimeout)
	require.True(t, config.DB.IsTestDB)
}
