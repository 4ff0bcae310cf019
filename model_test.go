package enroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencourse/enroll"
)

func TestModelExists(t *testing.T) {
	// Arrange
	var m enroll.Model

	// Assert
	require.False(t, m.Exists())

	// Arrange
	m.CreatedAt = time.Now()

	// Assert
	require.True(t, m.Exists())
}

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input enroll.Environment
		err   error
	}{
		{"Development", enroll.Development, nil},
		{"Production", enroll.Production, nil},
		{"Testing", enroll.Testing, nil},
		{"Zero-Value", enroll.Environment(""), enroll.ErrNotValid},
		{"Unknown", enroll.Environment("LOCAL"), enroll.ErrNotValid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.input.Valid(), tc.err)
		})
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	// Arrange
	key := "ENROLL_TEST_ENVIRONMENT"
	t.Setenv(key, "staging")

	// Act + Assert
	require.Equal(t, enroll.Staging, enroll.EnvVarOrEnv(key, enroll.Development))

	// Arrange
	t.Setenv(key, "not-an-environment")

	// Act + Assert
	require.Equal(t, enroll.Development, enroll.EnvVarOrEnv(key, enroll.Development))
}
