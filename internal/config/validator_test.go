package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest removes key from the environment and restores it after the test
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestValidateEnv_MissingVersionIsAllowed(t *testing.T) {
	unsetForTest(t, EnvSchemaVersion)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

	t.Run("no warnings for sane config", func(t *testing.T) {
		cfg := &Config{Environment: "dev", LogFormat: "text", TickInterval: time.Minute}
		warnings, err := ValidateEnvWithWarnings(cfg)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("warns about very short tick interval", func(t *testing.T) {
		cfg := &Config{Environment: "dev", TickInterval: 10 * time.Millisecond}
		warnings, err := ValidateEnvWithWarnings(cfg)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "TICK_INTERVAL")
	})

	t.Run("warns about text logs in prod", func(t *testing.T) {
		cfg := &Config{Environment: "prod", LogFormat: "text"}
		warnings, err := ValidateEnvWithWarnings(cfg)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "LOG_FORMAT")
	})

	t.Run("no warning when prod uses the preset format", func(t *testing.T) {
		cfg := &Config{Environment: "prod"}
		warnings, err := ValidateEnvWithWarnings(cfg)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})
}
