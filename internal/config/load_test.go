package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"ANKIGEN_SERVER_PORT":         "",
		"ANKIGEN_SERVER_LOG_LEVEL":    "",
		"ANKIGEN_LLM_MODEL_NAME":      "",
		"ANKIGEN_LLM_GEMINI_API_KEY":  "",
		"ANKIGEN_LLM_TIMEOUT_SECONDS": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 60, cfg.LLM.TimeoutSeconds)
	assert.Empty(t, cfg.LLM.GeminiAPIKey, "The server-side key has no default")
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"ANKIGEN_SERVER_PORT":         "9090",
		"ANKIGEN_SERVER_LOG_LEVEL":    "debug",
		"ANKIGEN_LLM_MODEL_NAME":      "gemini-2.5-pro",
		"ANKIGEN_LLM_GEMINI_API_KEY":  "test-api-key",
		"ANKIGEN_LLM_TIMEOUT_SECONDS": "15",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 15, cfg.LLM.TimeoutSeconds)
}

// TestLoadValidation verifies that invalid values fail validation.
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "invalid port",
			envVars: map[string]string{"ANKIGEN_SERVER_PORT": "70000"},
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"ANKIGEN_SERVER_LOG_LEVEL": "verbose"},
		},
		{
			name:    "negative timeout",
			envVars: map[string]string{"ANKIGEN_LLM_TIMEOUT_SECONDS": "-1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()
			assert.Error(t, err, "Load() should fail validation")
			assert.Nil(t, cfg)
		})
	}
}
