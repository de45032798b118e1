// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"VERSION":      "9.9.9",
		"NODE_ENV":     "production",
		"BUILD_NUMBER": "42",
		"GIT_COMMIT":   "abc123",
		"BUILD_DATE":   "2026-01-02T03:04:05.000Z",

		"HOST":         "127.0.0.1",
		"PORT":         "8080",
		"GRPC_ADDRESS": "127.0.0.1:9090",
		"TRUST_PROXY":  "true",

		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "42", cfg.App.BuildNumber)
	assert.Equal(t, "abc123", cfg.App.GitCommit)
	assert.Equal(t, "2026-01-02T03:04:05.000Z", cfg.App.BuildDate)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.True(t, cfg.Server.TrustProxy)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"VERSION": "2.0.0",
		"PORT":    "4000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Empty(t, cfg.App.Environment)
	assert.Empty(t, cfg.App.BuildNumber)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Empty(t, cfg.Server.Host)
	assert.False(t, cfg.Server.TrustProxy)

	assert.Empty(t, cfg.Log.Level)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// all nested fields are non-pointer values, so "empty" state is
	// represented by zero values.
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Log{}, cfg.Log)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PORT": "not-a-port",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"TRUST_PROXY": "maybe"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"VERSION",
		"NODE_ENV",
		"BUILD_NUMBER",
		"GIT_COMMIT",
		"BUILD_DATE",

		"HOST",
		"PORT",
		"GRPC_ADDRESS",
		"TRUST_PROXY",

		"LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv registers restoration of the previous value on cleanup.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
