package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{ConfigFileEnv, "PORT", "POSTGRES_DSN", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED", "METRICS_ENABLED", "GIN_MODE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
postgres_dsn: postgres://file
temporal:
  address: temporal:7233
  disabled: true
metrics_enabled: false
`), 0o600))
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("POSTGRES_DSN", "postgres://env")
	t.Setenv("GIN_MODE", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://env", cfg.PostgresDSN)
	assert.Equal(t, "temporal:7233", cfg.Temporal.Address)
	assert.Equal(t, "default", cfg.Temporal.Namespace)
	assert.True(t, cfg.Temporal.Disabled)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, "debug", cfg.GinMode)
}

func TestLoadConfigJSONFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "petstore.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":"7000","gin_mode":"test"}`), 0o600))
	t.Setenv(ConfigFileEnv, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "test", cfg.GinMode)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":     {"PORT": "http"},
		"port range":   {"PORT": "70000"},
		"bad gin mode": {"GIN_MODE": "loud"},
		"bad metrics":  {"METRICS_ENABLED": "maybe"},
		"missing file": {ConfigFileEnv: filepath.Join(os.TempDir(), "petstore-does-not-exist.yaml")},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range env {
				t.Setenv(key, value)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestTemporalDisabledTruthy(t *testing.T) {
	for _, value := range []string{"1", "true", "YES"} {
		clearEnv(t)
		t.Setenv("TEMPORAL_DISABLED", value)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.Temporal.Disabled, value)
	}
}
