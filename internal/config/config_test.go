package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "MIGRATIONS_PATH", "NETWORK_CACHE_SIZE", "BATCH_WORKERS", "RUN_RETENTION_DAYS"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, 8080, ServerPort())
	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, 100.0, RateLimitRPS())
	assert.Equal(t, 20, RateLimitBurst())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "migrations", MigrationsPath())
	assert.Equal(t, 64, NetworkCacheSize())
	assert.Equal(t, 4, BatchWorkers())
	assert.Equal(t, 0, RunRetentionDays())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "-2")
	t.Setenv("NETWORK_CACHE_SIZE", "lots")
	t.Setenv("RATE_LIMIT_RPS", "0")

	assert.Equal(t, 4, BatchWorkers())
	assert.Equal(t, 64, NetworkCacheSize())
	assert.Equal(t, 100.0, RateLimitRPS())
}

func TestLoad_ReadsEnvFileAndSecret(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=9191\nBATCH_WORKERS=7\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("API_KEY=s3cret\n"), 0o600))

	t.Setenv("BAYES_ENV", envFile)
	// Registered so the values are cleared after the test.
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BATCH_WORKERS", "")
	t.Setenv("API_KEY", "")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("BATCH_WORKERS")
	os.Unsetenv("API_KEY")

	require.NoError(t, Load())
	assert.Equal(t, 9191, ServerPort())
	assert.Equal(t, 7, BatchWorkers())
	assert.Equal(t, "s3cret", APIKey())
}
