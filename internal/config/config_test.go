package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the rest comes from defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 500*time.Millisecond, conf.DrawResetDelay)
		assert.Equal(t, StorageMemory, conf.Storage.Type)
		assert.Equal(t, time.Duration(0), conf.Storage.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Storage.Redis.GetRedisAddr())
	})

	t.Run("Explicit values", func(t *testing.T) {
		path := writeConfig(t, `
draw-reset-delay: 2s
storage:
  type: redis
  session-ttl: 30m
  redis:
    host: cache
    port: "6380"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, conf.DrawResetDelay)
		assert.Equal(t, StorageRedis, conf.Storage.Type)
		assert.Equal(t, 30*time.Minute, conf.Storage.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Storage.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "draw-reset-delay: 2s\n")
		t.Setenv("DRAW_RESET_DELAY", "100ms")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 100*time.Millisecond, conf.DrawResetDelay)
	})

	t.Run("Unknown storage type", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  type: postgres\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage type")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "", (&Redis{}).GetRedisAddr())
	assert.Equal(t, "h:1", (&Redis{Host: "h", Port: "1"}).GetRedisAddr())
}
