package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwforge/builds-api/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "localhost:6379", cfg.Redis.Endpoint)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ConnMaxIdleTime)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildsapi.yaml")
	raw := `
redis:
  endpoint: redis.internal:6380
  pool_size: 20
player:
  default_id: player_1
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Endpoint)
	assert.Equal(t, 20, cfg.Redis.PoolSize)
	assert.Equal(t, "player_1", cfg.Player.DefaultID)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5*time.Minute, cfg.Redis.ConnMaxIdleTime)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildsapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("redis: ["), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
