// Loader and default configuration tests.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvault/plotvault/container"
	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sqlite", cfg.Container.Backend)
	assert.Equal(t, container.DefaultPath, cfg.Container.Path)
	assert.Equal(t, "canvas", cfg.DefaultBase)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.Container.Backend)
	assert.Equal(t, "canvas", cfg.DefaultBase)
}

func TestLoader_LoadFromYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "plotvault.yaml")
	yamlContent := `
container:
  backend: redis
  redis:
    addr: "redis.internal:6379"
    db: 3
default_base: "fit"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Container.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Container.Redis.Addr)
	assert.Equal(t, 3, cfg.Container.Redis.DB)
	assert.Equal(t, "fit", cfg.DefaultBase)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched values keep their defaults
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, container.DefaultPath, cfg.Container.Path)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().
		WithConfigPath(filepath.Join(t.TempDir(), "absent.yaml")).
		Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Container.Backend)
}

func TestLoader_MalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "plotvault.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{invalid: [unclosed"), 0o644))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	require.Error(t, err)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "plotvault.yaml")
	yamlContent := `
container:
  backend: sqlite
  path: "from_file.db"
default_base: "fromfile"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	t.Setenv("PLOTVAULT_CONTAINER_PATH", "from_env.db")
	t.Setenv("PLOTVAULT_DEFAULT_BASE", "fromenv")
	t.Setenv("PLOTVAULT_CONTAINER_REDIS_DB", "7")

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "from_env.db", cfg.Container.Path)
	assert.Equal(t, "fromenv", cfg.DefaultBase)
	assert.Equal(t, 7, cfg.Container.Redis.DB)
	// file value without an env override survives
	assert.Equal(t, "sqlite", cfg.Container.Backend)
}

func TestConfig_ContainerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Container.Backend = "redis"
	cfg.Container.Redis.Addr = "localhost:6379"
	cfg.Container.Redis.KeyPrefix = "team:"

	cc := cfg.ContainerConfig(core.ModeRead)
	assert.Equal(t, container.BackendRedis, cc.Backend)
	assert.Equal(t, core.ModeRead, cc.Mode)
	assert.Equal(t, "localhost:6379", cc.Redis.Addr)
	assert.Equal(t, "team:", cc.Redis.KeyPrefix)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logging.LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, logging.LogLevelWarn, ParseLevel("warn"))
	assert.Equal(t, logging.LogLevelError, ParseLevel("error"))
	assert.Equal(t, logging.LogLevelInfo, ParseLevel("info"))
	assert.Equal(t, logging.LogLevelInfo, ParseLevel("whatever"))
}
