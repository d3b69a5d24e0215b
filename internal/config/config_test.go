package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "users", cfg.StorageName)
	assert.False(t, cfg.SkipSeed)
	assert.Equal(t, "localhost:8082", cfg.HTTPServer.Addr)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: prod
storage: sqlite
storage_name: table
skip_seed: true
http_server:
  address: "0.0.0.0:9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "table", cfg.StorageName)
	assert.True(t, cfg.SkipSeed)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "env: dev\nstorage: memory\n")
	t.Setenv("ENV", "staging")
	t.Setenv("STORAGE", "sqlite")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, StorageSQLite, cfg.Storage)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "env: prod\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown storage", func(t *testing.T) {
		_, err := Load(writeConfig(t, "storage: postgres\n"))
		assert.ErrorContains(t, err, `unknown storage "postgres"`)
	})
}
