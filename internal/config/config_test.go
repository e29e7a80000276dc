package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_TYPE", "DB_DATABASE", "DB_USER", "DB_CONNECTION_LIMIT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "storefront.db", cfg.DBDatabase)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("DB_TYPE", "oracle")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_TYPE", "MariaDB")
	t.Setenv("DB_USER", "")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_USER")

	t.Setenv("DB_USER", "studio")
	t.Setenv("DB_CONNECTION_LIMIT", "0")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_CONNECTION_LIMIT")

	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mariadb", cfg.DBType)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}

func TestLoadStudio(t *testing.T) {
	t.Setenv("STUDIO_API_URL", "http://example.test/api/")
	t.Setenv("STUDIO_BUILD_INTERVAL", "25")
	cfg, err := LoadStudio()
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api", cfg.APIURL)
	assert.Equal(t, 25*time.Millisecond, cfg.BuildInterval)

	t.Setenv("STUDIO_BUILD_INTERVAL", "1s")
	cfg, err = LoadStudio()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.BuildInterval)

	t.Setenv("STUDIO_BUILD_INTERVAL", "-5ms")
	_, err = LoadStudio()
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STUDIO_EXPORT_DIR=/tmp/exports\n"), 0o600))
	t.Setenv("STUDIO_EXPORT_DIR", "")
	require.NoError(t, os.Unsetenv("STUDIO_EXPORT_DIR"))

	require.NoError(t, LoadEnvFile(path, filepath.Join(t.TempDir(), "missing.env")))
	cfg, err := LoadStudio()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
}
