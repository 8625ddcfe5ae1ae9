package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Wardrobe.CacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.Wardrobe.FallbackTTL)
	assert.Equal(t, 10, cfg.Wardrobe.TimeoutSeconds)
	assert.Equal(t, "memory", cfg.Wardrobe.CacheBackend)
	assert.Contains(t, cfg.Wardrobe.FigureDataURL, "{build}")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "WARDROBE_CACHE_BACKEND=database\nWARDROBE_CACHE_TTL=2h\nSERVER_PORT=9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("WARDROBE_CACHE_BACKEND")
		os.Unsetenv("WARDROBE_CACHE_TTL")
		os.Unsetenv("SERVER_PORT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "database", cfg.Wardrobe.CacheBackend)
	assert.Equal(t, 2*time.Hour, cfg.Wardrobe.CacheTTL)
	assert.Equal(t, "9090", cfg.Server.Port)
}
