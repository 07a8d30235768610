package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	os.Remove(configFilePath)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.ListenAddr)
	assert.Equal(t, "./planboard.db", cfg.DatabasePath)
	assert.Equal(t, "./seed", cfg.SeedFolderPath)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Cleanup(func() { os.Remove(configFilePath) })

	err := SaveConfig(Config{ListenAddr: ":9999", PageSize: 25})
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 25, cfg.PageSize)
	// Unset fields fall back to defaults.
	assert.Equal(t, "./planboard.db", cfg.DatabasePath)
}

func TestSetOverrides(t *testing.T) {
	t.Cleanup(func() { os.Remove(configFilePath) })

	_, err := LoadConfig()
	require.NoError(t, err)

	SetOverrides(":8123", "/tmp/other.db", "")
	cfg := GetConfig()
	assert.Equal(t, ":8123", cfg.ListenAddr)
	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, "./seed", cfg.SeedFolderPath)
}
