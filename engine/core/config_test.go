package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/scenebox/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 900, cfg.Height)
	assert.True(t, cfg.DebugGL)
	assert.False(t, cfg.HotReload)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "Sandbox"
width = 640
clear_color = [0.1, 0.2, 0.3, 1.0]
debug_gl = false
hot_reload = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Sandbox", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 900, cfg.Height)
	assert.Equal(t, colors.Color{0.1, 0.2, 0.3, 1}, cfg.ClearColor)
	assert.False(t, cfg.DebugGL)
	assert.True(t, cfg.HotReload)
	assert.Equal(t, "res", cfg.AssetsDir)
}

func TestLoadConfigClampsClearColor(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "clear_color = [1.5, -0.2, 0.5, 2.0]\n"))
	require.NoError(t, err)
	assert.Equal(t, colors.Color{1, 0, 0.5, 1}, cfg.ClearColor)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "widht = 640\n"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "height = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, `assets_dir = ""`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
