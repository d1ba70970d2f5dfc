package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/scenebox/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func cliContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("sandbox", flag.ContinueOnError)
	set.String("config", "", "")
	set.Int("width", 0, "")
	set.Int("height", 0, "")
	set.String("scene", "", "")
	set.Bool("v", false, "")
	set.Bool("no-debug-gl", false, "")
	set.Bool("hot-reload", false, "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 800\nheight = 600\n"), 0o644))
	defer core.SetLogLevel("info")

	cfg, err := loadConfig(cliContext(t, "-config", path, "-height", "500", "-no-debug-gl", "-hot-reload", "-v"))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.False(t, cfg.DebugGL)
	assert.True(t, cfg.HotReload)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(cliContext(t, "-config", filepath.Join(t.TempDir(), "none.toml")))
	assert.Error(t, err)
}
