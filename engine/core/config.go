package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/hubastard/scenebox/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("core: invalid config")

// Config for the engine run.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`

	// DebugGL turns every graphics API error into a panic at the failing call.
	DebugGL   bool   `toml:"debug_gl"`
	LogLevel  string `toml:"log_level"`
	AssetsDir string `toml:"assets_dir"`
	// HotReload rebuilds the active scene when one of its shader files changes.
	HotReload bool `toml:"hot_reload"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "OpenGL Test",
		Width:      1200,
		Height:     900,
		VSync:      true,
		ClearColor: colors.Black,
		DebugGL:    true,
		LogLevel:   "info",
		AssetsDir:  "res",
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg.ClearColor = cfg.ClearColor.Clamped()
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.AssetsDir == "" {
		return fmt.Errorf("%w: empty assets_dir", ErrInvalidConfig)
	}
	return nil
}
