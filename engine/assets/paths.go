package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir locates asset files below a root directory.
type Dir string

// Shaders is the directory holding combined shader files.
func (d Dir) Shaders() string { return filepath.Join(string(d), "shaders") }

// Shader returns the path of a combined shader file under <root>/shaders.
func (d Dir) Shader(name string) string { return filepath.Join(d.Shaders(), name) }

// Texture returns the path of an image under <root>/textures.
func (d Dir) Texture(name string) string { return filepath.Join(string(d), "textures", name) }

// Check verifies the root exists and is a directory.
func (d Dir) Check() error {
	fi, err := os.Stat(string(d))
	if err != nil {
		return fmt.Errorf("assets dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("assets dir %q is not a directory", string(d))
	}
	return nil
}
