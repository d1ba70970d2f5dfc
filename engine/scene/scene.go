// Package scene defines switchable demo scenes and the menu that swaps them.
package scene

import (
	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/gpu"
)

// Scene is an independently switchable demo.
type Scene interface {
	// Update advances the simulation by dt seconds.
	Update(dt float32)
	// Render draws the scene. The framebuffer has already been cleared.
	Render(r *gpu.Renderer)
	// RenderControls exposes the scene's tunables to the overlay.
	RenderControls(c Controls)
	// Delete releases every GPU resource the scene owns.
	Delete()
}

// Resizer is implemented by scenes that track the framebuffer size.
type Resizer interface {
	Resize(v Viewport)
}

// Controls is the widget surface the overlay offers to scenes. Edit methods
// report whether the value changed this frame; Button reports a click.
type Controls interface {
	SliderFloat(label string, v *float32, min, max float32) bool
	SliderFloat3(label string, v *[3]float32, min, max float32) bool
	ColorEdit4(label string, c *colors.Color) bool
	Button(label string) bool
	Text(format string, args ...any)
}

// Viewport is the framebuffer size handed to scenes at construction.
type Viewport struct {
	Width, Height int
}

// Aspect is width over height, 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Nop implements Scene with no behaviour; embed it to override only some methods.
type Nop struct{}

func (Nop) Update(float32)          {}
func (Nop) Render(*gpu.Renderer)    {}
func (Nop) RenderControls(Controls) {}
func (Nop) Delete()                 {}
