package scene

import "github.com/go-gl/mathgl/mgl32"

// OrthoCamera2D maps pixel coordinates (origin bottom-left) to clip space, with a
// movable view.
type OrthoCamera2D struct {
	Width, Height float32
	Near, Far     float32
	X, Y          float32
	Zoom          float32 // 1 = no zoom
	vp            mgl32.Mat4
	dirty         bool
}

func NewOrtho2D(v Viewport) *OrthoCamera2D {
	c := &OrthoCamera2D{
		Width: float32(v.Width), Height: float32(v.Height),
		Near: -1, Far: 1,
		Zoom: 1,
	}
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewport(v Viewport) {
	c.Width, c.Height = float32(v.Width), float32(v.Height)
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

// Projection is the orthographic projection alone.
func (c *OrthoCamera2D) Projection() mgl32.Mat4 {
	z := c.Zoom
	return mgl32.Ortho(0, c.Width/z, 0, c.Height/z, c.Near, c.Far)
}

// View is the inverse camera translation.
func (c *OrthoCamera2D) View() mgl32.Mat4 {
	return mgl32.Translate3D(-c.X, -c.Y, 0)
}

// VP returns projection · view.
func (c *OrthoCamera2D) VP() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	c.vp = c.Projection().Mul4(c.View())
	c.dirty = false
}
