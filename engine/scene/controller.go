package scene

import (
	"math"

	"github.com/hubastard/scenebox/engine/core"
)

// OrthoController2D pans a camera with WASD (Shift for FastFactor) and zooms it
// with the scroll wheel.
type OrthoController2D struct {
	MoveSpeed  float32 // pixels per second
	FastFactor float32
	ZoomStep   float32 // zoom factor per wheel notch
	Camera     *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed:  300,
		FastFactor: 3,
		ZoomStep:   1.1,
		Camera:     cam,
	}
}

func (cc *OrthoController2D) Update(in *core.Input, dt float32) {
	if in == nil {
		return
	}
	speed := cc.MoveSpeed * dt
	if in.Mods()&core.ModShift != 0 {
		speed *= cc.FastFactor
	}

	var dx, dy float32
	if in.IsKeyDown(core.KeyW) {
		dy += speed
	}
	if in.IsKeyDown(core.KeyS) {
		dy -= speed
	}
	if in.IsKeyDown(core.KeyA) {
		dx -= speed
	}
	if in.IsKeyDown(core.KeyD) {
		dx += speed
	}
	if dx != 0 || dy != 0 {
		cc.Camera.Move(dx, dy)
	}

	if notches := in.TakeScroll(); notches != 0 {
		f := math.Pow(float64(cc.ZoomStep), notches)
		cc.Camera.SetZoom(cc.Camera.Zoom * float32(f))
	}
}
