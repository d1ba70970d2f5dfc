package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/scenebox/engine/core"
	"github.com/hubastard/scenebox/engine/scene"
	"github.com/stretchr/testify/assert"
)

func project(m mgl32.Mat4, x, y float32) mgl32.Vec2 {
	v := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return mgl32.Vec2{v[0], v[1]}
}

func TestOrthoCameraMapsPixels(t *testing.T) {
	cam := scene.NewOrtho2D(scene.Viewport{Width: 960, Height: 540})
	vp := cam.VP()
	assert.True(t, project(vp, 0, 0).ApproxEqual(mgl32.Vec2{-1, -1}))
	assert.True(t, project(vp, 960, 540).ApproxEqual(mgl32.Vec2{1, 1}))
	assert.True(t, project(vp, 480, 270).ApproxEqual(mgl32.Vec2{0, 0}))
}

func TestOrthoCameraMoveAndResize(t *testing.T) {
	cam := scene.NewOrtho2D(scene.Viewport{Width: 100, Height: 100})
	cam.Move(50, 50)
	assert.True(t, project(cam.VP(), 50, 50).ApproxEqual(mgl32.Vec2{-1, -1}))

	cam.SetViewport(scene.Viewport{Width: 200, Height: 200})
	assert.True(t, project(cam.VP(), 250, 250).ApproxEqual(mgl32.Vec2{1, 1}))

	cam.SetZoom(0)
	assert.Equal(t, float32(0.05), cam.Zoom)
}

func TestOrthoControllerMoves(t *testing.T) {
	cam := scene.NewOrtho2D(scene.Viewport{Width: 100, Height: 100})
	ctrl := scene.NewOrthoController2D(cam)
	in := core.NewInput()
	in.Handle(core.EventKey{Key: core.KeyD, Down: true})
	in.Handle(core.EventKey{Key: core.KeyW, Down: true})

	ctrl.Update(in, 0.5)
	assert.Equal(t, float32(150), cam.X)
	assert.Equal(t, float32(150), cam.Y)

	in.Handle(core.EventKey{Key: core.KeyD, Down: false})
	ctrl.Update(in, 0.5)
	assert.Equal(t, float32(150), cam.X)

	ctrl.Update(nil, 1)
	assert.Equal(t, float32(300), cam.Y)
}

func TestOrthoControllerShiftAndScroll(t *testing.T) {
	cam := scene.NewOrtho2D(scene.Viewport{Width: 100, Height: 100})
	ctrl := scene.NewOrthoController2D(cam)
	in := core.NewInput()
	in.Handle(core.EventKey{Key: core.KeyA, Down: true, Mods: core.ModShift})
	in.Handle(core.EventScroll{Yoff: 2})

	ctrl.Update(in, 1)
	assert.Equal(t, float32(-900), cam.X)
	assert.InDelta(t, 1.21, cam.Zoom, 1e-5)

	// scroll is consumed once
	in.Handle(core.EventKey{Key: core.KeyA, Down: false})
	ctrl.Update(in, 1)
	assert.InDelta(t, 1.21, cam.Zoom, 1e-5)
	assert.Equal(t, float32(-900), cam.X)
}
