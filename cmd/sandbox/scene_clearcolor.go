package main

import (
	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/scene"
)

// clearColorScene fills the framebuffer with a tunable color.
type clearColorScene struct {
	scene.Nop
	ctx   *sceneContext
	color colors.Color
}

func newClearColorScene(ctx *sceneContext) *clearColorScene {
	return &clearColorScene{ctx: ctx, color: colors.Sky}
}

func (s *clearColorScene) Render(r *gpu.Renderer) {
	r.SetClearColor(s.color)
	r.Clear()
}

func (s *clearColorScene) RenderControls(c scene.Controls) {
	c.ColorEdit4("Clear color", &s.color)
}

// Delete restores the sandbox clear color.
func (s *clearColorScene) Delete() {
	s.ctx.renderer.SetClearColor(s.ctx.clearColor)
}
