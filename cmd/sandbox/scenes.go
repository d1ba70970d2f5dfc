package main

import (
	"github.com/hubastard/scenebox/engine/assets"
	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/core"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/scene"
)

// sceneContext is what every demo is built from. The viewport is updated on
// resize so later scenes start at the current size.
type sceneContext struct {
	renderer   *gpu.Renderer
	viewport   scene.Viewport
	assets     assets.Dir
	decoder    gpu.ImageDecoder
	input      *core.Input
	clearColor colors.Color
}

func (c *sceneContext) probe() *gpu.Probe { return c.renderer.Probe() }

// registerScenes fills menu in display order.
func registerScenes(menu *scene.Menu, ctx *sceneContext) {
	menu.Register("Clear color", func() (scene.Scene, error) { return newClearColorScene(ctx), nil })
	menu.Register("Square", func() (scene.Scene, error) {
		s, err := newSquareScene(ctx, 400)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	menu.Register("Sombrero", func() (scene.Scene, error) {
		s, err := newSombreroScene(ctx)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
