package main

import (
	"fmt"
	"time"

	"github.com/hubastard/scenebox/engine/assets"
	"github.com/hubastard/scenebox/engine/core"
	"github.com/hubastard/scenebox/engine/hud"
	"github.com/hubastard/scenebox/engine/profiler"
	"github.com/hubastard/scenebox/engine/scene"
)

const titleInterval = 250 * time.Millisecond

// App hosts the scene menu inside the engine loop.
type App struct {
	// StartScene is opened right after the menu is built when non-empty.
	StartScene string

	ctx      *sceneContext
	switcher *scene.Switcher
	panel    *hud.Panel
	watcher  *assets.Watcher

	lastTitle time.Time
}

func (a *App) OnStart(e *core.Engine) error {
	profiler.Init(16)

	dir := assets.Dir(e.Config.AssetsDir)
	if err := dir.Check(); err != nil {
		return err
	}
	w, h := e.Window.FramebufferSize()
	a.ctx = &sceneContext{
		renderer:   e.Renderer,
		viewport:   scene.Viewport{Width: w, Height: h},
		assets:     dir,
		decoder:    assets.Decoder{},
		input:      e.Input,
		clearColor: e.Config.ClearColor,
	}

	menu := scene.NewMenu()
	registerScenes(menu, a.ctx)
	a.switcher = scene.NewSwitcher(menu)
	a.panel = hud.NewPanel(scene.BackLabel)

	if a.StartScene != "" {
		if err := a.switcher.OpenByName(a.StartScene); err != nil {
			return err
		}
	}

	if e.Config.HotReload {
		watcher, err := assets.NewWatcher(".shader", dir.Shaders())
		if err != nil {
			core.LogWarn("Shader hot reload disabled: %v", err)
		} else {
			a.watcher = watcher
		}
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if a.watcher != nil {
		if changed := a.watcher.Poll(); len(changed) > 0 {
			core.LogInfo("Shaders changed: %v", changed)
			if err := a.switcher.Reload(); err != nil {
				core.LogError("Reload %s: %v", a.switcher.CurrentName(), err)
			}
		}
	}
	a.switcher.Update(float32(dt))
}

func (a *App) OnRender(e *core.Engine) {
	defer profiler.Start("render")()

	a.switcher.Render(e.Renderer)

	a.panel.BeginFrame()
	a.switcher.RenderControls(a.panel)
	a.panel.Text("Application average %.3f ms/frame (%.1f FPS)", e.Frames.MsPerFrame(), e.Frames.FPS())
	a.panel.EndFrame()

	if time.Since(a.lastTitle) >= titleInterval {
		a.lastTitle = time.Now()
		e.Window.SetTitle(a.title(e))
	}
}

func (a *App) title(e *core.Engine) string {
	name := a.switcher.CurrentName()
	if name == "" {
		name = "Menu"
	}
	t := fmt.Sprintf("%s - %s - %.1f FPS", e.Config.Title, name, e.Frames.FPS())
	if s := a.panel.Summary(); s != "" {
		t += " | " + s
	}
	return t
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if a.panel != nil && a.panel.HandleEvent(ev) {
		return
	}
	switch ev := ev.(type) {
	case core.EventKey:
		if !ev.Down {
			return
		}
		switch {
		case ev.Key == core.KeyEscape && a.switcher.InMenu():
			e.Window.RequestClose()
		case ev.Key == core.KeyEscape:
			a.switcher.Back()
		case ev.Key == core.KeyP && ev.Mods&core.ModCtrl != 0:
			path, err := profiler.Dump("")
			if err != nil {
				core.LogWarn("Profile dump failed: %v", err)
			} else if path != "" {
				core.LogInfo("Profile written to %s", path)
			}
		}
	case core.EventResize:
		if ev.W < 1 || ev.H < 1 || a.ctx == nil {
			return
		}
		a.ctx.viewport = scene.Viewport{Width: ev.W, Height: ev.H}
		a.switcher.Resize(a.ctx.viewport)
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.switcher != nil {
		a.switcher.Close()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			core.LogWarn("Closing shader watcher: %v", err)
		}
	}
}
