package core

import (
	"runtime"
	"time"

	"github.com/hubastard/scenebox/engine/gpu"
)

// Run wires the platform window + graphics device and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window) (gpu.API, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev, err := newDevice(win)
	if err != nil {
		return err
	}

	rend := gpu.NewRenderer(gpu.NewProbe(dev, Logger(), cfg.DebugGL))
	rend.EnableBlending()
	rend.SetClearColor(cfg.ClearColor)
	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), Config: cfg}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	if err := app.OnStart(eng); err != nil {
		return err
	}

	step := fixedStep{tick: time.Second / 60, max: 10}
	dt := step.tick.Seconds()
	prev := time.Now()

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		eng.Frames.Add(frame)

		// events arrive through the callback set above
		win.PollEvents()

		for n := step.Advance(frame); n > 0; n-- {
			app.OnUpdate(eng, dt)
		}

		rend.Clear()
		app.OnRender(eng)
		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	LogInfo("Engine exit after %d frames", eng.Frames.Count)
	return nil
}
