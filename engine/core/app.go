package core

import "github.com/hubastard/scenebox/engine/gpu"

// App defines the sandbox hooks.
type App interface {
	OnStart(e *Engine) error        // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called at a fixed tick (60Hz by default)
	OnRender(e *Engine)             // after the framebuffer is cleared
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before the context goes away
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer *gpu.Renderer
	Input    *Input
	Config   Config
	Frames   FrameStats
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyP
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Digit returns the number on a digit key, or -1.
func (k Key) Digit() int {
	if k >= Key0 && k <= Key9 {
		return int(k - Key0)
	}
	return -1
}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
