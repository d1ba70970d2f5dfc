package core

import (
	"errors"
	"testing"
	"time"

	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow closes itself after frames swaps and replays queued events on poll.
type fakeWindow struct {
	frames    int
	swaps     int
	pending   []Event
	cb        func(Event)
	w, h      int
	title     string
	destroyed bool
	closing   bool
}

func (f *fakeWindow) PollEvents() {
	evs := f.pending
	f.pending = nil
	for _, ev := range evs {
		f.cb(ev)
	}
}

func (f *fakeWindow) SwapBuffers() {
	f.swaps++
	// long enough for at least one fixed update per frame
	time.Sleep(20 * time.Millisecond)
}

func (f *fakeWindow) ShouldClose() bool               { return f.closing || f.swaps >= f.frames }
func (f *fakeWindow) RequestClose()                   { f.closing = true }
func (f *fakeWindow) FramebufferSize() (int, int)     { return f.w, f.h }
func (f *fakeWindow) SetTitle(title string)           { f.title = title }
func (f *fakeWindow) SetEventCallback(cb func(Event)) { f.cb = cb }
func (f *fakeWindow) Destroy()                        { f.destroyed = true }

type recordingApp struct {
	started, updates, renders, shutdowns int
	events                               []Event
	startErr                             error
}

func (a *recordingApp) OnStart(e *Engine) error        { a.started++; return a.startErr }
func (a *recordingApp) OnUpdate(e *Engine, dt float64) { a.updates++ }
func (a *recordingApp) OnRender(e *Engine)             { a.renders++ }
func (a *recordingApp) OnEvent(e *Engine, ev Event)    { a.events = append(a.events, ev) }
func (a *recordingApp) OnShutdown(e *Engine)           { a.shutdowns++ }

func runFake(t *testing.T, app App, win *fakeWindow, cfg Config) (*gputest.Recorder, error) {
	t.Helper()
	rec := gputest.NewRecorder()
	err := Run(app, cfg,
		func(Config) (Window, error) { return win, nil },
		func(Window) (gpu.API, error) { return rec, nil },
	)
	return rec, err
}

func TestRunLoop(t *testing.T) {
	win := &fakeWindow{frames: 3, w: 800, h: 600}
	win.pending = []Event{EventResize{W: 1024, H: 768}, EventKey{Key: KeyW, Down: true}}
	app := &recordingApp{}
	cfg := DefaultConfig()
	cfg.ClearColor = colors.Sky

	rec, err := runFake(t, app, win, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, app.started)
	assert.Equal(t, 3, app.renders)
	assert.Equal(t, 1, app.shutdowns)
	assert.GreaterOrEqual(t, app.updates, 2)
	assert.Len(t, app.events, 2)
	assert.True(t, win.destroyed)

	assert.Equal(t, 3, rec.Count("Clear"))
	assert.Equal(t, []any{float32(0.2), float32(0.3), float32(0.8), float32(1)}, rec.Named("ClearColor")[0].Args)
	assert.Equal(t, 1, rec.Count("Enable"))

	// initial size, then the resize event re-reads the framebuffer
	vps := rec.Named("Viewport")
	require.Len(t, vps, 2)
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, vps[0].Args)
}

func TestRunStartError(t *testing.T) {
	win := &fakeWindow{frames: 3}
	boom := errors.New("boom")
	app := &recordingApp{startErr: boom}

	_, err := runFake(t, app, win, DefaultConfig())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, app.renders)
	assert.True(t, win.destroyed)
}

func TestRunWindowError(t *testing.T) {
	boom := errors.New("no display")
	err := Run(&recordingApp{}, DefaultConfig(),
		func(Config) (Window, error) { return nil, boom },
		func(Window) (gpu.API, error) { panic("unreachable") },
	)
	assert.ErrorIs(t, err, boom)
}

func TestRunRequestClose(t *testing.T) {
	win := &fakeWindow{frames: 100}
	app := &closingApp{}
	_, err := runFake(t, app, win, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, win.swaps)
}

type closingApp struct{ recordingApp }

func (a *closingApp) OnRender(e *Engine) { e.Window.RequestClose() }
