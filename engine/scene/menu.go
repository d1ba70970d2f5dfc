package scene

import (
	"errors"
	"fmt"

	"github.com/hubastard/scenebox/engine/core"
	"github.com/hubastard/scenebox/engine/gpu"
)

var ErrUnknownScene = errors.New("scene: no such scene")

// BackLabel is the control shown above every demo to return to the menu.
const BackLabel = "<- Back"

// Factory builds a fresh scene.
type Factory func() (Scene, error)

// Entry is one registered scene.
type Entry struct {
	Name string
	New  Factory
}

// Menu lists registered scenes in registration order and opens the one picked.
// It lives for the whole run and is never deleted by a switch.
type Menu struct {
	Nop
	entries []Entry
	sw      *Switcher
}

func NewMenu() *Menu { return &Menu{} }

// Register appends a scene to the menu.
func (m *Menu) Register(name string, f Factory) {
	core.LogInfo("Registering scene %s", name)
	m.entries = append(m.entries, Entry{Name: name, New: f})
}

func (m *Menu) Entries() []Entry { return m.entries }

// Names returns the registered names in registration order.
func (m *Menu) Names() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Name
	}
	return out
}

// Index returns the position of name, or -1.
func (m *Menu) Index(name string) int {
	for i, e := range m.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// RenderControls shows one button per entry. A click opens the scene.
func (m *Menu) RenderControls(c Controls) {
	for i, e := range m.entries {
		if !c.Button(e.Name) || m.sw == nil {
			continue
		}
		if err := m.sw.Open(i); err != nil {
			core.LogError("open scene %s: %v", e.Name, err)
		}
		return
	}
}

// Switcher owns the active scene slot. The menu is the initial scene; any other
// scene is owned by the slot and deleted exactly once, when it is replaced or
// when the switcher is closed.
type Switcher struct {
	menu    *Menu
	current Scene
	index   int
}

// NewSwitcher installs menu as the active scene.
func NewSwitcher(menu *Menu) *Switcher {
	s := &Switcher{menu: menu, current: menu, index: -1}
	menu.sw = s
	return s
}

func (s *Switcher) Menu() *Menu       { return s.menu }
func (s *Switcher) Current() Scene    { return s.current }
func (s *Switcher) InMenu() bool      { return s.current == Scene(s.menu) }
func (s *Switcher) CurrentIndex() int { return s.index }

// CurrentName is the registered name of the active scene, "" for the menu.
func (s *Switcher) CurrentName() string {
	if s.index < 0 {
		return ""
	}
	return s.menu.entries[s.index].Name
}

// Open builds entry i and makes it active, deleting the previous demo. When the
// factory fails the active scene is left untouched.
func (s *Switcher) Open(i int) error {
	if i < 0 || i >= len(s.menu.entries) {
		return fmt.Errorf("%w: index %d", ErrUnknownScene, i)
	}
	e := s.menu.entries[i]
	next, err := e.New()
	if err != nil {
		return fmt.Errorf("build %s: %w", e.Name, err)
	}
	s.install(next, i)
	core.LogInfo("Opened scene %s", e.Name)
	return nil
}

// OpenByName is Open for a registered name.
func (s *Switcher) OpenByName(name string) error {
	i := s.menu.Index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s.Open(i)
}

// Back deletes the active demo and restores the menu.
func (s *Switcher) Back() {
	s.install(s.menu, -1)
}

// Reload rebuilds the active demo from its factory. The running demo is kept if
// the rebuild fails.
func (s *Switcher) Reload() error {
	if s.index < 0 {
		return nil
	}
	return s.Open(s.index)
}

func (s *Switcher) install(next Scene, index int) {
	if !s.InMenu() {
		s.current.Delete()
	}
	s.current = next
	s.index = index
}

func (s *Switcher) Update(dt float32)      { s.current.Update(dt) }
func (s *Switcher) Render(r *gpu.Renderer) { s.current.Render(r) }

// RenderControls shows the back control above a demo's own controls.
func (s *Switcher) RenderControls(c Controls) {
	if !s.InMenu() && c.Button(BackLabel) {
		s.Back()
		return
	}
	s.current.RenderControls(c)
}

// Resize forwards v to the active scene when it tracks the viewport.
func (s *Switcher) Resize(v Viewport) {
	if r, ok := s.current.(Resizer); ok {
		r.Resize(v)
	}
}

// Close deletes the active scene and then the menu.
func (s *Switcher) Close() {
	if !s.InMenu() {
		s.current.Delete()
	}
	s.current = s.menu
	s.index = -1
	s.menu.Delete()
	s.menu.sw = nil
}
