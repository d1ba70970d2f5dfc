// Package hud is a keyboard-driven stand-in for a GUI overlay. Buttons are
// pressed with the digit keys (1..9, 0 for the tenth), Backspace presses the
// back button, Tab cycles the focused value and Up/Down (Shift for coarse steps)
// edit it. The panel state is summarised as text for the window title.
package hud

import (
	"fmt"
	"strings"

	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/core"
)

// fraction of a slider's range moved per key press
const (
	fineStep   = 0.01
	coarseStep = 0.1
)

// Panel implements scene.Controls. Widgets are laid out anew every frame
// between BeginFrame and EndFrame, in call order.
type Panel struct {
	BackLabel string

	// input gathered since the last frame
	pressed int
	back    bool
	delta   float32
	tabs    int

	focus    int
	buttons  int
	edits    int
	lastEdit int
	focused  string
	lines    []string
	keyed    []string // button lines, in order
}

func NewPanel(backLabel string) *Panel {
	return &Panel{BackLabel: backLabel, pressed: -1}
}

// HandleEvent consumes the keys the panel reacts to and reports whether it did.
func (p *Panel) HandleEvent(ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	step := float32(fineStep)
	if k.Mods&core.ModShift != 0 {
		step = coarseStep
	}
	switch {
	case k.Key.Digit() == 0:
		p.pressed = 10
	case k.Key.Digit() > 0:
		p.pressed = k.Key.Digit()
	case k.Key == core.KeyBackspace:
		p.back = true
	case k.Key == core.KeyTab:
		if k.Mods&core.ModShift != 0 {
			p.tabs--
		} else {
			p.tabs++
		}
	case k.Key == core.KeyUp, k.Key == core.KeyRight:
		p.delta += step
	case k.Key == core.KeyDown, k.Key == core.KeyLeft:
		p.delta -= step
	default:
		return false
	}
	return true
}

// BeginFrame starts a new widget pass.
func (p *Panel) BeginFrame() {
	p.buttons = 0
	p.edits = 0
	p.focused = ""
	p.lines = p.lines[:0]
	p.keyed = p.keyed[:0]
	if p.lastEdit > 0 {
		p.focus = ((p.focus+p.tabs)%p.lastEdit + p.lastEdit) % p.lastEdit
	}
	p.tabs = 0
}

// EndFrame drops input no widget consumed.
func (p *Panel) EndFrame() {
	p.lastEdit = p.edits
	if p.focus >= p.edits {
		p.focus = 0
	}
	p.pressed = -1
	p.back = false
	p.delta = 0
}

// Lines returns the widget listing of the last pass.
func (p *Panel) Lines() []string { return p.lines }

// Summary is a one-line description of the last pass.
func (p *Panel) Summary() string {
	parts := make([]string, 0, 2)
	if p.focused != "" {
		parts = append(parts, p.focused)
	}
	if len(p.keyed) > 0 {
		parts = append(parts, strings.Join(p.keyed, " "))
	}
	return strings.Join(parts, " | ")
}

func (p *Panel) Button(label string) bool {
	if label == p.BackLabel {
		p.addButton("[Bksp] " + label)
		hit := p.back
		p.back = false
		return hit
	}
	p.buttons++
	n := p.buttons
	key := n
	if n == 10 {
		key = 0
	}
	p.addButton(fmt.Sprintf("[%d] %s", key, label))
	if n == p.pressed {
		p.pressed = -1
		return true
	}
	return false
}

func (p *Panel) addButton(line string) {
	p.lines = append(p.lines, line)
	p.keyed = append(p.keyed, line)
}

func (p *Panel) SliderFloat(label string, v *float32, min, max float32) bool {
	return p.edit(label, v, min, max)
}

func (p *Panel) SliderFloat3(label string, v *[3]float32, min, max float32) bool {
	changed := false
	for i, axis := range [...]string{"x", "y", "z"} {
		if p.edit(label+"."+axis, &v[i], min, max) {
			changed = true
		}
	}
	return changed
}

func (p *Panel) ColorEdit4(label string, c *colors.Color) bool {
	changed := false
	for i, ch := range [...]string{"r", "g", "b", "a"} {
		if p.edit(label+"."+ch, &c[i], 0, 1) {
			changed = true
		}
	}
	return changed
}

func (p *Panel) Text(format string, args ...any) {
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
}

func (p *Panel) edit(label string, v *float32, min, max float32) bool {
	idx := p.edits
	p.edits++
	p.lines = append(p.lines, fmt.Sprintf("%s = %.3f", label, *v))
	if idx != p.focus {
		return false
	}
	changed := false
	if p.delta != 0 {
		nv := *v + p.delta*(max-min)
		if nv < min {
			nv = min
		}
		if nv > max {
			nv = max
		}
		changed = nv != *v
		*v = nv
		p.delta = 0
	}
	p.focused = fmt.Sprintf("> %s = %.3f", label, *v)
	return changed
}
