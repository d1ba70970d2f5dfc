package hud

import (
	"testing"

	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/core"
	"github.com/stretchr/testify/assert"
)

func key(k core.Key, mods core.Mod) core.EventKey {
	return core.EventKey{Key: k, Down: true, Mods: mods}
}

func TestPanelDigitPressesButton(t *testing.T) {
	p := NewPanel("<- Back")
	assert.True(t, p.HandleEvent(key(core.Key2, 0)))

	p.BeginFrame()
	assert.False(t, p.Button("first"))
	assert.True(t, p.Button("second"))
	assert.False(t, p.Button("third"))
	p.EndFrame()

	assert.Equal(t, []string{"[1] first", "[2] second", "[3] third"}, p.Lines())

	// consumed input does not carry over
	p.BeginFrame()
	assert.False(t, p.Button("first"))
	assert.False(t, p.Button("second"))
	p.EndFrame()
}

func TestPanelZeroIsTenthButton(t *testing.T) {
	p := NewPanel("<- Back")
	p.HandleEvent(key(core.Key0, 0))
	p.BeginFrame()
	hits := 0
	for i := 0; i < 10; i++ {
		if p.Button("b") {
			hits++
			assert.Equal(t, 9, i)
		}
	}
	p.EndFrame()
	assert.Equal(t, 1, hits)
	assert.Equal(t, "[0] b", p.Lines()[9])
}

func TestPanelBackButton(t *testing.T) {
	p := NewPanel("<- Back")
	p.HandleEvent(key(core.KeyBackspace, 0))
	p.HandleEvent(key(core.Key1, 0))

	p.BeginFrame()
	assert.True(t, p.Button("<- Back"))
	// the back button does not take a digit
	assert.True(t, p.Button("first"))
	p.EndFrame()
	assert.Equal(t, "[Bksp] <- Back", p.Lines()[0])
}

func TestPanelIgnoresOtherEvents(t *testing.T) {
	p := NewPanel("<- Back")
	assert.False(t, p.HandleEvent(core.EventResize{W: 1, H: 1}))
	assert.False(t, p.HandleEvent(core.EventKey{Key: core.Key1, Down: false}))
	assert.False(t, p.HandleEvent(key(core.KeyW, 0)))
	assert.False(t, p.HandleEvent(key(core.KeyEscape, 0)))
}

func TestPanelSliderSteps(t *testing.T) {
	p := NewPanel("<- Back")
	v := float32(0.5)

	p.HandleEvent(key(core.KeyUp, 0))
	p.BeginFrame()
	assert.True(t, p.SliderFloat("angle", &v, 0, 10))
	p.EndFrame()
	assert.InDelta(t, 0.6, v, 1e-5)

	p.HandleEvent(key(core.KeyDown, core.ModShift))
	p.BeginFrame()
	p.SliderFloat("angle", &v, 0, 10)
	p.EndFrame()
	assert.Equal(t, float32(0), v)

	// clamped at the range edge
	p.HandleEvent(key(core.KeyLeft, 0))
	p.BeginFrame()
	assert.False(t, p.SliderFloat("angle", &v, 0, 10))
	p.EndFrame()
	assert.Equal(t, float32(0), v)
	assert.Equal(t, "> angle = 0.000", p.Summary())
}

func TestPanelTabMovesFocus(t *testing.T) {
	p := NewPanel("<- Back")
	a, b := float32(0), float32(0)
	frame := func() {
		p.BeginFrame()
		p.SliderFloat("a", &a, 0, 1)
		p.SliderFloat("b", &b, 0, 1)
		p.EndFrame()
	}
	frame()

	p.HandleEvent(key(core.KeyTab, 0))
	p.HandleEvent(key(core.KeyRight, core.ModShift))
	frame()
	assert.Equal(t, float32(0), a)
	assert.InDelta(t, 0.1, b, 1e-6)

	// wraps backwards past the first edit
	p.HandleEvent(key(core.KeyTab, core.ModShift))
	p.HandleEvent(key(core.KeyTab, core.ModShift))
	p.HandleEvent(key(core.KeyUp, core.ModShift))
	frame()
	assert.Equal(t, float32(0), a)
	assert.InDelta(t, 0.2, b, 1e-6)
}

func TestPanelColorAndVector(t *testing.T) {
	p := NewPanel("<- Back")
	c := colors.Black
	v := [3]float32{1, 2, 3}

	p.BeginFrame()
	p.SliderFloat3("pos", &v, -10, 10)
	p.ColorEdit4("tint", &c)
	p.Text("fps %d", 60)
	p.EndFrame()

	assert.Equal(t, []string{
		"pos.x = 1.000", "pos.y = 2.000", "pos.z = 3.000",
		"tint.r = 0.000", "tint.g = 0.000", "tint.b = 0.000", "tint.a = 1.000",
		"fps 60",
	}, p.Lines())

	// focus the alpha channel and lower it
	for i := 0; i < 6; i++ {
		p.HandleEvent(key(core.KeyTab, 0))
	}
	p.HandleEvent(key(core.KeyDown, core.ModShift))
	p.BeginFrame()
	p.SliderFloat3("pos", &v, -10, 10)
	assert.True(t, p.ColorEdit4("tint", &c))
	p.EndFrame()
	assert.InDelta(t, 0.9, c[3], 1e-6)
	assert.Equal(t, [3]float32{1, 2, 3}, v)
}

func TestPanelSummary(t *testing.T) {
	p := NewPanel("<- Back")
	v := float32(1)
	p.BeginFrame()
	p.Button("<- Back")
	p.Button("Reset")
	p.SliderFloat("x", &v, 0, 2)
	p.EndFrame()
	assert.Equal(t, "> x = 1.000 | [Bksp] <- Back [1] Reset", p.Summary())
}

func TestPanelSummarySkipsBracketedText(t *testing.T) {
	p := NewPanel("<- Back")
	p.BeginFrame()
	p.Text("[debug] %d draws", 3)
	p.Button("Reset")
	p.EndFrame()
	assert.Equal(t, []string{"[debug] 3 draws", "[1] Reset"}, p.Lines())
	assert.Equal(t, "[1] Reset", p.Summary())
}
