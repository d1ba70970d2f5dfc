package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyA, Down: true})
	in.Handle(EventMouseMove{X: 3, Y: 4})
	assert.True(t, in.IsKeyDown(KeyA))
	x, y := in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	in.Handle(EventKey{Key: KeyA, Down: false, Mods: ModShift})
	assert.False(t, in.IsKeyDown(KeyA))
	assert.Equal(t, ModShift, in.Mods())

	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: -3})
	assert.Equal(t, -2.0, in.TakeScroll())
	assert.Zero(t, in.TakeScroll())
}

func TestKeyDigit(t *testing.T) {
	assert.Equal(t, 0, Key0.Digit())
	assert.Equal(t, 7, Key7.Digit())
	assert.Equal(t, -1, KeyEscape.Digit())
}
