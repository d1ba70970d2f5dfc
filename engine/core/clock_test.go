package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameStats(t *testing.T) {
	var f FrameStats
	assert.Zero(t, f.FPS())

	f.Add(10 * time.Millisecond)
	assert.Equal(t, 1, f.Count)
	assert.InDelta(t, 10, f.MsPerFrame(), 1e-9)
	assert.InDelta(t, 100, f.FPS(), 1e-9)

	f.Add(20 * time.Millisecond)
	assert.InDelta(t, 11, f.MsPerFrame(), 1e-3)
}

func TestFixedStep(t *testing.T) {
	s := fixedStep{tick: 10 * time.Millisecond, max: 4}
	assert.Equal(t, 0, s.Advance(5*time.Millisecond))
	assert.Equal(t, 1, s.Advance(5*time.Millisecond))
	assert.Equal(t, 2, s.Advance(25*time.Millisecond))

	// the 5ms remainder is dropped with the backlog
	assert.Equal(t, 4, s.Advance(time.Second))
	assert.Equal(t, 0, s.Advance(9*time.Millisecond))
}
