package core

import "time"

// FrameStats keeps a smoothed frame duration, like the overlay's framerate readout.
type FrameStats struct {
	Count int
	avg   time.Duration
}

// smoothing factor of the moving average
const frameSmoothing = 0.1

// Add records the duration of one frame.
func (f *FrameStats) Add(d time.Duration) {
	f.Count++
	if f.Count == 1 {
		f.avg = d
		return
	}
	f.avg += time.Duration(frameSmoothing * float64(d-f.avg))
}

// MsPerFrame is the smoothed frame time in milliseconds.
func (f *FrameStats) MsPerFrame() float64 { return float64(f.avg) / float64(time.Millisecond) }

// FPS is the smoothed frame rate, 0 before the first frame.
func (f *FrameStats) FPS() float64 {
	if f.avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(f.avg)
}

// fixedStep converts variable frame times into a number of fixed-length updates.
type fixedStep struct {
	tick  time.Duration
	max   int
	accum time.Duration
}

// Advance adds one frame and returns how many ticks are due. A backlog larger
// than max is dropped so a stall does not snowball.
func (s *fixedStep) Advance(frame time.Duration) int {
	s.accum += frame
	n := int(s.accum / s.tick)
	if n >= s.max {
		s.accum = 0
		return s.max
	}
	s.accum -= time.Duration(n) * s.tick
	return n
}
