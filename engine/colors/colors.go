package colors

// Color is linear RGBA in [0, 1].
type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Sky   = Color{0.2, 0.3, 0.8, 1}
)

// Clamped limits every channel to [0, 1].
func (c Color) Clamped() Color {
	for i, v := range c {
		switch {
		case v < 0:
			c[i] = 0
		case v > 1:
			c[i] = 1
		}
	}
	return c
}
