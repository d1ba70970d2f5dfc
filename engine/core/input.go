package core

// Input tracks held keys, the last modifier state, the cursor and the wheel
// scroll accumulated since the last TakeScroll. It is fed from window events.
type Input struct {
	held   map[Key]bool
	mods   Mod
	cursor [2]float64
	scroll float64
}

func NewInput() *Input { return &Input{held: make(map[Key]bool)} }

// Handle folds one window event into the state.
func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down {
			in.held[e.Key] = true
		} else {
			delete(in.held, e.Key)
		}
		in.mods = e.Mods
	case EventMouseMove:
		in.cursor = [2]float64{e.X, e.Y}
	case EventScroll:
		in.scroll += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.held[k] }
func (in *Input) Mods() Mod                 { return in.mods }
func (in *Input) Mouse() (float64, float64) { return in.cursor[0], in.cursor[1] }

// TakeScroll returns the vertical scroll since the previous call and resets it.
func (in *Input) TakeScroll() float64 {
	s := in.scroll
	in.scroll = 0
	return s
}
