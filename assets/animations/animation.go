package animations

// Animation advances through sprite sheet indices First..Last while playing
// and wraps back to First.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	playing      bool
	Looped       bool
}

func (a *Animation) Update() {
	if !a.playing {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Playing() bool {
	return a.playing
}

// Start resumes playback from the current frame.
func (a *Animation) Start() {
	if a.playing {
		return
	}
	a.playing = true
	a.frameCounter = a.SpeedInTps
}

// Stop halts playback and rests on the first frame.
func (a *Animation) Stop() {
	a.playing = false
	a.Restart()
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
