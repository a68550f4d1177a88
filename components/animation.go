package components

import (
	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/assets/animations"
	"github.com/automoto/terra-firma/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Animations       map[config.AnimationID]*animations.Animation
	Sheet            assets.Handle
	FrameWidth       int
	FrameHeight      int
	Columns          int
}

// FrameOrigin returns the top-left pixel of the current frame in the sheet.
func (a *AnimationData) FrameOrigin() (int, int) {
	frame := 0
	if a.CurrentAnimation != nil {
		frame = a.CurrentAnimation.Frame()
	}
	cols := a.Columns
	if cols <= 0 {
		cols = 1
	}
	return (frame % cols) * a.FrameWidth, (frame / cols) * a.FrameHeight
}

var Animation = donburi.NewComponentType[AnimationData]()
