package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameState is the gameplay run state
type GameState int

const (
	GameRunning GameState = iota
	GamePaused
)

// PauseData stores the pause state and the overlay fade
type PauseData struct {
	State GameState
	Fade  *gween.Tween
	Alpha float32 // overlay opacity, 0..1
}

func (p *PauseData) IsPaused() bool {
	return p.State == GamePaused
}

var Pause = donburi.NewComponentType[PauseData]()
