package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LoadingData tracks the map the gameplay screen is waiting for
type LoadingData struct {
	MapName string
	Loaded  bool
	Failed  error // set when the map could not be loaded
	Fade    *gween.Tween
	Alpha   float32 // black cover opacity, 1 while loading
}

var Loading = donburi.NewComponentType[LoadingData]()
