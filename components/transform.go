package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in world space (y up)
type TransformData struct {
	Position math.Vec2
	Z        float64
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()
