package factory

import (
	"fmt"

	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/assets/animations"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, sheet assets.Handle, frameWidth, frameHeight, columns int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:  make(map[cfg.AnimationID]*animations.Animation),
		Sheet:       sheet,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Columns:     columns,
	}
	for id, def := range defs {
		animData.Animations[id] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.CurrentAnimation = animData.Animations[cfg.AnimWalk]
	return animData
}
