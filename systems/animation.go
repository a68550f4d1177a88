package systems

import (
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation plays the walk cycle while a move action is held and rests
// on the first frame otherwise.
func UpdateAnimation(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(entry)
	if anim.CurrentAnimation == nil {
		anim.CurrentAnimation = anim.Animations[cfg.AnimWalk]
		if anim.CurrentAnimation == nil {
			return
		}
	}

	moving := false
	for _, id := range cfg.MovementActions {
		state := GetAction(e, id)
		if state.JustPressed {
			anim.CurrentAnimation.Start()
		}
		moving = moving || state.Pressed
	}
	if !moving {
		anim.CurrentAnimation.Stop()
		return
	}
	anim.CurrentAnimation.Start()
	anim.CurrentAnimation.Update()
}
