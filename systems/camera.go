package systems

import (
	gomath "math"

	"github.com/automoto/terra-firma/components"
	"github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, capped below the player's
// speed, and keeps the map filling the screen where it is large enough.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	target := components.Transform.Get(playerEntry).Position

	if inst, found := FindMapInstance(e.World, player.Map); found && inst.HasComponent(components.Space) {
		space := components.Space.Get(inst)
		if space.Space != nil {
			target.X = clampAxis(target.X, space.Origin.X, float64(space.Width), float64(config.C.Width))
			target.Y = clampAxis(target.Y, space.Origin.Y-float64(space.Height), float64(space.Height), float64(config.C.Height))
		}
	}

	maxStep := player.Speed * config.Camera.SpeedFactor / float64(config.C.TPS)
	camera.Position.X += capStep((target.X-camera.Position.X)*config.Camera.FollowSmoothing, maxStep)
	camera.Position.Y += capStep((target.Y-camera.Position.Y)*config.Camera.FollowSmoothing, maxStep)
}

// clampAxis keeps the view [v-screen/2, v+screen/2] inside [lo, lo+size], or
// centers it when the map is smaller than the screen.
func clampAxis(v, lo, size, screen float64) float64 {
	if size <= screen {
		return lo + size/2
	}
	return gomath.Max(lo+screen/2, gomath.Min(lo+size-screen/2, v))
}

func capStep(step, limit float64) float64 {
	if limit <= 0 {
		return step
	}
	return gomath.Max(-limit, gomath.Min(limit, step))
}
