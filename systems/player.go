package systems

import (
	gomath "math"

	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer moves the player from the move actions and resolves collisions
// against the colliders of the map it walks on.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	tr := components.Transform.Get(entry)

	dir := moveDirection(e)
	player.Direction = dir
	if dir.X != 0 {
		player.Facing = gomath.Copysign(1, dir.X)
	}
	step := player.Speed / float64(cfg.C.TPS)

	var space *components.SpaceData
	if inst, found := FindMapInstance(e.World, player.Map); found && inst.HasComponent(components.Space) {
		if s := components.Space.Get(inst); s.Space != nil {
			space = s
		}
	}

	if space == nil {
		player.MoveToSpace(nil)
		halfW, halfH := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
		tr.Position.X = gomath.Max(-halfW, gomath.Min(halfW, tr.Position.X+dir.X*step))
		tr.Position.Y = gomath.Max(-halfH, gomath.Min(halfH, tr.Position.Y+dir.Y*step))
		return
	}

	player.MoveToSpace(space.Space)
	obj := player.Object
	p := space.ToSpace(tr.Position)
	obj.X, obj.Y = p.X-obj.W/2, p.Y-obj.H/2

	// space y grows downward
	dx, _ := sweep(obj, dir.X*step, 0, cfg.Physics.PushFactor, solidTags...)
	obj.X += dx
	_, dy := sweep(obj, 0, -dir.Y*step, cfg.Physics.PushFactor, solidTags...)
	obj.Y += dy

	clampToSpace(obj, float64(space.Width), float64(space.Height))
	obj.Update()

	tr.Position = space.ToWorld(math.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2})
}

// moveDirection turns the held move actions into a unit vector, y up.
func moveDirection(e *ecs.ECS) math.Vec2 {
	var dir math.Vec2
	if GetAction(e, cfg.ActionMoveLeft).Pressed {
		dir.X--
	}
	if GetAction(e, cfg.ActionMoveRight).Pressed {
		dir.X++
	}
	if GetAction(e, cfg.ActionMoveUp).Pressed {
		dir.Y++
	}
	if GetAction(e, cfg.ActionMoveDown).Pressed {
		dir.Y--
	}
	if dir.X != 0 && dir.Y != 0 {
		dir.X /= gomath.Sqrt2
		dir.Y /= gomath.Sqrt2
	}
	return dir
}
