package systems

import (
	gomath "math"

	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var dynamicBlockers = append([]string{tags.ResolvPlayer}, solidTags...)

// UpdatePhysics slides pushed dynamic colliders and lets friction bring them
// to rest. Static and kinematic bodies never move here.
func UpdatePhysics(e *ecs.ECS) {
	tags.TiledCollider.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collider.Get(entry)
		if c.Body != components.RigidBodyDynamic || c.Object == nil {
			return
		}
		if c.Velocity.X == 0 && c.Velocity.Y == 0 {
			return
		}
		space := colliderSpace(e.World, entry)
		if space == nil {
			c.Velocity.X, c.Velocity.Y = 0, 0
			return
		}

		dx, _ := sweep(c.Object, c.Velocity.X, 0, 0, dynamicBlockers...)
		c.Object.X += dx
		if dx != c.Velocity.X {
			c.Velocity.X = 0
		}
		_, dy := sweep(c.Object, 0, c.Velocity.Y, 0, dynamicBlockers...)
		c.Object.Y += dy
		if dy != c.Velocity.Y {
			c.Velocity.Y = 0
		}
		clampToSpace(c.Object, float64(space.Width), float64(space.Height))
		c.Object.Update()

		c.Velocity.X *= cfg.Physics.Friction
		c.Velocity.Y *= cfg.Physics.Friction
		if gomath.Abs(c.Velocity.X) < cfg.Physics.MinVelocity {
			c.Velocity.X = 0
		}
		if gomath.Abs(c.Velocity.Y) < cfg.Physics.MinVelocity {
			c.Velocity.Y = 0
		}
	})
}
