package factory

import (
	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, at math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
}
