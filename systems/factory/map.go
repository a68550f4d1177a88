package factory

import (
	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/components"
	"github.com/automoto/terra-firma/tiled"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnMap creates an unbuilt instance of a registered map centered on at. The
// tilemap sync builds its layers once the map and its textures are loaded.
func SpawnMap(ecs *ecs.ECS, entry tiled.RegistryEntry, at math.Vec2) *donburi.Entry {
	inst := archetypes.MapInstance.Spawn(ecs)
	components.MapInstance.SetValue(inst, components.MapInstanceData{
		Name:   entry.Name,
		Handle: entry.Handle,
		Chunk:  components.TilePos{X: int(entry.ChunkSize.Width), Y: int(entry.ChunkSize.Height)},
		Layers: make(map[components.LayerKey]donburi.Entity),
	})
	components.Transform.SetValue(inst, components.TransformData{Position: at, Scale: 1})
	return inst
}
