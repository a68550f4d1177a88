package archetypes

import (
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Animation,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	MapInstance = newArchetype(
		tags.TiledMap,
		components.MapInstance,
		components.Transform,
		components.Space,
	)
	TilemapLayer = newArchetype(
		tags.TilemapLayer,
		components.Tilemap,
		components.Transform,
		components.TileStorage,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
	)
	TileCollider = newArchetype(
		tags.Tile,
		tags.TiledCollider,
		components.Tile,
		components.Collider,
	)
	Input = newArchetype(
		components.Input,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Loading = newArchetype(
		components.Loading,
	)
	Inspector = newArchetype(
		components.Inspector,
	)
	AssetQueue = newArchetype(
		components.AssetQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
