package systems

import (
	"testing"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/automoto/terra-firma/tiled"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// A 6x3 field: a static wall on the right of the middle row and a crate two
// cells in front of it.
const fieldMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="6" height="3" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="8" columns="4">
  <image source="../../tileset/terrain.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="Ground" width="6" height="3">
  <data encoding="csv">
1,1,1,1,1,1,
1,1,1,1,1,1,
1,1,1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="Colliders">
  <object id="1" gid="4" x="80" y="32" width="16" height="16"/>
  <object id="2" gid="5" x="48" y="32" width="16" height="16">
   <properties>
    <property name="collider_type" value="Dynamic"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const fieldName = "Field"

type fakeLookup struct {
	maps   map[assets.AssetID]*tiled.LoadedMap
	ready  map[assets.AssetID]bool
	failed map[assets.AssetID]error
}

func (l fakeLookup) Map(id assets.AssetID) (*tiled.LoadedMap, bool) {
	m, ok := l.maps[id]
	return m, ok
}

func (l fakeLookup) MapErr(id assets.AssetID) error {
	return l.failed[id]
}

func (l fakeLookup) TextureReady(id assets.AssetID) bool {
	return l.ready[id]
}

func fieldLookup(t *testing.T) fakeLookup {
	t.Helper()
	model, err := tiled.Parse("maps/field.tmx", []byte(fieldMap), nil)
	require.NoError(t, err)
	return fakeLookup{
		maps: map[assets.AssetID]*tiled.LoadedMap{
			"field": {
				Path:     "maps/field.tmx",
				Model:    model,
				Textures: map[int]assets.Handle{0: {ID: "terrain", Path: "tileset/terrain.png"}},
			},
		},
		ready: map[assets.AssetID]bool{"terrain": true},
	}
}

// newField returns a world with the field map spawned at the origin and
// synced once.
func newField(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeEvents(e)

	inst := archetypes.MapInstance.Spawn(e)
	components.MapInstance.SetValue(inst, components.MapInstanceData{
		Name:   fieldName,
		Handle: assets.Handle{ID: "field", Path: "maps/field.tmx"},
		Layers: make(map[components.LayerKey]donburi.Entity),
	})
	components.Transform.SetValue(inst, components.TransformData{Scale: 1})

	components.MapLoading.Publish(e.World, components.MapLoadingEvent{Name: fieldName, Path: "maps/field.tmx"})
	components.MapAssetEvents.Publish(e.World, assets.Event{Kind: assets.EventAdded, ID: "field", Path: "maps/field.tmx"})

	NewSyncTilemaps(fieldLookup(t), nil)(e)
	ProcessEvents(e)
	return e
}

// spawnPlayer places a bare player on the field without an animation sheet.
func spawnPlayer(e *ecs.ECS, at math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	obj := resolv.NewObject(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Facing: 1,
		Map:    fieldName,
		Object: obj,
	})
	components.Transform.SetValue(player, components.TransformData{Position: at, Scale: 1})
	return player
}

func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}

func fieldCrate(t *testing.T, e *ecs.ECS) *components.ColliderData {
	t.Helper()
	var crate *components.ColliderData
	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		if c := components.Collider.Get(entry); c.Body == components.RigidBodyDynamic {
			crate = c
		}
	})
	require.NotNil(t, crate)
	return crate
}

func newWorld() donburi.World {
	return donburi.NewWorld()
}
