package tiled

import (
	"log"
	gomath "math"
	"sort"

	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Lookup gives the synthesizer read access to loaded assets
type Lookup interface {
	Map(id assets.AssetID) (*LoadedMap, bool)
	TextureReady(id assets.AssetID) bool
}

// Options control how maps are placed in the world
type Options struct {
	Scale    float64 // uniform scale of every layer root
	CellSize int     // collision space cell size in world pixels
}

// Batch is one layer root and the tiles spawned under it
type Batch struct {
	Key   components.LayerKey
	Root  donburi.Entity
	Tiles []donburi.Entity
}

// InstanceSnapshot is the state of a map instance the planner needs
type InstanceSnapshot struct {
	Entity  donburi.Entity
	Name    string
	Map     assets.AssetID
	Built   bool
	Origin  math.Vec2
	Batches []Batch
}

// SyncInput is everything one synthesizer pass looks at
type SyncInput struct {
	MapEvents     []assets.Event
	TextureEvents []assets.Event
	Instances     []InstanceSnapshot
	Assets        Lookup
	Options       Options
}

// ColliderSpawn describes the physics body of a tile object
type ColliderSpawn struct {
	Body   components.RigidBody
	Center math.Vec2 // world
	Size   math.Vec2 // world pixels
}

// TileSpawn is one tile to create. Tile.Tilemap is filled in once the root exists.
type TileSpawn struct {
	Tile     components.TileData
	Collider *ColliderSpawn
}

// LayerBuild creates one layer root and its tiles
type LayerBuild struct {
	Instance  donburi.Entity
	Key       components.LayerKey
	Tilemap   components.TilemapData
	Transform components.TransformData
	Tiles     []TileSpawn
}

// SpaceBuild sizes the collision space of an instance
type SpaceBuild struct {
	Instance donburi.Entity
	Origin   math.Vec2 // world position of the top-left corner
	Width    int
	Height   int
	CellSize int
}

// Teardown removes one batch of an instance
type Teardown struct {
	Instance donburi.Entity
	Batch    Batch
}

// Plan is the list of world mutations produced by one synthesizer pass
type Plan struct {
	Teardowns []Teardown
	Spaces    []SpaceBuild
	Builds    []LayerBuild
	Rebuilt   []donburi.Entity // instances whose layers were rebuilt
	Cleared   []donburi.Entity // instances of removed maps, left empty
	Loaded    []donburi.Entity // instances built for the first time
}

func (p *Plan) Empty() bool {
	return len(p.Teardowns) == 0 && len(p.Builds) == 0 && len(p.Rebuilt) == 0 && len(p.Cleared) == 0
}

// TileCount returns the number of tiles the plan creates.
func (p *Plan) TileCount() int {
	n := 0
	for _, b := range p.Builds {
		n += len(b.Tiles)
	}
	return n
}

// PlanRebuild decides which instances to tear down and rebuild.
//
// An instance is rebuilt when its map was added or modified, when a texture
// its map uses changed, or when it has not been built yet and its map is
// ready. Instances of removed maps are torn down and left empty. Every rebuild
// replaces all batches of the instance.
func PlanRebuild(in SyncInput) Plan {
	changed := make(map[assets.AssetID]bool)
	removed := make(map[assets.AssetID]bool)
	for _, ev := range in.MapEvents {
		switch ev.Kind {
		case assets.EventAdded, assets.EventModified:
			changed[ev.ID] = true
			delete(removed, ev.ID)
		case assets.EventRemoved:
			removed[ev.ID] = true
			delete(changed, ev.ID)
		}
	}
	textures := make(map[assets.AssetID]bool)
	for _, ev := range in.TextureEvents {
		textures[ev.ID] = true
	}

	var plan Plan
	for i := range in.Instances {
		inst := &in.Instances[i]
		if removed[inst.Map] {
			plan.teardown(inst)
			if len(inst.Batches) > 0 || inst.Built {
				plan.Cleared = append(plan.Cleared, inst.Entity)
			}
			continue
		}

		lm, ok := in.Assets.Map(inst.Map)
		if !ok {
			continue
		}
		if inst.Built && !changed[inst.Map] && !referencesAny(lm, textures) {
			continue
		}

		plan.teardown(inst)
		plan.build(inst, lm, in.Assets, in.Options)
		plan.Rebuilt = append(plan.Rebuilt, inst.Entity)
		if !inst.Built {
			plan.Loaded = append(plan.Loaded, inst.Entity)
		}
	}
	return plan
}

func referencesAny(lm *LoadedMap, textures map[assets.AssetID]bool) bool {
	for id := range textures {
		if lm.References(id) {
			return true
		}
	}
	return false
}

func (p *Plan) teardown(inst *InstanceSnapshot) {
	for _, b := range inst.Batches {
		p.Teardowns = append(p.Teardowns, Teardown{Instance: inst.Entity, Batch: b})
	}
}

func (p *Plan) build(inst *InstanceSnapshot, lm *LoadedMap, lookup Lookup, opts Options) {
	m := lm.Model
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	mapType := m.Orientation.MapType()

	half := HalfExtent(m, scale)
	p.Spaces = append(p.Spaces, SpaceBuild{
		Instance: inst.Entity,
		Origin:   math.Vec2{X: inst.Origin.X - half.X, Y: inst.Origin.Y + half.Y},
		Width:    int(gomath.Ceil(half.X * 2)),
		Height:   int(gomath.Ceil(half.Y * 2)),
		CellSize: opts.CellSize,
	})

	skipped := make(map[int]bool)
	for ti := range m.Tilesets {
		ts := &m.Tilesets[ti]
		tex, ok := lm.Textures[ts.Index]
		if !ok || !lookup.TextureReady(tex.ID) {
			continue
		}

		for li := range m.Layers {
			layer := &m.Layers[li]
			root := math.Vec2{
				X: inst.Origin.X + layer.OffsetX*scale,
				Y: inst.Origin.Y - layer.OffsetY*scale,
			}

			var tiles []TileSpawn
			switch layer.Kind {
			case TileLayer:
				if !layer.Tiles.Finite {
					if !skipped[li] {
						log.Printf("Warning: layer %q of %s is infinite, skipping", layer.Name, lm.Path)
						skipped[li] = true
					}
					continue
				}
				tiles = tileLayerSpawns(layer, ts)
			case ObjectLayer:
				tiles = objectLayerSpawns(layer, ts, m, root, scale)
			default:
				if !skipped[li] {
					log.Printf("[tiled] skipping %s %q of %s", layer.Kind, layer.Name, lm.Path)
					skipped[li] = true
				}
				continue
			}
			if len(tiles) == 0 {
				continue
			}

			key := components.LayerKey{Layer: li, Tileset: ts.Index}
			p.Builds = append(p.Builds, LayerBuild{
				Instance: inst.Entity,
				Key:      key,
				Tilemap: components.TilemapData{
					Instance:   inst.Entity,
					LayerIndex: li,
					LayerID:    layer.ID,
					LayerName:  layer.Name,
					Tileset:    ts.Index,
					Texture:    tex,
					GridSize:   math.Vec2{X: float64(m.TileWidth), Y: float64(m.TileHeight)},
					TileSize:   math.Vec2{X: float64(ts.TileWidth), Y: float64(ts.TileHeight)},
					Spacing:    math.Vec2{X: float64(ts.Spacing), Y: float64(ts.Spacing)},
					Margin:     ts.Margin,
					Columns:    ts.Columns,
					Size:       components.TilePos{X: m.Width, Y: m.Height},
					MapType:    mapType,
				},
				Transform: components.TransformData{
					Position: root,
					Z:        float64(li),
					Scale:    scale,
				},
				Tiles: tiles,
			})
		}
	}
}

// tileLayerSpawns walks engine cells row by row and reads each from the
// mirrored document row.
func tileLayerSpawns(layer *Layer, ts *Tileset) []TileSpawn {
	grid := layer.Tiles
	var tiles []TileSpawn
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			ref := grid.At(x, EngineRow(y, grid.Height))
			if ref == nil || ref.Tileset != ts.Index {
				continue
			}
			tiles = append(tiles, TileSpawn{Tile: components.TileData{
				Pos:          components.TilePos{X: x, Y: y},
				Layer:        layer.ID,
				TextureIndex: ref.ID,
				Flip:         ref.Flip(),
			}})
		}
	}
	return tiles
}

func objectLayerSpawns(layer *Layer, ts *Tileset, m *MapModel, root math.Vec2, scale float64) []TileSpawn {
	var tiles []TileSpawn
	fallback := Hitbox{Width: float64(ts.TileWidth), Height: float64(ts.TileHeight)}
	for oi := range layer.Objects {
		obj := &layer.Objects[oi]
		if obj.Tile == nil || obj.Tile.Tileset != ts.Index {
			continue
		}
		body, hitbox := ColliderFromProperties(obj.Properties, fallback)
		tiles = append(tiles, TileSpawn{
			Tile: components.TileData{
				Pos:          ObjectCell(obj, m),
				Layer:        layer.ID,
				TextureIndex: obj.Tile.ID,
				Flip:         obj.Tile.Flip(),
			},
			Collider: &ColliderSpawn{
				Body:   body,
				Center: ObjectWorldCenter(obj, m, fallback, root, scale),
				Size:   math.Vec2{X: hitbox.Width * scale, Y: hitbox.Height * scale},
			},
		})
	}
	return tiles
}

// sortedBatches orders batches by layer then tileset.
func sortedBatches(layers map[components.LayerKey]donburi.Entity) []Batch {
	batches := make([]Batch, 0, len(layers))
	for k, e := range layers {
		batches = append(batches, Batch{Key: k, Root: e})
	}
	sort.Slice(batches, func(i, j int) bool {
		a, b := batches[i].Key, batches[j].Key
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.Tileset < b.Tileset
	})
	return batches
}
