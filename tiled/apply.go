package tiled

import (
	"log"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	"github.com/automoto/terra-firma/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot reads every map instance in the world for the planner.
func Snapshot(w donburi.World) []InstanceSnapshot {
	var out []InstanceSnapshot
	components.MapInstance.Each(w, func(e *donburi.Entry) {
		inst := components.MapInstance.Get(e)
		snap := InstanceSnapshot{
			Entity: e.Entity(),
			Name:   inst.Name,
			Map:    inst.Handle.ID,
			Built:  inst.Built,
		}
		if e.HasComponent(components.Transform) {
			snap.Origin = components.Transform.Get(e).Position
		}
		for _, b := range sortedBatches(inst.Layers) {
			if w.Valid(b.Root) {
				root := w.Entry(b.Root)
				if root.HasComponent(components.TileStorage) {
					b.Tiles = append(b.Tiles, components.TileStorage.Get(root).Entities()...)
				}
			}
			snap.Batches = append(snap.Batches, b)
		}
		out = append(out, snap)
	})
	return out
}

// Sync runs one synthesizer pass: it plans against the current world and
// applies the plan. It is idempotent when nothing changed.
func Sync(e *ecs.ECS, mapEvents, textureEvents []assets.Event, lookup Lookup, opts Options) Plan {
	plan := PlanRebuild(SyncInput{
		MapEvents:     mapEvents,
		TextureEvents: textureEvents,
		Instances:     Snapshot(e.World),
		Assets:        lookup,
		Options:       opts,
	})
	if !plan.Empty() {
		Apply(e, &plan)
	}
	return plan
}

// Apply performs the world mutations of a plan: teardowns first, then spaces,
// then new layer roots with their tiles.
func Apply(e *ecs.ECS, plan *Plan) {
	w := e.World
	for _, td := range plan.Teardowns {
		teardownBatch(w, td.Instance, td.Batch)
	}
	for _, sb := range plan.Spaces {
		ensureSpace(w, sb)
	}
	for i := range plan.Builds {
		spawnLayer(e, &plan.Builds[i])
	}
	for _, ent := range plan.Rebuilt {
		if inst, ok := instanceData(w, ent); ok {
			inst.Built = true
		}
	}
	for _, ent := range plan.Cleared {
		if inst, ok := instanceData(w, ent); ok {
			inst.Built = false
		}
	}
	if n := len(plan.Rebuilt) + len(plan.Cleared); n > 0 {
		log.Printf("[tiled] synced %d map instance(s): %d layer root(s), %d tile(s)", n, len(plan.Builds), plan.TileCount())
	}
}

// DespawnInstance removes a map instance together with its layer roots, tiles
// and collision space.
func DespawnInstance(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	inst := components.MapInstance.Get(entry)
	for _, b := range sortedBatches(inst.Layers) {
		if w.Valid(b.Root) {
			root := w.Entry(b.Root)
			if root.HasComponent(components.TileStorage) {
				b.Tiles = components.TileStorage.Get(root).Entities()
			}
		}
		teardownBatch(w, entry.Entity(), b)
	}
	w.Remove(entry.Entity())
}

func instanceData(w donburi.World, ent donburi.Entity) (*components.MapInstanceData, bool) {
	if !w.Valid(ent) {
		return nil, false
	}
	e := w.Entry(ent)
	if !e.HasComponent(components.MapInstance) {
		return nil, false
	}
	return components.MapInstance.Get(e), true
}

func instanceSpace(w donburi.World, ent donburi.Entity) *components.SpaceData {
	if !w.Valid(ent) {
		return nil
	}
	e := w.Entry(ent)
	if !e.HasComponent(components.Space) {
		return nil
	}
	s := components.Space.Get(e)
	if s.Space == nil {
		return nil
	}
	return s
}

func teardownBatch(w donburi.World, instance donburi.Entity, b Batch) {
	space := instanceSpace(w, instance)
	for _, t := range b.Tiles {
		if !w.Valid(t) {
			continue
		}
		if tile := w.Entry(t); tile.HasComponent(components.Collider) {
			c := components.Collider.Get(tile)
			if space != nil && c.Object != nil {
				space.Remove(c.Object)
			}
		}
		w.Remove(t)
	}
	if w.Valid(b.Root) {
		w.Remove(b.Root)
	}
	if inst, ok := instanceData(w, instance); ok {
		delete(inst.Layers, b.Key)
	}
}

// ensureSpace gives an instance a collision space of the planned size,
// replacing one that no longer fits the map.
func ensureSpace(w donburi.World, sb SpaceBuild) {
	if !w.Valid(sb.Instance) {
		return
	}
	e := w.Entry(sb.Instance)
	if !e.HasComponent(components.Space) {
		e.AddComponent(components.Space)
	}
	s := components.Space.Get(e)
	cell := sb.CellSize
	if cell <= 0 {
		cell = 32
	}
	if s.Space == nil || s.Width != sb.Width || s.Height != sb.Height {
		s.Space = resolv.NewSpace(sb.Width, sb.Height, cell, cell)
		s.Width, s.Height = sb.Width, sb.Height
	}
	s.Origin = sb.Origin
}

func spawnLayer(e *ecs.ECS, lb *LayerBuild) {
	w := e.World
	inst, ok := instanceData(w, lb.Instance)
	if !ok {
		return
	}
	if old, exists := inst.Layers[lb.Key]; exists && w.Valid(old) {
		log.Printf("Warning: layer root %v of %s already exists, replacing", lb.Key, inst.Name)
		teardownBatch(w, lb.Instance, Batch{Key: lb.Key, Root: old, Tiles: components.TileStorage.Get(w.Entry(old)).Entities()})
	}

	root := archetypes.TilemapLayer.Spawn(e)
	components.Tilemap.SetValue(root, lb.Tilemap)
	components.Transform.SetValue(root, lb.Transform)
	storage := components.NewTileStorage(lb.Tilemap.Size)

	space := instanceSpace(w, lb.Instance)
	for i := range lb.Tiles {
		ts := &lb.Tiles[i]
		data := ts.Tile
		data.Tilemap = root.Entity()

		var tile *donburi.Entry
		if ts.Collider != nil {
			tile = archetypes.TileCollider.Spawn(e)
			components.Collider.SetValue(tile, newCollider(tile, space, ts.Collider))
		} else {
			tile = archetypes.Tile.Spawn(e)
		}
		components.Tile.SetValue(tile, data)
		storage.Set(data.Pos, tile.Entity())
	}
	components.TileStorage.SetValue(root, *storage)

	inst, _ = instanceData(w, lb.Instance)
	if inst.Layers == nil {
		inst.Layers = make(map[components.LayerKey]donburi.Entity)
	}
	inst.Layers[lb.Key] = root.Entity()
}

func newCollider(tile *donburi.Entry, space *components.SpaceData, cs *ColliderSpawn) components.ColliderData {
	w, h := cs.Size.X, cs.Size.Y
	x, y := cs.Center.X-w/2, cs.Center.Y+h/2
	if space != nil {
		p := space.ToSpace(cs.Center)
		x, y = p.X-w/2, p.Y-h/2
	}
	obj := resolv.NewObject(x, y, w, h, bodyTag(cs.Body))
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = tile
	if space != nil {
		space.Add(obj)
	}
	return components.ColliderData{Object: obj, Body: cs.Body, Size: cs.Size}
}

func bodyTag(b components.RigidBody) string {
	switch b {
	case components.RigidBodyKinematic:
		return tags.ResolvKinematic
	case components.RigidBodyDynamic:
		return tags.ResolvDynamic
	}
	return tags.ResolvStatic
}
