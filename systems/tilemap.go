package systems

import (
	"log"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tiled"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SubscribeEvents wires the gameplay event handlers into the world. Call once
// per world before the first tick.
func SubscribeEvents(e *ecs.ECS) {
	getOrCreateAssetQueue(e)
	GetOrCreateLoading(e)
	GetOrCreatePause(e)

	components.MapAssetEvents.Subscribe(e.World, func(w donburi.World, ev assets.Event) {
		if entry, ok := components.AssetQueue.First(w); ok {
			q := components.AssetQueue.Get(entry)
			q.Maps = append(q.Maps, ev)
		}
	})
	components.TextureAssetEvents.Subscribe(e.World, func(w donburi.World, ev assets.Event) {
		if entry, ok := components.AssetQueue.First(w); ok {
			q := components.AssetQueue.Get(entry)
			q.Textures = append(q.Textures, ev)
		}
	})
	components.MapLoading.Subscribe(e.World, onMapLoading)
	components.MapLoaded.Subscribe(e.World, onMapLoaded)
	components.ResumeGame.Subscribe(e.World, func(w donburi.World, _ components.ResumeGameEvent) {
		if entry, ok := components.Pause.First(w); ok {
			setPaused(components.Pause.Get(entry), false)
		}
	})
}

func onMapLoading(w donburi.World, ev components.MapLoadingEvent) {
	entry, ok := components.Loading.First(w)
	if !ok {
		return
	}
	loading := components.Loading.Get(entry)
	loading.MapName = ev.Name
	loading.Loaded = false
	loading.Fade = nil
	loading.Alpha = 1
	log.Printf("[tiled] loading %s from %s", ev.Name, ev.Path)
}

func onMapLoaded(w donburi.World, ev components.MapLoadedEvent) {
	entry, ok := components.Loading.First(w)
	if !ok {
		return
	}
	loading := components.Loading.Get(entry)
	if loading.MapName != ev.Name || (loading.Loaded && loading.Failed == nil) {
		return
	}
	loading.Loaded = true
	loading.Failed = nil
	loading.Fade = gween.New(loading.Alpha, 0, cfg.Map.FadeInDuration, ease.OutQuad)
	log.Printf("[tiled] %s ready", ev.Name)
}

// MapFailures is implemented by lookups that know when a map failed to load.
type MapFailures interface {
	MapErr(id assets.AssetID) error
}

// NewSyncTilemaps returns the system that runs the world synthesizer over the
// asset events collected since the previous tick. When lookup also implements
// MapFailures, a map that fails to load lifts the loading cover so the screen
// stays usable.
func NewSyncTilemaps(lookup tiled.Lookup, cache *TextureCache) ecs.System {
	opts := tiled.Options{Scale: cfg.Map.Scale, CellSize: cfg.Map.CellSize}
	failures, _ := lookup.(MapFailures)
	return func(e *ecs.ECS) {
		// a map already cached completes in the tick it is requested
		components.MapLoading.ProcessEvents(e.World)
		components.MapAssetEvents.ProcessEvents(e.World)
		components.TextureAssetEvents.ProcessEvents(e.World)

		maps, textures := getOrCreateAssetQueue(e).Drain()
		if cache != nil {
			for _, ev := range textures {
				cache.Invalidate(ev.ID)
			}
		}

		plan := tiled.Sync(e, maps, textures, lookup, opts)
		for _, ent := range plan.Loaded {
			if !e.World.Valid(ent) {
				continue
			}
			inst := components.MapInstance.Get(e.World.Entry(ent))
			components.MapLoaded.Publish(e.World, components.MapLoadedEvent{Name: inst.Name, Instance: ent})
		}
		if failures != nil {
			checkLoadFailed(e, failures)
		}
	}
}

func checkLoadFailed(e *ecs.ECS, failures MapFailures) {
	loading := GetOrCreateLoading(e)
	if loading.Loaded || loading.MapName == "" {
		return
	}
	inst, ok := FindMapInstance(e.World, loading.MapName)
	if !ok {
		return
	}
	err := failures.MapErr(components.MapInstance.Get(inst).Handle.ID)
	if err == nil {
		return
	}
	log.Printf("Warning: %s failed to load: %v", loading.MapName, err)
	loading.Loaded = true
	loading.Failed = err
	loading.Fade = gween.New(loading.Alpha, 0, cfg.Map.FadeInDuration, ease.OutQuad)
}

// ProcessEvents delivers every queued event. Runs last in the system list.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// FindMapInstance returns the instance spawned for a logical map name.
func FindMapInstance(w donburi.World, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.MapInstance.Each(w, func(entry *donburi.Entry) {
		if found == nil && components.MapInstance.Get(entry).Name == name {
			found = entry
		}
	})
	return found, found != nil
}

func getOrCreateAssetQueue(e *ecs.ECS) *components.AssetQueueData {
	entry, ok := components.AssetQueue.First(e.World)
	if !ok {
		entry = archetypes.AssetQueue.Spawn(e)
	}
	return components.AssetQueue.Get(entry)
}
