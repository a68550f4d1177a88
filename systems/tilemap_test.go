package systems

import (
	"testing"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/automoto/terra-firma/tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSyncBuildsFieldAndStartsFade(t *testing.T) {
	e := newField(t)

	assert.Equal(t, 2, count(e.World, tags.TilemapLayer))
	assert.Equal(t, 20, count(e.World, tags.Tile))
	assert.Equal(t, 2, count(e.World, tags.TiledCollider))

	inst, ok := FindMapInstance(e.World, fieldName)
	require.True(t, ok)
	assert.True(t, components.MapInstance.Get(inst).Built)
	space := components.Space.Get(inst)
	require.NotNil(t, space.Space)
	assert.Equal(t, 192, space.Width)
	assert.Equal(t, 96, space.Height)

	loading := GetOrCreateLoading(e)
	assert.Equal(t, fieldName, loading.MapName)
	assert.True(t, loading.Loaded)
	assert.NotNil(t, loading.Fade)
}

func TestSyncWithoutEventsChangesNothing(t *testing.T) {
	e := newField(t)
	roots := components.MapInstance.Get(mustInstance(t, e)).Layers

	NewSyncTilemaps(fieldLookup(t), nil)(e)
	ProcessEvents(e)

	assert.Equal(t, roots, components.MapInstance.Get(mustInstance(t, e)).Layers)
	assert.Equal(t, 20, count(e.World, tags.Tile))
}

func TestSyncRebuildsOnModifiedMap(t *testing.T) {
	e := newField(t)
	before := components.MapInstance.Get(mustInstance(t, e)).Layers
	beforeCopy := make(map[components.LayerKey]any, len(before))
	for k, v := range before {
		beforeCopy[k] = v
	}

	components.MapAssetEvents.Publish(e.World, assets.Event{Kind: assets.EventModified, ID: "field"})
	NewSyncTilemaps(fieldLookup(t), nil)(e)
	ProcessEvents(e)

	after := components.MapInstance.Get(mustInstance(t, e)).Layers
	require.Len(t, after, len(beforeCopy))
	for k, v := range after {
		assert.NotEqual(t, beforeCopy[k], v, "root %v was not replaced", k)
	}
	assert.Equal(t, 20, count(e.World, tags.Tile))
	assert.Equal(t, 2, count(e.World, tags.TiledCollider))
}

func TestMapLoadedIgnoredForOtherMaps(t *testing.T) {
	e := newField(t)
	loading := GetOrCreateLoading(e)
	loading.MapName = "Elsewhere"
	loading.Loaded = false
	loading.Fade = nil

	components.MapLoaded.Publish(e.World, components.MapLoadedEvent{Name: fieldName})
	ProcessEvents(e)

	assert.False(t, loading.Loaded)
	assert.Nil(t, loading.Fade)
}

func TestLoadingFadeCompletes(t *testing.T) {
	e := newField(t)
	ticks := int(cfg.Map.FadeInDuration*float32(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateLoading(e)
	}

	loading := GetOrCreateLoading(e)
	assert.Nil(t, loading.Fade)
	assert.Zero(t, loading.Alpha)
}

func TestFindMapInstanceUnknownName(t *testing.T) {
	e := newField(t)
	_, ok := FindMapInstance(e.World, "Nowhere")
	assert.False(t, ok)
}

func mustInstance(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	inst, ok := FindMapInstance(e.World, fieldName)
	require.True(t, ok)
	return inst
}

func TestFailedMapLiftsLoadingCover(t *testing.T) {
	e := ecs.NewECS(newWorld())
	SubscribeEvents(e)
	inst := archetypes.MapInstance.Spawn(e)
	components.MapInstance.SetValue(inst, components.MapInstanceData{
		Name:   "Broken",
		Handle: assets.Handle{ID: "broken", Path: "maps/broken.tmx"},
		Layers: make(map[components.LayerKey]donburi.Entity),
	})
	components.Transform.SetValue(inst, components.TransformData{Scale: 1})
	lookup := fakeLookup{failed: map[assets.AssetID]error{"broken": tiled.ErrMalformed}}

	components.MapLoading.Publish(e.World, components.MapLoadingEvent{Name: "Broken", Path: "maps/broken.tmx"})
	NewSyncTilemaps(lookup, nil)(e)
	ProcessEvents(e)

	loading := GetOrCreateLoading(e)
	assert.True(t, loading.Loaded)
	assert.ErrorIs(t, loading.Failed, tiled.ErrMalformed)
	assert.NotNil(t, loading.Fade)
	assert.False(t, components.MapInstance.Get(inst).Built)
	assert.Zero(t, count(e.World, tags.Tile))

	hold(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, IsPaused(e))
}

func TestPendingMapKeepsLoadingCover(t *testing.T) {
	e := ecs.NewECS(newWorld())
	SubscribeEvents(e)
	inst := archetypes.MapInstance.Spawn(e)
	components.MapInstance.SetValue(inst, components.MapInstanceData{
		Name:   fieldName,
		Handle: assets.Handle{ID: "field", Path: "maps/field.tmx"},
		Layers: make(map[components.LayerKey]donburi.Entity),
	})
	components.Transform.SetValue(inst, components.TransformData{Scale: 1})

	components.MapLoading.Publish(e.World, components.MapLoadingEvent{Name: fieldName, Path: "maps/field.tmx"})
	NewSyncTilemaps(fakeLookup{}, nil)(e)
	ProcessEvents(e)

	loading := GetOrCreateLoading(e)
	assert.False(t, loading.Loaded)
	assert.NoError(t, loading.Failed)
	assert.Equal(t, float32(1), loading.Alpha)
}
