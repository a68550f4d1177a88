package systems

import (
	"image"

	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tiled"
	"github.com/yohamta/donburi/ecs"
)

// AssetStores are the deferred stores the gameplay screen polls each tick
type AssetStores struct {
	Maps      *assets.Store[*tiled.LoadedMap]
	Textures  *assets.Store[image.Image]
	HotReload bool
}

// NewUpdateAssets returns a system that drains finished loads and publishes
// their events. Maps are polled before textures so a map and the textures it
// requested can complete in the same tick.
func NewUpdateAssets(stores AssetStores) ecs.System {
	ticks := 0
	return func(e *ecs.ECS) {
		if stores.HotReload && cfg.Map.ReloadInterval > 0 {
			ticks++
			if ticks >= cfg.Map.ReloadInterval {
				ticks = 0
				stores.Maps.CheckModified()
				stores.Textures.CheckModified()
			}
		}

		for _, ev := range stores.Maps.Poll() {
			components.MapAssetEvents.Publish(e.World, ev)
		}
		for _, ev := range stores.Textures.Poll() {
			components.TextureAssetEvents.Publish(e.World, ev)
		}
	}
}
