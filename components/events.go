package components

import (
	"github.com/automoto/terra-firma/assets"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MapLoadingEvent is published when gameplay requests a map
type MapLoadingEvent struct {
	Name string
	Path string
}

// MapLoadedEvent is published the first time an instance's layers are built
type MapLoadedEvent struct {
	Name     string
	Instance donburi.Entity
}

// ResumeGameEvent is published by the pause menu
type ResumeGameEvent struct{}

// ExitGameplayEvent is published by the pause menu to return to the main menu
type ExitGameplayEvent struct{}

var (
	MapAssetEvents     = events.NewEventType[assets.Event]()
	TextureAssetEvents = events.NewEventType[assets.Event]()

	MapLoading   = events.NewEventType[MapLoadingEvent]()
	MapLoaded    = events.NewEventType[MapLoadedEvent]()
	ResumeGame   = events.NewEventType[ResumeGameEvent]()
	ExitGameplay = events.NewEventType[ExitGameplayEvent]()
)

// AssetQueueData collects asset events between ticks of the tilemap sync
type AssetQueueData struct {
	Maps     []assets.Event
	Textures []assets.Event
}

// Drain returns and clears the queued events.
func (q *AssetQueueData) Drain() (maps, textures []assets.Event) {
	maps, textures = q.Maps, q.Textures
	q.Maps, q.Textures = nil, nil
	return maps, textures
}

var AssetQueue = donburi.NewComponentType[AssetQueueData]()
