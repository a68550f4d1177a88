package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/systems"
	"github.com/automoto/terra-firma/systems/factory"
	"github.com/automoto/terra-firma/tiled"
	"github.com/automoto/terra-firma/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// GameplayScene walks the player around the main map
type GameplayScene struct {
	ecs          *ecs.ECS
	pauseUI      *ui.PauseUI
	sceneChanger SceneChanger
	session      *Session
	exit         bool
	once         sync.Once
}

func NewGameplayScene(sc SceneChanger, session *Session) *GameplayScene {
	return &GameplayScene{sceneChanger: sc, session: session}
}

func (gs *GameplayScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.IsPaused(gs.ecs) {
		gs.pauseUI.UI.Update()
	}

	if gs.exit {
		gs.teardown()
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.session))
	}
}

func (gs *GameplayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	if systems.IsPaused(gs.ecs) {
		gs.pauseUI.UI.Draw(screen)
	}
}

func (gs *GameplayScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	systems.SubscribeEvents(ecs)
	components.ExitGameplay.Subscribe(ecs.World, func(donburi.World, components.ExitGameplayEvent) {
		gs.exit = true
	})

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateAssets(gs.session.Stores()))
	ecs.AddSystem(systems.NewSyncTilemaps(gs.session.Lookup(), gs.session.Images))
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdateLoading)
	ecs.AddSystem(systems.ProcessEvents)

	ecs.AddRenderer(cfg.Default, systems.NewDrawWorld(gs.session.Images))
	ecs.AddRenderer(cfg.Overlay, systems.NewDrawInspector(gs.session.Stores()))
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLoading)

	gs.pauseUI = ui.NewPauseUI(
		func() { components.ResumeGame.Publish(ecs.World, components.ResumeGameEvent{}) },
		func() { components.ExitGameplay.Publish(ecs.World, components.ExitGameplayEvent{}) },
	)

	entry := gs.session.Registry.GetOrLoad(cfg.Map.MainName, cfg.Map.MainPath, gs.session.Maps)
	components.MapLoading.Publish(ecs.World, components.MapLoadingEvent{Name: entry.Name, Path: entry.Handle.Path})

	origin := math.Vec2{}
	factory.SpawnMap(ecs, entry, origin)
	factory.CreateCamera(ecs, origin)
	factory.CreatePlayer(ecs, gs.session.Textures, entry.Name, origin)

	// the map may already be loaded from an earlier visit
	if _, ok := gs.session.Maps.Get(entry.Handle.ID); ok {
		components.MapAssetEvents.Publish(ecs.World, assets.Event{
			Kind: assets.EventAdded,
			ID:   entry.Handle.ID,
			Path: entry.Handle.Path,
		})
	}

	gs.ecs = ecs
}

// teardown despawns the map so its collision space is released before the
// world is dropped.
func (gs *GameplayScene) teardown() {
	if inst, ok := systems.FindMapInstance(gs.ecs.World, cfg.Map.MainName); ok {
		tiled.DespawnInstance(gs.ecs.World, inst)
	}
}
