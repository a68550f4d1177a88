package systems

import (
	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and animates the overlay.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)

	// no pausing behind the loading cover
	if entry, ok := components.Loading.First(ecs.World); ok && !components.Loading.Get(entry).Loaded {
		return
	}

	if GetAction(ecs, cfg.ActionPause).JustPressed {
		setPaused(pause, !pause.IsPaused())
	}

	if pause.Fade != nil {
		alpha, done := pause.Fade.Update(1 / float32(cfg.C.TPS))
		pause.Alpha = alpha
		if done {
			pause.Fade = nil
		}
	}
}

func setPaused(pause *components.PauseData, paused bool) {
	if pause.IsPaused() == paused {
		return
	}
	target := float32(0)
	pause.State = components.GameRunning
	if paused {
		target = 1
		pause.State = components.GamePaused
	}
	pause.Fade = gween.New(pause.Alpha, target, cfg.Pause.FadeDuration, ease.OutQuad)
}

// DrawPause renders the pause overlay. The menu itself is drawn by the scene.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return
	}
	pause := components.Pause.Get(entry)
	if pause.Alpha <= 0 {
		return
	}

	overlay := cfg.Pause.OverlayColor
	overlay.A = uint8(float32(overlay.A) * pause.Alpha)
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		overlay,
		false,
	)
}

// WithPauseCheck wraps a system so it only runs while the game is not paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused()
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = archetypes.Pause.Spawn(ecs)
	}
	return components.Pause.Get(entry)
}
