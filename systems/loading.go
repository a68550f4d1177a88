package systems

import (
	"image/color"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLoading advances the fade that reveals a freshly built map.
func UpdateLoading(ecs *ecs.ECS) {
	loading := GetOrCreateLoading(ecs)
	if loading.Fade == nil {
		return
	}
	alpha, done := loading.Fade.Update(1 / float32(cfg.C.TPS))
	loading.Alpha = alpha
	if done {
		loading.Fade = nil
		loading.Alpha = 0
	}
}

// DrawLoading covers the screen until the map is built, then fades out.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Loading.First(ecs.World)
	if !ok {
		return
	}
	loading := components.Loading.Get(entry)
	if loading.Alpha <= 0 {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, color.RGBA{A: uint8(255 * loading.Alpha)}, false)

	if loading.Loaded {
		return
	}
	face := fonts.Regular.Get()
	msg := cfg.UI.LoadingText
	bounds := text.BoundString(face, msg)
	x := (int(width) - bounds.Dx()) / 2
	y := int(height) / 2
	text.Draw(screen, msg, face, x, y, cfg.UI.HUDTextColor)
}

// GetOrCreateLoading returns the singleton Loading component, creating if needed.
func GetOrCreateLoading(ecs *ecs.ECS) *components.LoadingData {
	entry, ok := components.Loading.First(ecs.World)
	if !ok {
		entry = archetypes.Loading.Spawn(ecs)
	}
	return components.Loading.Get(entry)
}
