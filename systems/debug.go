package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/fonts"
	"github.com/automoto/terra-firma/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// GetOrCreateInspector returns the singleton Inspector component. A new one
// starts visible when the -inspector flag was given.
func GetOrCreateInspector(ecs *ecs.ECS) *components.InspectorData {
	entry, ok := components.Inspector.First(ecs.World)
	if !ok {
		entry = archetypes.Inspector.Spawn(ecs)
		components.Inspector.SetValue(entry, components.InspectorData{Visible: cfg.Debug.Inspector})
	}
	return components.Inspector.Get(entry)
}

type eacher interface {
	Each(w donburi.World, f func(*donburi.Entry))
}

func count(w donburi.World, c eacher) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// InspectorReport summarizes the world for the overlay.
func InspectorReport(w donburi.World, stores AssetStores) []string {
	lines := []string{
		fmt.Sprintf("maps %d  layers %d  tiles %d  colliders %d",
			count(w, tags.TiledMap), count(w, tags.TilemapLayer), count(w, tags.Tile), count(w, tags.TiledCollider)),
	}
	if stores.Maps != nil {
		p, r, f := stores.Maps.Stats()
		lines = append(lines, fmt.Sprintf("map assets: %d pending  %d ready  %d failed", p, r, f))
	}
	if stores.Textures != nil {
		p, r, f := stores.Textures.Stats()
		lines = append(lines, fmt.Sprintf("textures: %d pending  %d ready  %d failed", p, r, f))
	}
	components.MapInstance.Each(w, func(entry *donburi.Entry) {
		inst := components.MapInstance.Get(entry)
		line := fmt.Sprintf("%s [%s] built=%t roots=%d", inst.Name, inst.Handle.Path, inst.Built, len(inst.Layers))
		if stores.Maps != nil {
			line += " " + stores.Maps.State(inst.Handle.ID).String()
			if err := stores.Maps.Err(inst.Handle.ID); err != nil {
				line += ": " + err.Error()
			}
		}
		lines = append(lines, line)
	})
	if entry, ok := tags.Player.First(w); ok {
		p := components.Transform.Get(entry).Position
		lines = append(lines, fmt.Sprintf("player %.1f, %.1f", p.X, p.Y))
	}
	return lines
}

// NewDrawInspector returns the world inspector overlay.
func NewDrawInspector(stores AssetStores) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateInspector(e).Visible {
			return
		}
		DrawColliders(e, screen)

		lines := InspectorReport(e.World, stores)
		face := fonts.Mono.Get()
		lineHeight := face.Metrics().Height.Ceil()
		width := 0
		for _, l := range lines {
			width = max(width, text.BoundString(face, l).Dx())
		}
		vector.FillRect(screen, 4, 4, float32(width+12), float32(lineHeight*len(lines)+8), cfg.UI.HUDTextBgColor, false)
		text.Draw(screen, strings.Join(lines, "\n"), face, 10, 8+face.Metrics().Ascent.Ceil(), cfg.UI.HUDTextColor)
	}
}

// DrawColliders outlines every body in the player's collision space.
func DrawColliders(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	inst, ok := FindMapInstance(e.World, components.Player.Get(playerEntry).Map)
	if !ok || !inst.HasComponent(components.Space) {
		return
	}
	space := components.Space.Get(inst)
	if space.Space == nil {
		return
	}

	v := view{
		camera: components.Camera.Get(cameraEntry).Position,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}
	for _, obj := range space.Objects() {
		// space top-left to screen
		x, y := v.toScreen(space.ToWorld(math.Vec2{X: obj.X, Y: obj.Y}))
		if x+obj.W < 0 || x > v.width || y+obj.H < 0 || y > v.height {
			continue
		}
		c := colliderColor(obj)

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}

func colliderColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.UI.DebugColliderColor["Player"]
	case obj.HasTags(tags.ResolvDynamic):
		return cfg.UI.DebugColliderColor[components.RigidBodyDynamic.String()]
	case obj.HasTags(tags.ResolvKinematic):
		return cfg.UI.DebugColliderColor[components.RigidBodyKinematic.String()]
	}
	return cfg.UI.DebugColliderColor[components.RigidBodyStatic.String()]
}
