package factory

import (
	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/assets"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SheetLoader issues deferred sprite sheet loads
type SheetLoader interface {
	Load(path string) assets.Handle
}

// CreatePlayer spawns the player on mapName. Its body joins the map's
// collision space once the map is built.
func CreatePlayer(ecs *ecs.ECS, sheets SheetLoader, mapName string, at math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player

	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Facing: 1,
		Map:    mapName,
		Object: obj,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: at,
		Z:        cfg.Player.Z,
		Scale:    cfg.Player.Scale,
	})

	sheet := sheets.Load(cfg.Player.SpriteSheet)
	components.Animation.Set(player, GenerateAnimations("player", sheet, cfg.Player.FrameWidth, cfg.Player.FrameHeight, cfg.Player.Columns))

	return player
}
