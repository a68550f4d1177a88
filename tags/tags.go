package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Camera        = donburi.NewTag().SetName("Camera")
	TiledMap      = donburi.NewTag().SetName("TiledMap")
	TilemapLayer  = donburi.NewTag().SetName("TilemapLayer")
	Tile          = donburi.NewTag().SetName("Tile")
	TiledCollider = donburi.NewTag().SetName("TiledCollider")
)

// Resolv tags for physics collision
const (
	ResolvStatic    = "static"
	ResolvKinematic = "kinematic"
	ResolvDynamic   = "dynamic"
	ResolvPlayer    = "Player"
)
