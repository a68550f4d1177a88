package systems

import (
	gomath "math"
	"testing"

	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestMoveDirectionNormalizesDiagonals(t *testing.T) {
	e := ecs.NewECS(newWorld())

	hold(e, cfg.ActionMoveRight, cfg.ActionMoveUp)
	dir := moveDirection(e)
	assert.InDelta(t, 1/gomath.Sqrt2, dir.X, 1e-9)
	assert.InDelta(t, 1/gomath.Sqrt2, dir.Y, 1e-9)

	hold(e, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	assert.Equal(t, math.Vec2{}, moveDirection(e))

	hold(e, cfg.ActionMoveDown)
	assert.Equal(t, math.Vec2{X: 0, Y: -1}, moveDirection(e))
}

func TestPlayerJoinsMapSpace(t *testing.T) {
	e := newField(t)
	player := spawnPlayer(e, math.Vec2{X: -64, Y: 0})

	hold(e)
	UpdatePlayer(e)

	data := components.Player.Get(player)
	inst, _ := FindMapInstance(e.World, fieldName)
	assert.Same(t, components.Space.Get(inst).Space, data.Space())
	// space is y-down with its top-left at (-96, 48)
	assert.InDelta(t, 16, data.Object.X, 1e-9)
	assert.InDelta(t, 32, data.Object.Y, 1e-9)
	assert.Equal(t, math.Vec2{X: -64, Y: 0}, components.Transform.Get(player).Position)
}

func TestPlayerMovesAtConfiguredSpeed(t *testing.T) {
	e := newField(t)
	// top row is free of colliders
	player := spawnPlayer(e, math.Vec2{X: -64, Y: 32})

	hold(e, cfg.ActionMoveRight)
	UpdatePlayer(e)

	step := cfg.Player.Speed / float64(cfg.C.TPS)
	p := components.Transform.Get(player).Position
	assert.InDelta(t, -64+step, p.X, 1e-9)
	assert.InDelta(t, 32, p.Y, 1e-9)
	assert.Equal(t, 1.0, components.Player.Get(player).Facing)

	hold(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)
	assert.Equal(t, -1.0, components.Player.Get(player).Facing)
}

func TestPlayerStaysInsideMap(t *testing.T) {
	e := newField(t)
	player := spawnPlayer(e, math.Vec2{X: -64, Y: 32})

	for i := 0; i < 120; i++ {
		hold(e, cfg.ActionMoveLeft, cfg.ActionMoveUp)
		UpdatePlayer(e)
	}

	// the 32px body stops against the top-left corner of the 192x96 field
	p := components.Transform.Get(player).Position
	assert.InDelta(t, -96+16, p.X, 1e-6)
	assert.InDelta(t, 48-16, p.Y, 1e-6)
}

func TestPlayerPushesCrateIntoWall(t *testing.T) {
	e := newField(t)
	player := spawnPlayer(e, math.Vec2{X: -64, Y: 0})
	crate := fieldCrate(t, e)
	startX := crate.X

	for i := 0; i < 120; i++ {
		hold(e, cfg.ActionMoveRight)
		UpdatePlayer(e)
		UpdatePhysics(e)

		body := components.Player.Get(player).Object
		require.LessOrEqual(t, body.X+body.W, crate.X+1e-6, "player overlaps the crate on tick %d", i)
		require.LessOrEqual(t, crate.X+crate.W, 160+1e-6, "crate overlaps the wall on tick %d", i)
	}

	assert.Greater(t, crate.X, startX)
	assert.InDelta(t, 128, crate.X, 1e-6)
}

func TestPlayerWithoutMapIsBoundByWindow(t *testing.T) {
	e := ecs.NewECS(newWorld())
	player := spawnPlayer(e, math.Vec2{})
	components.Player.Get(player).Map = "Unloaded"

	for i := 0; i < 400; i++ {
		hold(e, cfg.ActionMoveRight)
		UpdatePlayer(e)
	}

	assert.InDelta(t, float64(cfg.C.Width)/2, components.Transform.Get(player).Position.X, 1e-9)
	assert.Nil(t, components.Player.Get(player).Space())
}
