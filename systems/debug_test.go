package systems

import (
	"testing"

	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestInspectorReport(t *testing.T) {
	e := newField(t)
	spawnPlayer(e, math.Vec2{X: -64, Y: 0})

	lines := InspectorReport(e.World, AssetStores{})

	require.Len(t, lines, 3)
	assert.Equal(t, "maps 1  layers 2  tiles 20  colliders 2", lines[0])
	assert.Equal(t, "Field [maps/field.tmx] built=true roots=2", lines[1])
	assert.Equal(t, "player -64.0, 0.0", lines[2])
}

func TestColliderColor(t *testing.T) {
	player := resolv.NewObject(0, 0, 1, 1, tags.ResolvPlayer)
	crate := resolv.NewObject(0, 0, 1, 1, tags.ResolvDynamic)
	wall := resolv.NewObject(0, 0, 1, 1, tags.ResolvStatic)

	assert.Equal(t, colliderColorFor("Player"), colliderColor(player))
	assert.Equal(t, colliderColorFor(components.RigidBodyDynamic.String()), colliderColor(crate))
	assert.Equal(t, colliderColorFor(components.RigidBodyStatic.String()), colliderColor(wall))
}

func TestInspectorStartsFromFlag(t *testing.T) {
	e := newField(t)
	assert.False(t, GetOrCreateInspector(e).Visible)
}

func colliderColorFor(key string) any {
	return cfg.UI.DebugColliderColor[key]
}
