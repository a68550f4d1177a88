package systems

import (
	"testing"

	"github.com/automoto/terra-firma/archetypes"
	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestClampAxis(t *testing.T) {
	for _, tc := range []struct {
		name                string
		v, lo, size, screen float64
		want                float64
	}{
		{"inside", 0, -500, 1000, 400, 0},
		{"past the low edge", -400, -500, 1000, 400, -300},
		{"past the high edge", 450, -500, 1000, 400, 300},
		{"map smaller than screen is centered", 80, -96, 192, 960, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, clampAxis(tc.v, tc.lo, tc.size, tc.screen), 1e-9)
		})
	}
}

func TestCapStep(t *testing.T) {
	assert.Equal(t, 2.0, capStep(5, 2))
	assert.Equal(t, -2.0, capStep(-5, 2))
	assert.Equal(t, 1.5, capStep(1.5, 2))
	assert.Equal(t, 9.0, capStep(9, 0))
}

func TestCameraCentersSmallMap(t *testing.T) {
	e := newField(t)
	spawnPlayer(e, math.Vec2{X: -64, Y: 32})
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{Position: math.Vec2{X: 40, Y: -20}})

	for i := 0; i < 600; i++ {
		UpdateCamera(e)
	}

	// the field is smaller than the window so the view rests on its center
	p := components.Camera.Get(camera).Position
	assert.InDelta(t, 0, p.X, 1e-3)
	assert.InDelta(t, 0, p.Y, 1e-3)
}

func TestCameraStepIsCapped(t *testing.T) {
	e := ecs.NewECS(newWorld())
	player := spawnPlayer(e, math.Vec2{X: 5000, Y: 0})
	components.Player.Get(player).Map = "Unloaded"
	camera := archetypes.Camera.Spawn(e)

	UpdateCamera(e)

	limit := cfg.Player.Speed * cfg.Camera.SpeedFactor / float64(cfg.C.TPS)
	assert.InDelta(t, limit, components.Camera.Get(camera).Position.X, 1e-9)
}
