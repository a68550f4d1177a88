package systems

import (
	"image"
	"testing"

	"github.com/automoto/terra-firma/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestTileRect(t *testing.T) {
	tm := &components.TilemapData{
		TileSize: math.Vec2{X: 16, Y: 16},
		Spacing:  math.Vec2{X: 1, Y: 1},
		Margin:   2,
		Columns:  2,
	}
	assert.Equal(t, image.Rect(2, 2, 18, 18), tileRect(tm, 0))
	assert.Equal(t, image.Rect(19, 2, 35, 18), tileRect(tm, 1))
	assert.Equal(t, image.Rect(2, 19, 18, 35), tileRect(tm, 2))
}

func TestApplyFlip(t *testing.T) {
	for _, tc := range []struct {
		name   string
		flip   components.TileFlip
		wx, wy float64
	}{
		{"none", components.TileFlip{}, 1, 2},
		{"horizontal", components.TileFlip{X: true}, -1, 2},
		{"vertical", components.TileFlip{Y: true}, 1, -2},
		{"diagonal swaps axes", components.TileFlip{D: true}, 2, 1},
		{"diagonal then horizontal", components.TileFlip{D: true, X: true}, -2, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var m ebiten.GeoM
			applyFlip(&m, tc.flip)
			x, y := m.Apply(1, 2)
			assert.InDelta(t, tc.wx, x, 1e-9)
			assert.InDelta(t, tc.wy, y, 1e-9)
		})
	}
}

func TestViewToScreen(t *testing.T) {
	v := view{camera: math.Vec2{X: 100, Y: 50}, width: 960, height: 540}

	x, y := v.toScreen(math.Vec2{X: 100, Y: 50})
	assert.Equal(t, 480.0, x)
	assert.Equal(t, 270.0, y)

	// world y grows upward
	_, y = v.toScreen(math.Vec2{X: 100, Y: 60})
	assert.Equal(t, 260.0, y)

	assert.True(t, v.visible(math.Vec2{X: 100, Y: 50}, math.Vec2{X: 8, Y: 8}))
	assert.False(t, v.visible(math.Vec2{X: 2000, Y: 50}, math.Vec2{X: 8, Y: 8}))
}
