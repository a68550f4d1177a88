package tiled

import (
	gomath "math"

	"github.com/automoto/terra-firma/components"
	"github.com/yohamta/donburi/features/math"
)

// Map documents put row 0 at the top and grow y downwards. The world puts row 0
// at the bottom and grows y upwards, with every layer root centered on its
// transform.

// EngineRow maps a document row to an engine row. It is its own inverse.
func EngineRow(row, height int) int {
	return height - 1 - row
}

// ObjectCell returns the engine cell an object occupies. Tile objects are
// anchored at their bottom-left corner, other objects at their top-left.
// Positions outside the map clamp to the border cells.
func ObjectCell(obj *Object, m *MapModel) components.TilePos {
	if m.TileWidth <= 0 || m.TileHeight <= 0 || m.Width <= 0 || m.Height <= 0 {
		return components.TilePos{}
	}
	col := int(gomath.Floor(obj.X / float64(m.TileWidth)))
	row := int(gomath.Floor(obj.Y / float64(m.TileHeight)))
	if obj.Tile != nil {
		row = int(gomath.Ceil(obj.Y/float64(m.TileHeight))) - 1
	}
	col = clamp(col, 0, m.Width-1)
	row = clamp(row, 0, m.Height-1)
	return components.TilePos{X: col, Y: EngineRow(row, m.Height)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TileLocalCenter returns the center of an engine cell relative to the
// layer's first cell, before centering and scaling.
func TileLocalCenter(t components.MapType, pos components.TilePos, grid math.Vec2) math.Vec2 {
	x, y := float64(pos.X), float64(pos.Y)
	switch t {
	case components.MapTypeIsoDiamond:
		return math.Vec2{X: (x - y) * grid.X / 2, Y: (x + y) * grid.Y / 2}
	case components.MapTypeIsoStaggered:
		return math.Vec2{X: x*grid.X + stagger(pos.Y)*grid.X/2, Y: y * grid.Y / 2}
	case components.MapTypeHexRow:
		return math.Vec2{X: x*grid.X + stagger(pos.Y)*grid.X/2, Y: y * grid.Y * 0.75}
	}
	return math.Vec2{X: (x + 0.5) * grid.X, Y: (y + 0.5) * grid.Y}
}

func stagger(row int) float64 {
	if row%2 != 0 {
		return 1
	}
	return 0
}

// LayerCenter is the local point a layer root's transform sits on: halfway
// between its first and last cell.
func LayerCenter(t components.MapType, size components.TilePos, grid math.Vec2) math.Vec2 {
	first := TileLocalCenter(t, components.TilePos{}, grid)
	last := TileLocalCenter(t, components.TilePos{X: size.X - 1, Y: size.Y - 1}, grid)
	return math.Vec2{X: (first.X + last.X) / 2, Y: (first.Y + last.Y) / 2}
}

// TileWorldCenter returns the world position of a tile's center.
func TileWorldCenter(tm *components.TilemapData, tr *components.TransformData, pos components.TilePos) math.Vec2 {
	local := TileLocalCenter(tm.MapType, pos, tm.GridSize)
	center := LayerCenter(tm.MapType, tm.Size, tm.GridSize)
	return math.Vec2{
		X: tr.Position.X + (local.X-center.X)*tr.Scale,
		Y: tr.Position.Y + (local.Y-center.Y)*tr.Scale,
	}
}

// HalfExtent returns half the world size of a map drawn at scale.
func HalfExtent(m *MapModel, scale float64) math.Vec2 {
	w, h := m.PixelSize()
	return math.Vec2{X: w * scale / 2, Y: h * scale / 2}
}

// ObjectWorldCenter returns the world position of the center of an object on
// a layer whose root sits at root. Tile objects without a size take the size
// of their tileset's tiles.
func ObjectWorldCenter(obj *Object, m *MapModel, size Hitbox, root math.Vec2, scale float64) math.Vec2 {
	w, h := obj.Width, obj.Height
	if w == 0 {
		w = size.Width
	}
	if h == 0 {
		h = size.Height
	}
	cx, cy := obj.X+w/2, obj.Y+h/2
	if obj.Tile != nil {
		cy = obj.Y - h/2
	}
	mw, mh := m.PixelSize()
	return math.Vec2{
		X: root.X + (cx-mw/2)*scale,
		Y: root.Y + (mh/2-cy)*scale,
	}
}
