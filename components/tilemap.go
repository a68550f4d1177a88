package components

import (
	"github.com/automoto/terra-firma/assets"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MapType selects how a layer root lays out its grid
type MapType int

const (
	MapTypeSquare MapType = iota
	MapTypeHexRow
	MapTypeIsoDiamond
	MapTypeIsoStaggered
)

func (t MapType) String() string {
	switch t {
	case MapTypeSquare:
		return "Square"
	case MapTypeHexRow:
		return "HexRow"
	case MapTypeIsoDiamond:
		return "IsoDiamond"
	case MapTypeIsoStaggered:
		return "IsoStaggered"
	}
	return "Unknown"
}

// TilePos is a cell in engine space: row 0 is the bottom row.
type TilePos struct {
	X, Y int
}

// TileFlip carries Tiled's flip bits through unchanged
type TileFlip struct {
	X, Y, D bool
}

// LayerKey indexes a layer root. A document layer fans out into one root per
// tileset it draws from.
type LayerKey struct {
	Layer   int
	Tileset int
}

// MapInstanceData is one spawned occurrence of a loaded map
type MapInstanceData struct {
	Name   string
	Handle assets.Handle
	Chunk  TilePos // render culling granularity in tiles
	Layers map[LayerKey]donburi.Entity
	Built  bool // set once the first batch has been synthesized
}

// LayerRoots returns every root recorded for a document layer.
func (m *MapInstanceData) LayerRoots(layer int) []donburi.Entity {
	var roots []donburi.Entity
	for k, e := range m.Layers {
		if k.Layer == layer {
			roots = append(roots, e)
		}
	}
	return roots
}

// TilemapData describes a layer root
type TilemapData struct {
	Instance   donburi.Entity
	LayerIndex int
	LayerID    uint32
	LayerName  string
	Tileset    int
	Texture    assets.Handle

	GridSize math.Vec2 // map cell size in pixels
	TileSize math.Vec2 // tileset tile size in pixels
	Spacing  math.Vec2
	Margin   int
	Columns  int
	Size     TilePos // map size in tiles
	MapType  MapType
}

// TileData is a single rendered cell or tile object
type TileData struct {
	Pos          TilePos
	Layer        uint32 // owning layer id
	Tilemap      donburi.Entity
	TextureIndex uint32
	Flip         TileFlip
}

// TileStorageData indexes the tiles of a layer root by position. Every entity is
// also kept in spawn order so objects sharing a cell are never lost on teardown.
type TileStorageData struct {
	Size  TilePos
	cells map[TilePos]donburi.Entity
	all   []donburi.Entity
}

func NewTileStorage(size TilePos) *TileStorageData {
	return &TileStorageData{Size: size, cells: make(map[TilePos]donburi.Entity)}
}

func (s *TileStorageData) Set(pos TilePos, e donburi.Entity) {
	if s.cells == nil {
		s.cells = make(map[TilePos]donburi.Entity)
	}
	s.cells[pos] = e
	s.all = append(s.all, e)
}

func (s *TileStorageData) Get(pos TilePos) (donburi.Entity, bool) {
	e, ok := s.cells[pos]
	return e, ok
}

// Entities returns every tile spawned under the root.
func (s *TileStorageData) Entities() []donburi.Entity {
	return s.all
}

func (s *TileStorageData) Len() int {
	return len(s.all)
}

var (
	MapInstance = donburi.NewComponentType[MapInstanceData]()
	Tilemap     = donburi.NewComponentType[TilemapData]()
	Tile        = donburi.NewComponentType[TileData]()
	TileStorage = donburi.NewComponentType[TileStorageData]()
)
