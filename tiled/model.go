package tiled

import (
	"fmt"

	"github.com/automoto/terra-firma/components"
)

// Orientation is the projection a map was authored in
type Orientation int

const (
	OrientationOrthogonal Orientation = iota
	OrientationIsometric
	OrientationStaggered
	OrientationHexagonal
)

var orientationNames = map[string]Orientation{
	"orthogonal": OrientationOrthogonal,
	"isometric":  OrientationIsometric,
	"staggered":  OrientationStaggered,
	"hexagonal":  OrientationHexagonal,
}

// ParseOrientation reads the orientation attribute of a map document.
func ParseOrientation(s string) (Orientation, error) {
	if s == "" {
		return OrientationOrthogonal, nil
	}
	o, ok := orientationNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
	return o, nil
}

func (o Orientation) String() string {
	for name, v := range orientationNames {
		if v == o {
			return name
		}
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// MapType returns the grid layout a layer root uses for this orientation.
// Orientations only come from ParseOrientation, so any other value is a bug.
func (o Orientation) MapType() components.MapType {
	switch o {
	case OrientationOrthogonal:
		return components.MapTypeSquare
	case OrientationIsometric:
		return components.MapTypeIsoDiamond
	case OrientationStaggered:
		return components.MapTypeIsoStaggered
	case OrientationHexagonal:
		return components.MapTypeHexRow
	}
	panic(fmt.Sprintf("tiled: no map type for %v", o))
}

// Tileset is a tileset of a parsed map. Image is the asset path of the single
// source image, empty for image collection tilesets.
type Tileset struct {
	Index      int
	Name       string
	FirstGID   uint32
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	Columns    int
	TileCount  int
	Image      string
}

// IsCollection reports whether the tileset is made of per-tile images.
func (t *Tileset) IsCollection() bool {
	return t.Image == ""
}

// TileRef points at one tile of one tileset
type TileRef struct {
	Tileset int
	ID      uint32
	FlipH   bool
	FlipV   bool
	FlipD   bool
}

// Flip converts the flip bits for a tile component.
func (r *TileRef) Flip() components.TileFlip {
	return components.TileFlip{X: r.FlipH, Y: r.FlipV, D: r.FlipD}
}

// TileGrid holds the cells of a tile layer in document order: row-major with
// row 0 at the top. Nil cells are empty.
type TileGrid struct {
	Width  int
	Height int
	Finite bool
	Cells  []*TileRef
}

// At returns the cell at document coordinates, or nil when empty or out of bounds.
func (g *TileGrid) At(x, y int) *TileRef {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return nil
	}
	i := y*g.Width + x
	if i >= len(g.Cells) {
		return nil
	}
	return g.Cells[i]
}

// Occupied counts the non-empty cells.
func (g *TileGrid) Occupied() int {
	n := 0
	for _, c := range g.Cells {
		if c != nil {
			n++
		}
	}
	return n
}

// LayerKind is the kind of a document layer
type LayerKind int

const (
	TileLayer LayerKind = iota
	ObjectLayer
	ImageLayer
	GroupLayer
)

func (k LayerKind) String() string {
	switch k {
	case TileLayer:
		return "tile layer"
	case ObjectLayer:
		return "object layer"
	case ImageLayer:
		return "image layer"
	case GroupLayer:
		return "group layer"
	}
	return "unknown layer"
}

// Object is an object of an object layer. X and Y are in map pixels; tile
// objects are anchored at their bottom-left corner.
type Object struct {
	ID         uint32
	Name       string
	Class      string
	X, Y       float64
	Width      float64
	Height     float64
	Tile       *TileRef
	Properties Properties
}

// Layer is one top-level layer, in document order
type Layer struct {
	Index      int
	ID         uint32
	Name       string
	Kind       LayerKind
	OffsetX    float64
	OffsetY    float64
	Tiles      *TileGrid
	Objects    []Object
	Properties Properties
}

// MapModel is the parsed, immutable form of a map document
type MapModel struct {
	Width       int // tiles
	Height      int
	TileWidth   int // pixels
	TileHeight  int
	Orientation Orientation
	Infinite    bool
	Tilesets    []Tileset
	Layers      []Layer
	Properties  Properties
}

// PixelSize returns the map size in document pixels.
func (m *MapModel) PixelSize() (float64, float64) {
	return float64(m.Width * m.TileWidth), float64(m.Height * m.TileHeight)
}

// TexturePath is a texture reference of a parsed map
type TexturePath struct {
	Tileset int
	Path    string
}

// TexturePaths lists the single-image tilesets in ascending index order.
func (m *MapModel) TexturePaths() []TexturePath {
	var paths []TexturePath
	for _, ts := range m.Tilesets {
		if ts.IsCollection() {
			continue
		}
		paths = append(paths, TexturePath{Tileset: ts.Index, Path: ts.Image})
	}
	return paths
}
