package tiled

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	gotiled "github.com/lafriks/go-tiled"
)

// Tiled stores flip flags in the high bits of a gid
const (
	gidFlipH  uint32 = 0x80000000
	gidFlipV  uint32 = 0x40000000
	gidFlipD  uint32 = 0x20000000
	gidRotHex uint32 = 0x10000000
	gidMask          = ^(gidFlipH | gidFlipV | gidFlipD | gidRotHex)
)

// Parse decodes a TMX document. mapPath locates the document inside fsys and
// is used to resolve tileset image paths and external tilesets; fsys may be nil
// when the map only embeds its tilesets.
//
// Rows stay in document order (row 0 at the top).
func Parse(mapPath string, data []byte, fsys fs.FS) (*MapModel, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, malformed(mapPath, err)
	}
	if doc.name() != "map" {
		return nil, malformed(mapPath, fmt.Errorf("root element is <%s>, want <map>", doc.name()))
	}

	infinite := doc.stringAttr("infinite") == "1"
	src := data
	if infinite {
		// go-tiled cannot decode chunked layer data
		if src, err = stripElements(data, "layer"); err != nil {
			return nil, malformed(mapPath, err)
		}
	}

	var opts []gotiled.LoaderOption
	if fsys != nil {
		opts = append(opts, gotiled.WithFileSystem(fsys))
	}
	tm, err := gotiled.LoadReader(path.Dir(mapPath), bytes.NewReader(src), opts...)
	if err != nil {
		if errors.Is(err, gotiled.ErrInvalidTileGID) || errors.Is(err, fs.ErrNotExist) {
			return nil, unresolved(mapPath, err)
		}
		return nil, malformed(mapPath, err)
	}

	orientation, err := ParseOrientation(tm.Orientation)
	if err != nil {
		return nil, malformed(mapPath, err)
	}

	p := &parser{
		path:    mapPath,
		tm:      tm,
		indices: make(map[*gotiled.Tileset]int, len(tm.Tilesets)),
	}
	m := &MapModel{
		Width:       tm.Width,
		Height:      tm.Height,
		TileWidth:   tm.TileWidth,
		TileHeight:  tm.TileHeight,
		Orientation: orientation,
		Infinite:    infinite,
		Properties:  doc.properties(),
	}
	tsNodes := doc.children("tileset")
	for i, ts := range tm.Tilesets {
		p.indices[ts] = i
		source := ts.Source
		if i < len(tsNodes) {
			source = tsNodes[i].stringAttr("source")
		}
		m.Tilesets = append(m.Tilesets, convertTileset(mapPath, source, i, ts))
	}
	p.model = m

	for i := range doc.Nodes {
		if err := p.layer(&doc.Nodes[i]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

type parser struct {
	path    string
	tm      *gotiled.Map
	indices map[*gotiled.Tileset]int
	model   *MapModel

	tileLayers int
}

func convertTileset(mapPath, source string, index int, ts *gotiled.Tileset) Tileset {
	t := Tileset{
		Index:      index,
		Name:       ts.Name,
		FirstGID:   ts.FirstGID,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Spacing:    ts.Spacing,
		Margin:     ts.Margin,
		Columns:    ts.Columns,
		TileCount:  ts.TileCount,
	}
	if ts.Image != nil && ts.Image.Source != "" {
		base := path.Dir(mapPath)
		if source != "" {
			// External tilesets resolve images next to the .tsx file
			base = path.Join(base, path.Dir(source))
		}
		t.Image = path.Join(base, ts.Image.Source)
	}
	return t
}

func (p *parser) layer(n *node) error {
	m := p.model
	l := Layer{
		Index:      len(m.Layers),
		Name:       n.stringAttr("name"),
		OffsetX:    n.floatAttr("offsetx"),
		OffsetY:    n.floatAttr("offsety"),
		Properties: n.properties(),
	}
	l.ID, _ = n.uintAttr("id")

	switch n.name() {
	case "layer":
		l.Kind = TileLayer
		grid, err := p.tileGrid(n)
		if err != nil {
			return err
		}
		l.Tiles = grid
	case "objectgroup":
		l.Kind = ObjectLayer
		for _, o := range n.children("object") {
			obj, err := p.object(o)
			if err != nil {
				return err
			}
			l.Objects = append(l.Objects, obj)
		}
	case "imagelayer":
		l.Kind = ImageLayer
	case "group":
		l.Kind = GroupLayer
	default:
		// tileset, properties, editorsettings
		return nil
	}
	m.Layers = append(m.Layers, l)
	return nil
}

func (p *parser) tileGrid(n *node) (*TileGrid, error) {
	m := p.model
	if m.Infinite {
		// chunks are not decoded
		return &TileGrid{Width: m.Width, Height: m.Height}, nil
	}

	idx := p.tileLayers
	p.tileLayers++
	if idx >= len(p.tm.Layers) {
		return nil, malformed(p.path, fmt.Errorf("tile layer %q was not decoded", n.stringAttr("name")))
	}
	src := p.tm.Layers[idx]

	grid := &TileGrid{Width: m.Width, Height: m.Height, Finite: true}
	if w := n.intAttr("width"); w > 0 {
		grid.Width = w
	}
	if h := n.intAttr("height"); h > 0 {
		grid.Height = h
	}

	grid.Cells = make([]*TileRef, grid.Width*grid.Height)
	for i, lt := range src.Tiles {
		if i >= len(grid.Cells) {
			break
		}
		if lt == nil || lt.IsNil() {
			continue
		}
		ts, ok := p.indices[lt.Tileset]
		if !ok {
			return nil, unresolved(p.path, fmt.Errorf("layer %q cell %d names no tileset", src.Name, i))
		}
		if err := p.checkLocalID(ts, lt.ID); err != nil {
			return nil, err
		}
		grid.Cells[i] = &TileRef{
			Tileset: ts,
			ID:      lt.ID,
			FlipH:   lt.HorizontalFlip,
			FlipV:   lt.VerticalFlip,
			FlipD:   lt.DiagonalFlip,
		}
	}
	return grid, nil
}

func (p *parser) object(n *node) (Object, error) {
	obj := Object{
		Name:       n.stringAttr("name"),
		Class:      n.stringAttr("class"),
		X:          n.floatAttr("x"),
		Y:          n.floatAttr("y"),
		Width:      n.floatAttr("width"),
		Height:     n.floatAttr("height"),
		Properties: n.properties(),
	}
	if obj.Class == "" {
		// Tiled < 1.9 calls it type
		obj.Class = n.stringAttr("type")
	}
	obj.ID, _ = n.uintAttr("id")

	raw, ok := n.attr("gid")
	if !ok {
		return obj, nil
	}
	gid, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return obj, malformed(p.path, fmt.Errorf("object %d gid %q: %w", obj.ID, raw, err))
	}
	ref, err := p.resolveGID(uint32(gid))
	if err != nil {
		return obj, err
	}
	obj.Tile = ref
	return obj, nil
}

// resolveGID splits a gid into tileset, local id and flip flags.
func (p *parser) resolveGID(gid uint32) (*TileRef, error) {
	bare := gid & gidMask
	if bare == 0 {
		return nil, nil
	}
	tilesets := p.model.Tilesets
	for i := len(tilesets) - 1; i >= 0; i-- {
		if tilesets[i].FirstGID > bare {
			continue
		}
		id := bare - tilesets[i].FirstGID
		if err := p.checkLocalID(i, id); err != nil {
			return nil, err
		}
		return &TileRef{
			Tileset: i,
			ID:      id,
			FlipH:   gid&gidFlipH != 0,
			FlipV:   gid&gidFlipV != 0,
			FlipD:   gid&gidFlipD != 0,
		}, nil
	}
	return nil, unresolved(p.path, fmt.Errorf("gid %d precedes every tileset", bare))
}

func (p *parser) checkLocalID(tileset int, id uint32) error {
	ts := p.model.Tilesets[tileset]
	if ts.TileCount > 0 && int(id) >= ts.TileCount {
		return unresolved(p.path, fmt.Errorf("tile %d is outside tileset %q (%d tiles)", id, ts.Name, ts.TileCount))
	}
	return nil
}
