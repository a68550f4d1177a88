package tiled

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <properties>
  <property name="music" value="overworld"/>
 </properties>
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" spacing="1" margin="2" tilecount="4" columns="2">
  <image source="../../tileset/terrain.png" width="35" height="35"/>
 </tileset>
 <tileset firstgid="5" name="props" tilewidth="16" tileheight="16" tilecount="1" columns="0">
  <tile id="0">
   <image source="../../tileset/barrel.png" width="16" height="16"/>
  </tile>
 </tileset>
 <objectgroup id="3" name="Colliders">
  <object id="7" name="crate" type="box" gid="2" x="16" y="32" width="16" height="16">
   <properties>
    <property name="collider_type" value="Dynamic"/>
    <property name="hitbox" type="class" propertytype="Hitbox">
     <properties>
      <property name="width" type="float" value="12"/>
      <property name="height" type="float" value="10"/>
     </properties>
    </property>
   </properties>
  </object>
  <object id="8" name="spawn" x="4" y="4"/>
 </objectgroup>
 <layer id="1" name="Ground" width="3" height="2" offsetx="8" offsety="-4">
  <data encoding="csv">
1,2,0,
3,2147483652,5
</data>
 </layer>
 <imagelayer id="4" name="Sky"/>
</map>
`

func TestParseKeepsDocumentLayerOrder(t *testing.T) {
	m, err := Parse("maps/map_00/main.tmx", []byte(sampleMap), nil)
	require.NoError(t, err)

	require.Len(t, m.Layers, 3)
	assert.Equal(t, ObjectLayer, m.Layers[0].Kind)
	assert.Equal(t, "Colliders", m.Layers[0].Name)
	assert.Equal(t, TileLayer, m.Layers[1].Kind)
	assert.Equal(t, "Ground", m.Layers[1].Name)
	assert.Equal(t, ImageLayer, m.Layers[2].Kind)
	for i, l := range m.Layers {
		assert.Equal(t, i, l.Index)
	}
}

func TestParseMapAttributes(t *testing.T) {
	m, err := Parse("maps/map_00/main.tmx", []byte(sampleMap), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 16, m.TileWidth)
	assert.Equal(t, OrientationOrthogonal, m.Orientation)
	assert.False(t, m.Infinite)
	music, ok := m.Properties.GetString("music")
	assert.True(t, ok)
	assert.Equal(t, "overworld", music)

	w, h := m.PixelSize()
	assert.Equal(t, 48.0, w)
	assert.Equal(t, 32.0, h)
}

func TestParseTilesets(t *testing.T) {
	m, err := Parse("maps/map_00/main.tmx", []byte(sampleMap), nil)
	require.NoError(t, err)

	require.Len(t, m.Tilesets, 2)
	terrain := m.Tilesets[0]
	assert.Equal(t, "terrain", terrain.Name)
	assert.Equal(t, uint32(1), terrain.FirstGID)
	assert.Equal(t, 1, terrain.Spacing)
	assert.Equal(t, 2, terrain.Margin)
	assert.Equal(t, 2, terrain.Columns)
	assert.Equal(t, "tileset/terrain.png", terrain.Image)
	assert.False(t, terrain.IsCollection())

	props := m.Tilesets[1]
	assert.Equal(t, 1, props.Index)
	assert.True(t, props.IsCollection())

	assert.Equal(t, []TexturePath{{Tileset: 0, Path: "tileset/terrain.png"}}, m.TexturePaths())
}

func TestParseTileGrid(t *testing.T) {
	m, err := Parse("maps/map_00/main.tmx", []byte(sampleMap), nil)
	require.NoError(t, err)

	grid := m.Layers[1].Tiles
	require.NotNil(t, grid)
	assert.True(t, grid.Finite)
	assert.Equal(t, 3, grid.Width)
	assert.Equal(t, 2, grid.Height)
	assert.Equal(t, 5, grid.Occupied())

	// row 0 is the top row of the document
	first := grid.At(0, 0)
	require.NotNil(t, first)
	assert.Equal(t, TileRef{Tileset: 0, ID: 0}, *first)
	assert.Nil(t, grid.At(2, 0))

	flipped := grid.At(1, 1)
	require.NotNil(t, flipped)
	assert.Equal(t, uint32(3), flipped.ID)
	assert.True(t, flipped.FlipH)
	assert.False(t, flipped.FlipV)

	collection := grid.At(2, 1)
	require.NotNil(t, collection)
	assert.Equal(t, 1, collection.Tileset)
	assert.Equal(t, uint32(0), collection.ID)

	assert.Nil(t, grid.At(-1, 0))
	assert.Nil(t, grid.At(3, 0))

	assert.InDelta(t, 8.0, m.Layers[1].OffsetX, 1e-9)
	assert.InDelta(t, -4.0, m.Layers[1].OffsetY, 1e-9)
}

func TestParseObjects(t *testing.T) {
	m, err := Parse("maps/map_00/main.tmx", []byte(sampleMap), nil)
	require.NoError(t, err)

	objects := m.Layers[0].Objects
	require.Len(t, objects, 2)

	crate := objects[0]
	assert.Equal(t, uint32(7), crate.ID)
	assert.Equal(t, "crate", crate.Name)
	assert.Equal(t, "box", crate.Class)
	assert.Equal(t, 16.0, crate.X)
	assert.Equal(t, 32.0, crate.Y)
	require.NotNil(t, crate.Tile)
	assert.Equal(t, 0, crate.Tile.Tileset)
	assert.Equal(t, uint32(1), crate.Tile.ID)

	kind, ok := crate.Properties.GetString(PropColliderType)
	assert.True(t, ok)
	assert.Equal(t, "Dynamic", kind)
	hitbox, ok := crate.Properties.GetClass(PropHitbox)
	require.True(t, ok)
	w, _ := hitbox.GetFloat(PropWidth)
	h, _ := hitbox.GetFloat(PropHeight)
	assert.Equal(t, 12.0, w)
	assert.Equal(t, 10.0, h)

	assert.Nil(t, objects[1].Tile)
}

func TestParseObjectFlipBits(t *testing.T) {
	doc := `<map orientation="orthogonal" width="1" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="1" name="t" tilewidth="8" tileheight="8" tilecount="2" columns="2">
  <image source="t.png" width="16" height="8"/>
 </tileset>
 <objectgroup id="1" name="o">
  <object id="1" gid="3221225474" x="0" y="8"/>
 </objectgroup>
</map>`
	m, err := Parse("t.tmx", []byte(doc), nil)
	require.NoError(t, err)

	ref := m.Layers[0].Objects[0].Tile
	require.NotNil(t, ref)
	assert.Equal(t, uint32(1), ref.ID)
	assert.True(t, ref.FlipH)
	assert.True(t, ref.FlipV)
	assert.False(t, ref.FlipD)
}

func TestParseOrientations(t *testing.T) {
	for _, tc := range []struct {
		attr string
		want Orientation
	}{
		{"orthogonal", OrientationOrthogonal},
		{"isometric", OrientationIsometric},
		{"staggered", OrientationStaggered},
		{"hexagonal", OrientationHexagonal},
	} {
		t.Run(tc.attr, func(t *testing.T) {
			doc := `<map orientation="` + tc.attr + `" width="1" height="1" tilewidth="8" tileheight="8"></map>`
			m, err := Parse("m.tmx", []byte(doc), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Orientation)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for name, doc := range map[string]string{
		"not xml":             "this is not a map",
		"truncated":           `<map orientation="orthogonal" width="1"`,
		"wrong root":          `<tileset name="x"></tileset>`,
		"unknown orientation": `<map orientation="spherical" width="1" height="1" tilewidth="8" tileheight="8"></map>`,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := Parse("bad.tmx", []byte(doc), nil)
			assert.Nil(t, m)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrUnresolvedReference)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "bad.tmx", perr.Path)
		})
	}
}

func TestParseUnresolvedTile(t *testing.T) {
	doc := `<map orientation="orthogonal" width="2" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="1" name="t" tilewidth="8" tileheight="8" tilecount="2" columns="2">
  <image source="t.png" width="16" height="8"/>
 </tileset>
 <layer id="1" name="l" width="2" height="1">
  <data encoding="csv">1,9</data>
 </layer>
</map>`
	m, err := Parse("u.tmx", []byte(doc), nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrUnresolvedReference)
}

func TestParseUnresolvedObjectGID(t *testing.T) {
	doc := `<map orientation="orthogonal" width="1" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="1" name="t" tilewidth="8" tileheight="8" tilecount="2" columns="2">
  <image source="t.png" width="16" height="8"/>
 </tileset>
 <objectgroup id="1" name="o">
  <object id="1" gid="42" x="0" y="8"/>
 </objectgroup>
</map>`
	_, err := Parse("u.tmx", []byte(doc), nil)
	assert.ErrorIs(t, err, ErrUnresolvedReference)
}

func TestParseExternalTileset(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/tilesets/ext.tsx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<tileset name="ext" tilewidth="8" tileheight="8" tilecount="4" columns="2">
 <image source="ext.png" width="16" height="16"/>
</tileset>`)},
	}
	doc := `<map orientation="orthogonal" width="1" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="1" source="tilesets/ext.tsx"/>
 <layer id="1" name="l" width="1" height="1">
  <data encoding="csv">4</data>
 </layer>
</map>`
	m, err := Parse("maps/m.tmx", []byte(doc), fsys)
	require.NoError(t, err)

	require.Len(t, m.Tilesets, 1)
	assert.Equal(t, "ext", m.Tilesets[0].Name)
	assert.Equal(t, "maps/tilesets/ext.png", m.Tilesets[0].Image)
	assert.Equal(t, uint32(3), m.Layers[0].Tiles.At(0, 0).ID)
}

func TestParseMissingExternalTileset(t *testing.T) {
	doc := `<map orientation="orthogonal" width="1" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="1" source="missing.tsx"/>
</map>`
	_, err := Parse("maps/m.tmx", []byte(doc), fstest.MapFS{})
	assert.ErrorIs(t, err, ErrUnresolvedReference)
}

func TestPropertyTypes(t *testing.T) {
	doc := `<map orientation="orthogonal" width="1" height="1" tilewidth="8" tileheight="8">
 <properties>
  <property name="s" value="text"/>
  <property name="f" type="float" value="1.5"/>
  <property name="i" type="int" value="7"/>
  <property name="b" type="bool" value="true"/>
  <property name="bad" type="float" value="wide"/>
  <property name="note">multi
line</property>
 </properties>
</map>`
	m, err := Parse("p.tmx", []byte(doc), nil)
	require.NoError(t, err)

	p := m.Properties
	assert.Equal(t, StringValue("text"), p["s"])
	assert.Equal(t, FloatValue(1.5), p["f"])
	assert.Equal(t, IntValue(7), p["i"])
	assert.Equal(t, BoolValue(true), p["b"])
	assert.Equal(t, StringValue("multi\nline"), p["note"])
	_, ok := p["bad"]
	assert.False(t, ok)

	// Lookups are typed
	_, ok = p.GetFloat("s")
	assert.False(t, ok)
	_, ok = p.GetString("f")
	assert.False(t, ok)
}

func TestStripElements(t *testing.T) {
	out, err := stripElements([]byte(`<map a="1"><layer id="1"><data><chunk>1,2</chunk></data></layer><objectgroup id="2"/><layer id="3"/></map>`), "layer")
	require.NoError(t, err)
	assert.Equal(t, `<map a="1"><objectgroup id="2"/></map>`, string(out))
}
