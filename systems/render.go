package systems

import (
	"image"
	gomath "math"
	"sort"

	"github.com/automoto/terra-firma/components"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/tags"
	"github.com/automoto/terra-firma/tiled"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Entities further than this outside the screen are culled. It keeps sprites
// from popping at the edges.
const cullPadding = 64.0

type view struct {
	camera        math.Vec2
	width, height float64
}

func (v view) toScreen(p math.Vec2) (float64, float64) {
	return p.X - v.camera.X + v.width/2, v.camera.Y - p.Y + v.height/2
}

// visible reports whether a world rect centered at c with half size h is on screen.
func (v view) visible(c, h math.Vec2) bool {
	x, y := v.toScreen(c)
	return x+h.X >= -cullPadding && x-h.X <= v.width+cullPadding &&
		y+h.Y >= -cullPadding && y-h.Y <= v.height+cullPadding
}

type drawable struct {
	entry *donburi.Entry
	z     float64
}

// Reused across frames
var (
	drawables []drawable
	chunkSeen = map[components.TilePos]bool{}
)

// NewDrawWorld returns the renderer for layer roots and the player, drawn in
// ascending Z.
func NewDrawWorld(cache *TextureCache) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return // No camera yet
		}
		v := view{
			camera: components.Camera.Get(cameraEntry).Position,
			width:  float64(screen.Bounds().Dx()),
			height: float64(screen.Bounds().Dy()),
		}

		drawables = drawables[:0]
		tags.TilemapLayer.Each(e.World, func(entry *donburi.Entry) {
			drawables = append(drawables, drawable{entry: entry, z: components.Transform.Get(entry).Z})
		})
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			drawables = append(drawables, drawable{entry: entry, z: components.Transform.Get(entry).Z})
		})
		sort.SliceStable(drawables, func(i, j int) bool { return drawables[i].z < drawables[j].z })

		for _, d := range drawables {
			if d.entry.HasComponent(components.Player) {
				drawPlayer(screen, cache, d.entry, v)
				continue
			}
			drawLayer(e.World, screen, cache, d.entry, v)
		}
	}
}

func drawLayer(w donburi.World, screen *ebiten.Image, cache *TextureCache, root *donburi.Entry, v view) {
	tm := components.Tilemap.Get(root)
	tr := components.Transform.Get(root)
	if tm.Texture.IsZero() || cache.Image(tm.Texture.ID) == nil {
		return
	}
	scale := tr.Scale
	if scale == 0 {
		scale = 1
	}

	chunk := components.TilePos{}
	if w.Valid(tm.Instance) {
		chunk = components.MapInstance.Get(w.Entry(tm.Instance)).Chunk
	}
	clear(chunkSeen)

	half := math.Vec2{X: tm.TileSize.X * scale / 2, Y: tm.TileSize.Y * scale / 2}
	for _, ent := range components.TileStorage.Get(root).Entities() {
		if !w.Valid(ent) {
			continue
		}
		entry := w.Entry(ent)
		tile := components.Tile.Get(entry)

		var center math.Vec2
		if entry.HasComponent(components.Collider) {
			c, ok := colliderCenter(w, entry)
			if !ok {
				continue
			}
			center = c
			if !v.visible(center, half) {
				continue
			}
		} else {
			if chunk.X > 0 && chunk.Y > 0 && !chunkVisible(tm, tr, tile.Pos, chunk, v) {
				continue
			}
			center = tiled.TileWorldCenter(tm, tr, tile.Pos)
		}

		img := cache.SubImage(tm.Texture.ID, tileRect(tm, tile.TextureIndex))
		if img == nil {
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-tm.TileSize.X/2, -tm.TileSize.Y/2)
		applyFlip(&drawOp.GeoM, tile.Flip)
		drawOp.GeoM.Scale(scale, scale)
		x, y := v.toScreen(center)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	}
}

// chunkVisible culls whole chunks of a layer at once. A chunk's bounds come
// from the centers of its corner cells so iso layouts are covered too.
func chunkVisible(tm *components.TilemapData, tr *components.TransformData, pos, chunk components.TilePos, v view) bool {
	key := components.TilePos{X: pos.X / chunk.X, Y: pos.Y / chunk.Y}
	if seen, ok := chunkSeen[key]; ok {
		return seen
	}
	x0, y0 := key.X*chunk.X, key.Y*chunk.Y
	x1 := min(x0+chunk.X, tm.Size.X) - 1
	y1 := min(y0+chunk.Y, tm.Size.Y) - 1

	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for _, c := range []components.TilePos{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}} {
		p := tiled.TileWorldCenter(tm, tr, c)
		minX, maxX = gomath.Min(minX, p.X), gomath.Max(maxX, p.X)
		minY, maxY = gomath.Min(minY, p.Y), gomath.Max(maxY, p.Y)
	}
	scale := tr.Scale
	if scale == 0 {
		scale = 1
	}
	center := math.Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	half := math.Vec2{
		X: (maxX-minX)/2 + tm.TileSize.X*scale,
		Y: (maxY-minY)/2 + tm.TileSize.Y*scale,
	}
	seen := v.visible(center, half)
	chunkSeen[key] = seen
	return seen
}

// tileRect locates a tile in its tileset image.
func tileRect(tm *components.TilemapData, index uint32) image.Rectangle {
	cols := tm.Columns
	if cols <= 0 {
		cols = 1
	}
	tw, th := int(tm.TileSize.X), int(tm.TileSize.Y)
	col, row := int(index)%cols, int(index)/cols
	x := tm.Margin + col*(tw+int(tm.Spacing.X))
	y := tm.Margin + row*(th+int(tm.Spacing.Y))
	return image.Rect(x, y, x+tw, y+th)
}

// applyFlip mirrors a tile centered on the origin. The diagonal flip swaps the
// axes and is applied before the horizontal and vertical flips.
func applyFlip(m *ebiten.GeoM, f components.TileFlip) {
	if f.D {
		m.Rotate(gomath.Pi / 2)
		m.Scale(-1, 1)
	}
	if f.X {
		m.Scale(-1, 1)
	}
	if f.Y {
		m.Scale(1, -1)
	}
}

func colliderCenter(w donburi.World, tile *donburi.Entry) (math.Vec2, bool) {
	c := components.Collider.Get(tile)
	space := colliderSpace(w, tile)
	if c.Object == nil || space == nil {
		return math.Vec2{}, false
	}
	return space.ToWorld(math.Vec2{X: c.Object.X + c.Object.W/2, Y: c.Object.Y + c.Object.H/2}), true
}

func drawPlayer(screen *ebiten.Image, cache *TextureCache, entry *donburi.Entry, v view) {
	tr := components.Transform.Get(entry)
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)
	scale := tr.Scale
	if scale == 0 {
		scale = 1
	}
	x, y := v.toScreen(tr.Position)

	fx, fy := anim.FrameOrigin()
	img := cache.SubImage(anim.Sheet.ID, image.Rect(fx, fy, fx+anim.FrameWidth, fy+anim.FrameHeight))
	if img == nil {
		// sheet not loaded yet, draw the body
		w, h := player.Object.W, player.Object.H
		vector.FillRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), cfg.UI.DebugColliderColor["Player"], false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight)/2)
	if player.Facing < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}
