package systems

import (
	"image"

	"github.com/automoto/terra-firma/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

type subImageKey struct {
	id   assets.AssetID
	rect image.Rectangle
}

// TextureCache uploads decoded textures on first use and keeps the frames cut
// from them, so the renderer never allocates per draw.
type TextureCache struct {
	store  *assets.Store[image.Image]
	images map[assets.AssetID]*ebiten.Image
	subs   map[subImageKey]*ebiten.Image
}

func NewTextureCache(store *assets.Store[image.Image]) *TextureCache {
	return &TextureCache{
		store:  store,
		images: make(map[assets.AssetID]*ebiten.Image),
		subs:   make(map[subImageKey]*ebiten.Image),
	}
}

// Image returns the GPU image for id, or nil while the texture is not ready.
func (c *TextureCache) Image(id assets.AssetID) *ebiten.Image {
	if img, ok := c.images[id]; ok {
		return img
	}
	src, ok := c.store.Get(id)
	if !ok || src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[id] = img
	return img
}

// SubImage returns the rect of texture id, or nil when the texture is not
// ready or rect falls outside it.
func (c *TextureCache) SubImage(id assets.AssetID, rect image.Rectangle) *ebiten.Image {
	key := subImageKey{id: id, rect: rect}
	if sub, ok := c.subs[key]; ok {
		return sub
	}
	img := c.Image(id)
	if img == nil || !rect.In(img.Bounds()) {
		return nil
	}
	sub := img.SubImage(rect).(*ebiten.Image)
	c.subs[key] = sub
	return sub
}

// Invalidate drops everything cut from id. The next lookup uploads the
// current store value.
func (c *TextureCache) Invalidate(id assets.AssetID) {
	if img, ok := c.images[id]; ok {
		img.Deallocate()
		delete(c.images, id)
	}
	for k := range c.subs {
		if k.id == id {
			delete(c.subs, k)
		}
	}
}
