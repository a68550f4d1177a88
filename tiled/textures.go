package tiled

import (
	"log"

	"github.com/automoto/terra-firma/assets"
)

// TextureLoader issues deferred texture loads
type TextureLoader interface {
	Load(path string) assets.Handle
}

// ResolveTextures requests the image of every single-image tileset, in
// ascending tileset order, and maps tileset index to handle. Image collection
// tilesets are unsupported: they are reported and left out of the mapping.
func ResolveTextures(m *MapModel, loader TextureLoader) map[int]assets.Handle {
	handles := make(map[int]assets.Handle, len(m.Tilesets))
	for i := range m.Tilesets {
		ts := &m.Tilesets[i]
		if ts.IsCollection() {
			log.Printf("Warning: tileset %q (index %d) uses an image collection, its tiles will be skipped", ts.Name, ts.Index)
			continue
		}
		handles[ts.Index] = loader.Load(ts.Image)
	}
	return handles
}
