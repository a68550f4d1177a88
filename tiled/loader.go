package tiled

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/automoto/terra-firma/assets"
)

// LoadedMap is a parsed map plus handles to its tileset textures. The map store
// owns it; a reload replaces the value under the same handle.
type LoadedMap struct {
	Path     string
	Model    *MapModel
	Textures map[int]assets.Handle
}

// References reports whether the map uses the texture with the given id.
func (lm *LoadedMap) References(id assets.AssetID) bool {
	for _, h := range lm.Textures {
		if h.ID == id {
			return true
		}
	}
	return false
}

// NewMapStore returns a store that parses maps in the background and requests
// their textures from textures once parsed.
func NewMapStore(fsys fs.FS, textures *assets.Store[image.Image]) *assets.Store[*LoadedMap] {
	s := assets.NewStore("map", fsys, func(path string, data []byte) (*LoadedMap, error) {
		m, err := Parse(path, data, fsys)
		if err != nil {
			return nil, err
		}
		return &LoadedMap{Path: path, Model: m}, nil
	})
	s.SetFinish(func(path string, lm *LoadedMap) (*LoadedMap, error) {
		lm.Textures = ResolveTextures(lm.Model, textures)
		return lm, nil
	})
	return s
}

// StoreLookup reads loaded maps and texture states from the asset stores.
type StoreLookup struct {
	Maps     *assets.Store[*LoadedMap]
	Textures *assets.Store[image.Image]
}

func (l StoreLookup) Map(id assets.AssetID) (*LoadedMap, bool) {
	return l.Maps.Get(id)
}

// MapErr reports why a map failed to load, or nil while it is pending or ready.
func (l StoreLookup) MapErr(id assets.AssetID) error {
	if l.Maps.State(id) != assets.StateFailed {
		return nil
	}
	if err := l.Maps.Err(id); err != nil {
		return err
	}
	return fmt.Errorf("map %s is not loaded", id)
}

func (l StoreLookup) TextureReady(id assets.AssetID) bool {
	return l.Textures.State(id) == assets.StateReady
}
