package scenes

import (
	"image"

	"github.com/automoto/terra-firma/assets"
	cfg "github.com/automoto/terra-firma/config"
	"github.com/automoto/terra-firma/systems"
	"github.com/automoto/terra-firma/tiled"
)

// Session holds the asset stores and the map registry. It outlives scenes so
// returning to the menu and starting again reuses everything already loaded.
type Session struct {
	Textures *assets.Store[image.Image]
	Maps     *assets.Store[*tiled.LoadedMap]
	Registry *tiled.Registry
	Images   *systems.TextureCache

	HotReload bool
}

// NewSession serves assets from assetDir, or from the embedded copy when it
// is empty.
func NewSession(assetDir string) *Session {
	fsys := assets.FS(assetDir)
	textures := assets.NewTextureStore(fsys)
	return &Session{
		Textures:  textures,
		Maps:      tiled.NewMapStore(fsys, textures),
		Registry:  tiled.NewRegistry(tiled.ChunkSize{Width: cfg.Map.ChunkWidth, Height: cfg.Map.ChunkHeight}),
		Images:    systems.NewTextureCache(textures),
		HotReload: assetDir != "",
	}
}

func (s *Session) Stores() systems.AssetStores {
	return systems.AssetStores{Maps: s.Maps, Textures: s.Textures, HotReload: s.HotReload}
}

func (s *Session) Lookup() tiled.StoreLookup {
	return tiled.StoreLookup{Maps: s.Maps, Textures: s.Textures}
}
