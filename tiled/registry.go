package tiled

import (
	"sort"

	"github.com/automoto/terra-firma/assets"
)

// ChunkSize is the streaming granularity of a map, in tiles
type ChunkSize struct {
	Width, Height float64
}

// RegistryEntry is the load configuration of one logical map
type RegistryEntry struct {
	Name      string
	Handle    assets.Handle
	ChunkSize ChunkSize
}

// MapLoader issues deferred map loads
type MapLoader interface {
	Load(path string) assets.Handle
}

// Registry maps logical map names to their load handles. Entries live for the
// lifetime of the registry.
type Registry struct {
	defaultChunk ChunkSize
	entries      map[string]RegistryEntry
}

func NewRegistry(defaultChunk ChunkSize) *Registry {
	return &Registry{
		defaultChunk: defaultChunk,
		entries:      make(map[string]RegistryEntry),
	}
}

// GetOrLoad returns the entry for name, issuing a load of path only the first
// time the name is seen.
func (r *Registry) GetOrLoad(name, path string, loader MapLoader) RegistryEntry {
	if e, ok := r.entries[name]; ok {
		return e
	}
	e := RegistryEntry{
		Name:      name,
		Handle:    loader.Load(path),
		ChunkSize: r.defaultChunk,
	}
	r.entries[name] = e
	return e
}

func (r *Registry) Lookup(name string) (RegistryEntry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
