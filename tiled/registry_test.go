package tiled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLoadsOnce(t *testing.T) {
	r := NewRegistry(ChunkSize{Width: 32, Height: 32})
	loader := &recordingLoader{}

	first := r.GetOrLoad("Main", "maps/map_00/main.tmx", loader)
	second := r.GetOrLoad("Main", "maps/map_00/main.tmx", loader)

	assert.Len(t, loader.paths, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, "Main", first.Name)
	assert.Equal(t, ChunkSize{Width: 32, Height: 32}, first.ChunkSize)
	assert.Equal(t, "maps/map_00/main.tmx", first.Handle.Path)
}

func TestRegistryIgnoresPathOfKnownName(t *testing.T) {
	r := NewRegistry(ChunkSize{Width: 16, Height: 16})
	loader := &recordingLoader{}

	first := r.GetOrLoad("Main", "maps/a.tmx", loader)
	again := r.GetOrLoad("Main", "maps/b.tmx", loader)

	assert.Equal(t, []string{"maps/a.tmx"}, loader.paths)
	assert.Equal(t, first.Handle, again.Handle)
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry(ChunkSize{Width: 32, Height: 32})
	loader := &recordingLoader{}
	r.GetOrLoad("Town", "maps/town.tmx", loader)
	r.GetOrLoad("Cave", "maps/cave.tmx", loader)

	assert.Equal(t, []string{"Cave", "Town"}, r.Names())

	e, ok := r.Lookup("Cave")
	require.True(t, ok)
	assert.Equal(t, "maps/cave.tmx", e.Handle.Path)
	_, ok = r.Lookup("Sea")
	assert.False(t, ok)
}
