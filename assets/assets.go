package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:maps all:tileset
var embedded embed.FS

// FS returns the filesystem game assets are served from. An empty dir selects
// the copy embedded in the binary; a directory enables hot reload from disk.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
