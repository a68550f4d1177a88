package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
)

// NewTextureStore decodes images. Pixel data stays an image.Image here; the
// renderer uploads it to the GPU on first use.
func NewTextureStore(fsys fs.FS) *Store[image.Image] {
	return NewStore("texture", fsys, decodeTexture)
}

func decodeTexture(path string, data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return img, nil
}
