package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource hands out decoded images by asset key.
type ImageSource interface {
	Image(key string) (image.Image, bool)
}

// Images uploads decoded assets to the GPU on first use and caches them by key.
type Images struct {
	src    ImageSource
	images map[string]*ebiten.Image
}

func NewImages(src ImageSource) *Images {
	return &Images{src: src, images: map[string]*ebiten.Image{}}
}

// Get returns the image for key, or nil when the source has none.
func (r *Images) Get(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	if img, ok := r.images[key]; ok {
		return img
	}
	if r.src == nil {
		return nil
	}
	decoded, ok := r.src.Image(key)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(decoded)
	r.images[key] = img
	return img
}
