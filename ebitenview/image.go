package ebitenview

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/phanxgames/canopy"
)

// Image is a canopy.Bitmap backed by an *ebiten.Image.
type Image struct {
	Img *ebiten.Image
}

// NewImage wraps an existing ebiten image.
func NewImage(img *ebiten.Image) *Image {
	return &Image{Img: img}
}

// Size returns the image's pixel dimensions.
func (i *Image) Size() (width, height int) {
	if i == nil || i.Img == nil {
		return 0, 0
	}
	b := i.Img.Bounds()
	return b.Dx(), b.Dy()
}

func ebitenImage(b canopy.Bitmap) *ebiten.Image {
	switch img := b.(type) {
	case *Image:
		if img == nil {
			return nil
		}
		return img.Img
	default:
		return nil
	}
}

// decodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP data.
func decodeImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode image: empty %s image", format)
	}
	return img, nil
}

// LoadImage is a canopy.ImageLoader reading an image file from disk.
func LoadImage(path string) (canopy.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := decodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Image{Img: ebiten.NewImageFromImage(img)}, nil
}

var _ canopy.ImageLoader = LoadImage
