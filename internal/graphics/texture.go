package graphics

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is tightly packed 8-bit RGB pixel data, row 0 first.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// DecodeTexture loads an image file as RGB. With flipY the rows are
// reversed so that row 0 is the bottom of the picture, which is where
// OpenGL samples v=0.
func DecodeTexture(path string, flipY bool) (*Image, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %v", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w (%v)", path, ErrDecode, err)
	}

	out := ToRGB(img, flipY)
	log.Printf("Loaded %s texture %s (size: %dx%d)", format, path, out.Width, out.Height)
	return out, nil
}

// ToRGB converts any image to packed RGB, dropping alpha.
func ToRGB(img image.Image, flipY bool) *Image {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	out := &Image{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
	for y := 0; y < h; y++ {
		srcY := y
		if flipY {
			srcY = h - 1 - y
		}
		src := nrgba.Pix[srcY*nrgba.Stride : srcY*nrgba.Stride+w*4]
		dst := out.Pix[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return out
}
