package formats

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
)

// ErrCubemapFaceSize is returned when cubemap faces differ in size.
var ErrCubemapFaceSize = errors.New("cubemap faces must be square and equal")

// DecodeImage decodes a PNG, JPEG or BMP image.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// LoadImage reads and decodes an image into RGBA. With flipY the first row
// of the result is the bottom row of the file, as GL expects for 2D
// textures.
func LoadImage(path string, flipY bool) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ImageToRGBA(img, flipY), nil
}

// ImageToRGBA converts any image.Image to *image.RGBA with origin (0,0),
// optionally flipping it vertically.
func ImageToRGBA(img image.Image, flipY bool) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		destY := y
		if flipY {
			destY = h - 1 - y
		}
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			rgba.SetRGBA(x, destY, c)
		}
	}

	return rgba
}

// CheckCubemapFaces requires six square faces of one size.
func CheckCubemapFaces(faces [6]*image.RGBA) error {
	size := faces[0].Bounds().Size()
	for i, face := range faces {
		if s := face.Bounds().Size(); s != size || s.X != s.Y {
			return fmt.Errorf("%w: face %d is %v", ErrCubemapFaceSize, i, s)
		}
	}
	return nil
}
