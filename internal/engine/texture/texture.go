// Package texture uploads decoded images as GL textures.
package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/kaczka/pkg/formats"
)

// Upload2D creates a mipmapped, repeating 2D texture.
func Upload2D(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}

// Load2D decodes path and uploads it as a 2D texture.
func Load2D(path string) (uint32, error) {
	img, err := formats.LoadImage(path, true)
	if err != nil {
		return 0, err
	}
	return Upload2D(img), nil
}

// LoadCubemap loads six faces in +X, -X, +Y, -Y, +Z, -Z order.
func LoadCubemap(paths [6]string) (uint32, error) {
	var faces [6]*image.RGBA
	for i, path := range paths {
		img, err := formats.LoadImage(path, false)
		if err != nil {
			return 0, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		faces[i] = img
	}
	if err := formats.CheckCubemapFaces(faces); err != nil {
		return 0, err
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texID)
	for i, face := range faces {
		size := int32(face.Bounds().Dx())
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA, size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&face.Pix[0]))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	return texID, nil
}

// Dynamic is an RGB texture whose contents are replaced every frame.
type Dynamic struct {
	ID            uint32
	Width, Height int
}

// NewDynamic allocates an RGB8 texture of the given size.
func NewDynamic(width, height int) *Dynamic {
	d := &Dynamic{Width: width, Height: height}
	gl.GenTextures(1, &d.ID)
	gl.BindTexture(gl.TEXTURE_2D, d.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return d
}

// Update replaces the texture contents with tightly packed RGB bytes.
func (d *Dynamic) Update(rgb []byte) {
	if len(rgb) < 3*d.Width*d.Height {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, d.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(d.Width), int32(d.Height), gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&rgb[0]))
}

// Delete releases the texture.
func (d *Dynamic) Delete() {
	if d.ID != 0 {
		gl.DeleteTextures(1, &d.ID)
		d.ID = 0
	}
}
