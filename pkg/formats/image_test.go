package formats

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 7, A: 255})
		}
	}
	return img
}

func TestDecodeImageFormats(t *testing.T) {
	src := gradient(4, 3)

	encoders := map[string]func(*bytes.Buffer) error{
		"png": func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp": func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}

			img, err := DecodeImage(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			rgba := ImageToRGBA(img, false)
			if got := rgba.RGBAAt(3, 2); got != src.RGBAAt(3, 2) {
				t.Errorf("pixel (3,2): expected %v, got %v", src.RGBAAt(3, 2), got)
			}
		})
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	if _, err := DecodeImage([]byte("not an image")); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestImageToRGBAFlip(t *testing.T) {
	src := gradient(2, 3)

	flipped := ImageToRGBA(src, true)

	for y := 0; y < 3; y++ {
		if got, want := flipped.RGBAAt(1, y), src.RGBAAt(1, 2-y); got != want {
			t.Errorf("row %d: expected %v, got %v", y, want, got)
		}
	}
}

func TestImageToRGBAMovesOrigin(t *testing.T) {
	src := gradient(4, 4).SubImage(image.Rect(2, 2, 4, 4))

	rgba := ImageToRGBA(src, false)

	if rgba.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("expected bounds at origin, got %v", rgba.Bounds())
	}
	if got := rgba.RGBAAt(0, 0); got.R != 20 || got.G != 20 {
		t.Errorf("expected pixel from (2,2), got %v", got)
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, gradient(2, 2)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := LoadImage(path, false)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("expected width 2, got %d", img.Bounds().Dx())
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"), false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCheckCubemapFaces(t *testing.T) {
	var faces [6]*image.RGBA
	for i := range faces {
		faces[i] = gradient(4, 4)
	}
	if err := CheckCubemapFaces(faces); err != nil {
		t.Fatalf("expected equal faces to pass, got %v", err)
	}

	faces[4] = gradient(8, 8)
	if err := CheckCubemapFaces(faces); !errors.Is(err, ErrCubemapFaceSize) {
		t.Errorf("expected ErrCubemapFaceSize for mixed sizes, got %v", err)
	}

	faces[4] = gradient(4, 4)
	faces[0] = gradient(4, 2)
	if err := CheckCubemapFaces(faces); !errors.Is(err, ErrCubemapFaceSize) {
		t.Errorf("expected ErrCubemapFaceSize for non-square face, got %v", err)
	}
}
