package debug

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromGLFlipsRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue in GL order
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FromGL(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromGL: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFromGLSizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		width, height int
	}{
		{"short", 7, 1, 2},
		{"long", 12, 1, 2},
		{"zero width", 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGL(make([]byte, tt.n), tt.width, tt.height)
			if !errors.Is(err, ErrPixelSize) {
				t.Errorf("expected ErrPixelSize, got %v", err)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	s := NewScreenshots("shots", "pond")
	s.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 10e6, time.UTC) }

	want := filepath.Join("shots", "pond_2024-05-06_07-08-09.010.png")
	if got := s.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}

	s.Dir = ""
	if got := s.Filename(); got != "pond_2024-05-06_07-08-09.010.png" {
		t.Errorf("Filename() without dir = %q", got)
	}
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewScreenshots(dir, "pond")

	img, err := FromGL([]byte{10, 20, 30, 255}, 1, 1)
	if err != nil {
		t.Fatalf("FromGL: %v", err)
	}

	path, err := s.Save(img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
	}
}
