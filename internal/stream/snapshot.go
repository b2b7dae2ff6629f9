package stream

import (
	"github.com/Faultbox/kaczka/internal/engine/water"
	"github.com/Faultbox/kaczka/internal/sim"
)

// Snapshot is the JSON message sent to every client.
type Snapshot struct {
	Tick      uint64     `json:"tick"`
	Parameter float64    `json:"parameter"`
	Duck      [3]float32 `json:"duck"`
	Heading   float32    `json:"heading"`
	Drops     uint64     `json:"drops"`
	Size      int        `json:"size"`
	Heights   []float32  `json:"heights"` // row-major, Size x Size
}

// NewSnapshot captures frame and a size x size nearest-sample grid of the
// current heights. size is clamped to [1, min(width, height)].
func NewSnapshot(frame sim.Frame, drops uint64, field *water.HeightField, size int) Snapshot {
	w, h := field.Width(), field.Height()
	size = max(1, min(size, w, h))

	s := Snapshot{
		Tick:      frame.Tick,
		Parameter: frame.Parameter,
		Duck:      [3]float32{frame.Duck.X, frame.Duck.Y, frame.Duck.Z},
		Heading:   frame.Heading,
		Drops:     drops,
		Size:      size,
		Heights:   make([]float32, size*size),
	}

	for j := 0; j < size; j++ {
		y := sampleIndex(j, size, h)
		for i := 0; i < size; i++ {
			s.Heights[j*size+i] = field.At(sampleIndex(i, size, w), y)
		}
	}
	return s
}

// sampleIndex spreads size samples over n cells, hitting both edges.
func sampleIndex(i, size, n int) int {
	if size == 1 {
		return n / 2
	}
	return i * (n - 1) / (size - 1)
}
