package water

import "github.com/Faultbox/kaczka/pkg/math"

// diagonals pairs the x and y neighbour offsets: (-1,-1) and (+1,+1).
var diagonals = [2]int{-1, 1}

// NormalField holds one unit normal per height sample.
type NormalField struct {
	width, height int
	normals       []math.Vec3
}

// NewNormalField returns a field of up-facing normals.
func NewNormalField(width, height int) *NormalField {
	n := &NormalField{
		width:   width,
		height:  height,
		normals: make([]math.Vec3, width*height),
	}
	n.Reset()
	return n
}

// Reset points every normal up.
func (n *NormalField) Reset() {
	for i := range n.normals {
		n.normals[i] = math.Up
	}
}

// Normals returns the per-cell normals in row-major order.
func (n *NormalField) Normals() []math.Vec3 { return n.normals }

// At returns the normal at (x, y).
func (n *NormalField) At(x, y int) math.Vec3 {
	return n.normals[y*n.width+x]
}

// Recompute rebuilds the normals from the current state of f, which must
// have the same dimensions. Each cell sums cross(dy, dx) over the diagonal
// neighbours that exist; a zero sum falls back to straight up.
func (n *NormalField) Recompute(f *HeightField) {
	s := f.Current()
	w, h := n.width, n.height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			origin := s[i]

			var sum math.Vec3
			for _, d := range diagonals {
				fx, fy := x+d, y+d
				if fx < 0 || fx >= w || fy < 0 || fy >= h {
					continue
				}
				dx := math.Vec3{X: float32(d), Y: s[y*w+fx] - origin}
				dy := math.Vec3{Y: s[fy*w+x] - origin, Z: float32(d)}
				sum = sum.Add(dy.Cross(dx))
			}

			n.normals[i] = sum.NormalizeOr(math.Up)
		}
	}
}

// ColorBuffer encodes the normals as tightly packed RGB bytes. dst is
// reused when it has room for 3 bytes per cell.
func (n *NormalField) ColorBuffer(dst []byte) []byte {
	return n.encode(dst, 3)
}

// RGBA encodes the normals as RGBA bytes with opaque alpha.
func (n *NormalField) RGBA(dst []byte) []byte {
	return n.encode(dst, 4)
}

func (n *NormalField) encode(dst []byte, stride int) []byte {
	size := stride * len(n.normals)
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]

	for i, normal := range n.normals {
		base := i * stride
		dst[base] = encodeComponent(normal.X)
		dst[base+1] = encodeComponent(normal.Y)
		dst[base+2] = encodeComponent(normal.Z)
		if stride == 4 {
			dst[base+3] = 255
		}
	}
	return dst
}

// encodeComponent maps [-1,1] onto [0,255].
func encodeComponent(c float32) byte {
	c = max(-1, min(1, c))
	return byte(255 * (c + 1) / 2)
}
