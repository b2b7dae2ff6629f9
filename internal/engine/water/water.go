// Package water simulates a height-field water surface and derives the
// normal map used to light it.
//
// The surface is a flat quad in the XZ plane. Disturbances are given in world
// space and mapped through the inverse model matrix and the texture matrix
// onto a grid of samples that follows the 2D wave equation.
package water

// Plane holds the water quad ready for GPU upload.
type Plane struct {
	Vertices []float32 // x,y,z for each of the 4 corners
	Indices  []uint32  // two triangles
	Width    float32   // extent along X
	Length   float32   // extent along Z
}

// planeIndices splits the quad along the 1-2 diagonal.
var planeIndices = []uint32{0, 1, 2, 1, 3, 2}

// BuildPlane creates a quad of the given size centred on the origin at y=0.
func BuildPlane(width, length float32) *Plane {
	hw := 0.5 * width
	hl := 0.5 * length

	vertices := []float32{
		-hw, 0, +hl,
		+hw, 0, +hl,
		-hw, 0, -hl,
		+hw, 0, -hl,
	}

	return &Plane{
		Vertices: vertices,
		Indices:  append([]uint32(nil), planeIndices...),
		Width:    width,
		Length:   length,
	}
}

// Default surface parameters.
const (
	DefaultPlaneSize  = 10.0
	DefaultSamples    = 256
	DefaultResolution = 256
	MaxDamping        = 0.95
	// EdgeBand is the normalised distance from the border over which
	// damping ramps from 0 to MaxDamping.
	EdgeBand = 0.01
)
