// Package model builds GPU-ready meshes for the duck and the skybox.
package model

// Vertex is the interleaved vertex layout of lit meshes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Tangent  [3]float32
	TexCoord [2]float32
}

// Mesh holds mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// PositionMesh is an indexed mesh with positions only.
type PositionMesh struct {
	Positions []float32 // x,y,z per vertex
	Indices   []uint32
}
