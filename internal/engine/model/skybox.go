package model

// skyboxIndices lists two triangles per face of the unit cube below,
// wound to face inwards.
var skyboxIndices = []uint32{
	0, 1, 2, 2, 3, 0, // -Z
	4, 6, 5, 6, 4, 7, // +Z
	0, 3, 7, 7, 4, 0, // -X
	1, 5, 6, 6, 2, 1, // +X
	0, 4, 5, 5, 1, 0, // -Y
	3, 2, 6, 6, 7, 3, // +Y
}

// Skybox builds an axis-aligned cube spanning [-size, size] on each axis.
func Skybox(size float32) *PositionMesh {
	s := size
	return &PositionMesh{
		Positions: []float32{
			-s, -s, -s,
			+s, -s, -s,
			+s, +s, -s,
			-s, +s, -s,
			-s, -s, +s,
			+s, -s, +s,
			+s, +s, +s,
			-s, +s, +s,
		},
		Indices: append([]uint32(nil), skyboxIndices...),
	}
}
