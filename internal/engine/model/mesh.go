package model

import (
	gomath "math"

	"github.com/Faultbox/kaczka/pkg/formats"
)

// BuildMesh converts a parsed text mesh into the GPU vertex layout.
func BuildMesh(src *formats.Mesh) *Mesh {
	inf := float32(gomath.Inf(1))
	bounds := Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}

	vertices := make([]Vertex, len(src.Vertices))
	for i, v := range src.Vertices {
		vertices[i] = Vertex{
			Position: [3]float32{v.Position.X, v.Position.Y, v.Position.Z},
			Normal:   [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z},
			Tangent:  [3]float32{v.Tangent.X, v.Tangent.Y, v.Tangent.Z},
			TexCoord: [2]float32{v.TexCoord.X, v.TexCoord.Y},
		}
		updateBounds(&bounds, vertices[i].Position)
	}
	if len(vertices) == 0 {
		bounds = Bounds{}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  append([]uint32(nil), src.Indices...),
		Bounds:   bounds,
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}
