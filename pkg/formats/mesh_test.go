package formats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/kaczka/pkg/math"
)

const quadMesh = `4
-1 0 -1   0 1 0   0 0
 1 0 -1   0 1 0   1 0
-1 0  1   0 1 0   0 1
 1 0  1   1 0 0   1 1
2
0 1 2
1 3 2
`

func TestParseMesh_ValidFile(t *testing.T) {
	mesh, err := ParseMesh(strings.NewReader(quadMesh))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}

	if len(mesh.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	want := []uint32{0, 1, 2, 1, 3, 2}
	for i, idx := range want {
		if mesh.Indices[i] != idx {
			t.Errorf("index %d: expected %d, got %d", i, idx, mesh.Indices[i])
		}
	}

	v := mesh.Vertices[1]
	if v.Position != (math.Vec3{X: 1, Y: 0, Z: -1}) {
		t.Errorf("unexpected position %v", v.Position)
	}
	if v.TexCoord != (math.Vec2{X: 1, Y: 0}) {
		t.Errorf("unexpected uv %v", v.TexCoord)
	}
}

func TestParseMesh_Tangents(t *testing.T) {
	mesh, err := ParseMesh(strings.NewReader(quadMesh))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}

	// Vertical normal gets +X.
	if got := mesh.Vertices[0].Tangent; got != (math.Vec3{X: 1}) {
		t.Errorf("expected +X tangent for up normal, got %v", got)
	}

	// +X normal: cross((1,0,0), (0,1,0)) = (0,0,1).
	if got := mesh.Vertices[3].Tangent; got != (math.Vec3{Z: 1}) {
		t.Errorf("expected +Z tangent for +X normal, got %v", got)
	}
}

func TestParseMesh_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrTruncatedMesh},
		{"missing vertex data", "2\n0 0 0 0 1 0 0 0\n", ErrTruncatedMesh},
		{"missing triangle count", "1\n0 0 0 0 1 0 0 0\n", ErrTruncatedMesh},
		{"short triangle", "1\n0 0 0 0 1 0 0 0\n1\n0 0\n", ErrTruncatedMesh},
		{"bad count", "four\n", ErrInvalidMeshData},
		{"negative count", "-1\n", ErrInvalidMeshData},
		{"bad float", "1\n0 0 zero 0 1 0 0 0\n0\n", ErrInvalidMeshData},
		{"bad index", "1\n0 0 0 0 1 0 0 0\n1\n0 0 x\n", ErrInvalidMeshData},
		{"index out of range", "1\n0 0 0 0 1 0 0 0\n1\n0 0 1\n", ErrInvalidMeshIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMesh(strings.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duck.txt")
	if err := os.WriteFile(path, []byte(quadMesh), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}

	mesh, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(mesh.Vertices))
	}

	if _, err := LoadMesh(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
