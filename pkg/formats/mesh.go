package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Faultbox/kaczka/pkg/math"
)

// Mesh format errors.
var (
	ErrTruncatedMesh    = errors.New("truncated mesh data")
	ErrInvalidMeshData  = errors.New("invalid mesh data")
	ErrInvalidMeshIndex = errors.New("mesh index out of range")
)

// maxMeshElements bounds vertex and triangle counts read from a file.
const maxMeshElements = 1 << 24

// MeshVertex is one vertex of a text mesh.
type MeshVertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Tangent  math.Vec3
	TexCoord math.Vec2
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []MeshVertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// meshTangent picks a tangent in the horizontal plane. Normals close to
// vertical get +X.
func meshTangent(normal math.Vec3) math.Vec3 {
	idealTangent := math.Vec3{X: 1}
	cosa := normal.Dot(math.Up)
	if cosa > 0.95 || cosa < -0.95 {
		return idealTangent
	}
	return normal.Cross(math.Up).NormalizeOr(idealTangent)
}

// meshReader reads whitespace separated tokens.
type meshReader struct {
	s *bufio.Scanner
}

func (r *meshReader) token(what string) (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: reading %s", ErrTruncatedMesh, what)
	}
	return r.s.Text(), nil
}

func (r *meshReader) count(what string) (int, error) {
	tok, err := r.token(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > maxMeshElements {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidMeshData, what, tok)
	}
	return n, nil
}

func (r *meshReader) floats(dst []float32, what string) error {
	for i := range dst {
		tok, err := r.token(what)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidMeshData, what, tok)
		}
		dst[i] = float32(v)
	}
	return nil
}

// ParseMesh reads the text mesh format: a vertex count, then per vertex
// position, normal and uv (8 floats), then a triangle count, then three
// indices per triangle.
func ParseMesh(r io.Reader) (*Mesh, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	mr := &meshReader{s: s}

	numVertices, err := mr.count("vertex count")
	if err != nil {
		return nil, err
	}

	mesh := &Mesh{Vertices: make([]MeshVertex, numVertices)}

	var f [8]float32
	for i := range mesh.Vertices {
		if err := mr.floats(f[:], fmt.Sprintf("vertex %d", i)); err != nil {
			return nil, err
		}
		normal := math.Vec3{X: f[3], Y: f[4], Z: f[5]}
		mesh.Vertices[i] = MeshVertex{
			Position: math.Vec3{X: f[0], Y: f[1], Z: f[2]},
			Normal:   normal,
			Tangent:  meshTangent(normal),
			TexCoord: math.Vec2{X: f[6], Y: f[7]},
		}
	}

	numTriangles, err := mr.count("triangle count")
	if err != nil {
		return nil, err
	}

	mesh.Indices = make([]uint32, numTriangles*3)
	for i := range mesh.Indices {
		tok, err := mr.token(fmt.Sprintf("triangle %d", i/3))
		if err != nil {
			return nil, err
		}
		idx, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: index %q", ErrInvalidMeshData, tok)
		}
		if idx >= uint64(numVertices) {
			return nil, fmt.Errorf("%w: %d with %d vertices", ErrInvalidMeshIndex, idx, numVertices)
		}
		mesh.Indices[i] = uint32(idx)
	}

	return mesh, nil
}

// LoadMesh parses a text mesh from disk.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh: %w", err)
	}
	defer f.Close()

	mesh, err := ParseMesh(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return mesh, nil
}
