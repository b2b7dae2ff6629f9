package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/kaczka/internal/engine/model"
	"github.com/Faultbox/kaczka/internal/engine/scene/shaders"
	"github.com/Faultbox/kaczka/internal/engine/shader"
	"github.com/Faultbox/kaczka/pkg/math"
)

// DuckRenderer draws the textured duck mesh.
type DuckRenderer struct {
	program *shader.Program
	mesh    meshBuffers
	texture uint32
}

// NewDuckRenderer uploads mesh; textureID is owned by the renderer.
func NewDuckRenderer(mesh *model.Mesh, textureID uint32) (*DuckRenderer, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("duck mesh is empty")
	}

	program, err := shader.New(shaders.DuckVertexShader, shaders.DuckFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("duck shader: %w", err)
	}

	vertexSize := int(unsafe.Sizeof(model.Vertex{}))
	return &DuckRenderer{
		program: program,
		mesh: uploadIndexed(
			unsafe.Pointer(&mesh.Vertices[0]), len(mesh.Vertices)*vertexSize, int32(vertexSize),
			mesh.Indices,
			attrib{location: 0, components: 3, offset: unsafe.Offsetof(model.Vertex{}.Position)},
			attrib{location: 1, components: 3, offset: unsafe.Offsetof(model.Vertex{}.Normal)},
			attrib{location: 2, components: 3, offset: unsafe.Offsetof(model.Vertex{}.Tangent)},
			attrib{location: 3, components: 2, offset: unsafe.Offsetof(model.Vertex{}.TexCoord)},
		),
		texture: textureID,
	}, nil
}

// Render draws the duck with the given model matrix.
func (dr *DuckRenderer) Render(viewProj, modelMatrix math.Mat4, cameraPos, lightPos math.Vec3) {
	dr.program.Use()
	dr.program.SetMat4("uViewProj", viewProj)
	dr.program.SetMat4("uModel", modelMatrix)
	dr.program.SetVec3("uCameraPos", cameraPos)
	dr.program.SetVec3("uLightPos", lightPos)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, dr.texture)
	dr.program.SetInt("uTexture", 0)

	dr.mesh.draw()
}

// Destroy releases all resources.
func (dr *DuckRenderer) Destroy() {
	dr.mesh.destroy()
	if dr.texture != 0 {
		gl.DeleteTextures(1, &dr.texture)
		dr.texture = 0
	}
	dr.program.Delete()
}
