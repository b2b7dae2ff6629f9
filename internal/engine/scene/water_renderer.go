package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/kaczka/internal/engine/scene/shaders"
	"github.com/Faultbox/kaczka/internal/engine/shader"
	"github.com/Faultbox/kaczka/internal/engine/texture"
	"github.com/Faultbox/kaczka/internal/engine/water"
	"github.com/Faultbox/kaczka/pkg/math"
)

// WaterRenderer draws the simulated surface as a quad lit through its
// normal map.
type WaterRenderer struct {
	program   *shader.Program
	mesh      meshBuffers
	normalMap *texture.Dynamic
}

// NewWaterRenderer uploads the plane of surface and allocates its normal
// map texture.
func NewWaterRenderer(surface *water.Surface) (*WaterRenderer, error) {
	program, err := shader.New(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	plane := surface.Plane
	wr := &WaterRenderer{
		program: program,
		mesh: uploadIndexed(
			unsafe.Pointer(&plane.Vertices[0]), len(plane.Vertices)*4, 3*4,
			plane.Indices,
			attrib{location: 0, components: 3},
		),
		normalMap: texture.NewDynamic(surface.Field.Width(), surface.Field.Height()),
	}
	wr.Update(surface)
	return wr, nil
}

// Update uploads the current normals.
func (wr *WaterRenderer) Update(surface *water.Surface) {
	wr.normalMap.Update(surface.ColorBuffer())
}

// Render draws the surface reflecting and refracting cubemap.
func (wr *WaterRenderer) Render(viewProj math.Mat4, cameraPos math.Vec3, field *water.HeightField, cubemap uint32) {
	wr.program.Use()
	wr.program.SetMat4("uModel", field.ModelMatrix())
	wr.program.SetMat4("uViewProj", viewProj)
	wr.program.SetMat4("uTexture", field.TextureMatrix())
	wr.program.SetVec3("uCameraPos", cameraPos)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, wr.normalMap.ID)
	wr.program.SetInt("uNormalMap", 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cubemap)
	wr.program.SetInt("uCubemap", 1)

	wr.mesh.draw()
	gl.ActiveTexture(gl.TEXTURE0)
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	wr.mesh.destroy()
	wr.normalMap.Delete()
	wr.program.Delete()
}
