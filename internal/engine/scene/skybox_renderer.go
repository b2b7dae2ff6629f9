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

// SkyboxRenderer draws the cubemap room around the pond.
type SkyboxRenderer struct {
	program *shader.Program
	mesh    meshBuffers
	cubemap uint32
}

// NewSkyboxRenderer builds a cube of half extent size; cubemap is owned by
// the renderer.
func NewSkyboxRenderer(size float32, cubemap uint32) (*SkyboxRenderer, error) {
	program, err := shader.New(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	cube := model.Skybox(size)
	return &SkyboxRenderer{
		program: program,
		mesh: uploadIndexed(
			unsafe.Pointer(&cube.Positions[0]), len(cube.Positions)*4, 3*4,
			cube.Indices,
			attrib{location: 0, components: 3},
		),
		cubemap: cubemap,
	}, nil
}

// Cubemap returns the environment texture for other renderers.
func (sr *SkyboxRenderer) Cubemap() uint32 {
	return sr.cubemap
}

// Render draws the box around the origin.
func (sr *SkyboxRenderer) Render(viewProj math.Mat4) {
	sr.program.Use()
	sr.program.SetMat4("uViewProj", viewProj)
	sr.program.SetMat4("uModel", math.Identity())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sr.cubemap)
	sr.program.SetInt("uCubemap", 0)

	sr.mesh.draw()
}

// Destroy releases all resources.
func (sr *SkyboxRenderer) Destroy() {
	sr.mesh.destroy()
	if sr.cubemap != 0 {
		gl.DeleteTextures(1, &sr.cubemap)
		sr.cubemap = 0
	}
	sr.program.Delete()
}
