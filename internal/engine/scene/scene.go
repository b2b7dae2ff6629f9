// Package scene draws the pond: the duck, the skybox room and the water.
package scene

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/engine/model"
	"github.com/Faultbox/kaczka/internal/engine/texture"
	"github.com/Faultbox/kaczka/internal/engine/water"
	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/pkg/formats"
	"github.com/Faultbox/kaczka/pkg/math"
)

// SkyboxSize is the half extent of the room around the pond.
const SkyboxSize = 10.0

// Scene owns every renderer of the pond.
type Scene struct {
	width, height int32
	fov           float32
	near, far     float32

	// LightPos is the point light used for the duck.
	LightPos math.Vec3

	water  *WaterRenderer
	duck   *DuckRenderer
	skybox *SkyboxRenderer
}

// New loads all assets named in cfg and creates the renderers. A GL
// context must be current.
func New(cfg *config.Config, surface *water.Surface) (*Scene, error) {
	s := &Scene{
		width:  int32(cfg.Graphics.Width),
		height: int32(cfg.Graphics.Height),
		fov:    cfg.Graphics.FOV,
		near:   cfg.Graphics.Near,
		far:    cfg.Graphics.Far,
	}

	var faces [6]string
	for i, name := range cfg.Assets.Skybox {
		faces[i] = cfg.AssetPath(name)
	}
	cubemap, err := texture.LoadCubemap(faces)
	if err != nil {
		return nil, fmt.Errorf("loading skybox: %w", err)
	}
	s.skybox, err = NewSkyboxRenderer(SkyboxSize, cubemap)
	if err != nil {
		gl.DeleteTextures(1, &cubemap)
		return nil, fmt.Errorf("creating skybox renderer: %w", err)
	}

	if err := s.loadDuck(cfg); err != nil {
		s.Destroy()
		return nil, err
	}

	s.water, err = NewWaterRenderer(surface)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating water renderer: %w", err)
	}

	logger.Named("scene").Info("scene ready")
	return s, nil
}

func (s *Scene) loadDuck(cfg *config.Config) error {
	src, err := formats.LoadMesh(cfg.AssetPath(cfg.Assets.DuckMesh))
	if err != nil {
		return fmt.Errorf("loading duck mesh: %w", err)
	}
	mesh := model.BuildMesh(src)
	size := mesh.Bounds.Size()
	logger.Named("scene").Debug("duck mesh loaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", src.TriangleCount()),
		zap.Float32s("size", size[:]),
	)

	tex, err := texture.Load2D(cfg.AssetPath(cfg.Assets.DuckTexture))
	if err != nil {
		return fmt.Errorf("loading duck texture: %w", err)
	}

	s.duck, err = NewDuckRenderer(mesh, tex)
	if err != nil {
		gl.DeleteTextures(1, &tex)
		return fmt.Errorf("creating duck renderer: %w", err)
	}
	return nil
}

// Projection returns the perspective matrix for the current viewport.
func (s *Scene) Projection() math.Mat4 {
	aspect := float32(1)
	if s.height > 0 {
		aspect = float32(s.width) / float32(s.height)
	}
	return math.Perspective(s.fov*gomath.Pi/180, aspect, s.near, s.far)
}

// Render draws one frame. The normal map is refreshed from surface first.
func (s *Scene) Render(view math.Mat4, cameraPos math.Vec3, duckModel math.Mat4, surface *water.Surface) {
	viewProj := s.Projection().Mul(view)

	s.water.Update(surface)

	s.duck.Render(viewProj, duckModel, cameraPos, s.LightPos)
	s.skybox.Render(viewProj)
	s.water.Render(viewProj, cameraPos, surface.Field, s.skybox.Cubemap())
}

// Resize updates the viewport dimensions.
func (s *Scene) Resize(width, height int32) {
	s.width = width
	s.height = height
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.water != nil {
		s.water.Destroy()
	}
	if s.duck != nil {
		s.duck.Destroy()
	}
	if s.skybox != nil {
		s.skybox.Destroy()
	}
}
