package water

import (
	"fmt"

	"github.com/Faultbox/kaczka/pkg/math"
)

// Surface ties the simulated field to its normal map and render quad.
type Surface struct {
	Field   *HeightField
	Normals *NormalField
	Plane   *Plane

	colors []byte
}

// NewSurface creates a resting surface for cfg.
func NewSurface(cfg FieldConfig) (*Surface, error) {
	field, err := NewHeightField(cfg)
	if err != nil {
		return nil, fmt.Errorf("height field: %w", err)
	}

	return &Surface{
		Field:   field,
		Normals: NewNormalField(field.Width(), field.Height()),
		Plane:   BuildPlane(cfg.PlaneWidth, cfg.PlaneHeight),
	}, nil
}

// Disturb injects an impulse at a world position.
func (s *Surface) Disturb(world math.Vec3, strength float32) bool {
	return s.Field.ApplyDisturbance(world, strength)
}

// Step advances the field and refreshes the normals.
func (s *Surface) Step(dt float32) {
	s.Field.Update(dt)
	s.Normals.Recompute(s.Field)
}

// Reset calms the water.
func (s *Surface) Reset() {
	s.Field.Clear()
	s.Normals.Reset()
}

// ColorBuffer returns the RGB normal map. The slice is reused between calls.
func (s *Surface) ColorBuffer() []byte {
	s.colors = s.Normals.ColorBuffer(s.colors)
	return s.colors
}
