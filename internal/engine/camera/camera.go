// Package camera provides the orbit camera used to look at the pond.
package camera

import (
	gomath "math"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle above the XZ plane, radians
	Yaw      float32 // horizontal angle, radians

	// Constraints
	MinDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32 // radians per pixel
	ZoomStep        float32 // distance per wheel notch
}

// NewOrbitCamera creates a camera from the configured initial orbit.
func NewOrbitCamera(cfg config.CameraConfig) *OrbitCamera {
	c := &OrbitCamera{
		Distance:        cfg.Distance,
		MinDistance:     cfg.MinDistance,
		MinPitch:        -radians(89),
		MaxPitch:        radians(89),
		DragSensitivity: radians(cfg.Sensitivity),
		ZoomStep:        cfg.ZoomStep,
	}
	c.Rotate(radians(cfg.Pitch), radians(cfg.Yaw))
	c.clampDistance()
	return c
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	offset := math.Vec3{
		X: float32(cp * gomath.Sin(float64(c.Yaw))),
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: float32(cp * gomath.Cos(float64(c.Yaw))),
	}
	return c.Center.Add(offset.Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// Rotate adds to pitch and yaw, keeping pitch short of the poles.
func (c *OrbitCamera) Rotate(pitch, yaw float32) {
	c.Pitch = max(c.MinPitch, min(c.MaxPitch, c.Pitch+pitch))
	c.Yaw += yaw
}

// HandleDrag rotates by a mouse drag in pixels. Dragging up raises the
// camera.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Rotate(-deltaY*c.DragSensitivity, deltaX*c.DragSensitivity)
}

// HandleZoom moves the camera by wheel notches, never closer than
// MinDistance.
func (c *OrbitCamera) HandleZoom(notches float32) {
	c.Distance += notches * c.ZoomStep
	c.clampDistance()
}

func (c *OrbitCamera) clampDistance() {
	c.Distance = max(c.MinDistance, c.Distance)
}
