package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/kaczka/pkg/math"
)

func near(a, b, eps float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= eps
}

func TestScreenCenterHitsLookTarget(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 5, Z: 5}
	target := math.Vec3{X: 1, Y: 0, Z: -1}
	viewProj := math.Perspective(float32(gomath.Pi/2), 4.0/3.0, 0.1, 100).
		Mul(math.LookAt(eye, target, math.Up))
	inv, err := viewProj.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	ray := ScreenToRay(400, 300, 800, 600, inv)
	if !near(ray.Direction.Length(), 1, 1e-4) {
		t.Errorf("direction length = %v, want 1", ray.Direction.Length())
	}

	hit, ok := ray.IntersectPlaneY(0)
	if !ok {
		t.Fatal("expected a hit on the water plane")
	}
	if !near(hit.X, target.X, 1e-3) || !near(hit.Z, target.Z, 1e-3) {
		t.Errorf("hit = %+v, want %+v", hit, target)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		ok   bool
		want math.Vec3
	}{
		{"down", Ray{Origin: math.Vec3{X: 1, Y: 2, Z: 3}, Direction: math.Vec3{Y: -1}}, true, math.Vec3{X: 1, Z: 3}},
		{"parallel", Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{X: 1}}, false, math.Vec3{}},
		{"away", Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{Y: 1}}, false, math.Vec3{}},
		{"slanted", Ray{Origin: math.Vec3{Y: 1}, Direction: math.Vec3{X: 1, Y: -1}.Normalize()}, true, math.Vec3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.ray.IntersectPlaneY(0)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (!near(hit.X, tt.want.X, 1e-5) || !near(hit.Z, tt.want.Z, 1e-5)) {
				t.Errorf("hit = %+v, want %+v", hit, tt.want)
			}
		})
	}
}
