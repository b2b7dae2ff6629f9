package math

import (
	"errors"
	"math"
	"testing"
)

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestScaleThenTranslateOrder(t *testing.T) {
	// Maps the plane [-5,5] onto [0,1]: translate first, then scale.
	m := Scale(0.1, 0, 0.1).Mul(Translate(5, 0, 5))

	cases := []struct {
		in, want Vec3
	}{
		{Vec3{-5, 0, -5}, Vec3{0, 0, 0}},
		{Vec3{0, 3, 0}, Vec3{0.5, 0, 0.5}},
		{Vec3{5, 0, 5}, Vec3{1, 0, 1}},
	}
	for _, tc := range cases {
		got := m.TransformVec3(tc.in)
		if abs(got.X-tc.want.X) > 1e-6 || got.Y != 0 || abs(got.Z-tc.want.Z) > 1e-6 {
			t.Errorf("TransformVec3(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRotateY90(t *testing.T) {
	got := RotateY(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})
	// (1,0,0) turns into (0,0,-1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(3, -2, 7).Mul(RotateY(0.7)).Mul(Scale(2, 2, 2))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	p := Vec3{1.5, -0.25, 4}
	back := inv.TransformVec3(m.TransformVec3(p))
	if back.Sub(p).Length() > 1e-4 {
		t.Errorf("inverse round trip: got %v, want %v", back, p)
	}

	id := m.Mul(inv)
	want := Identity()
	for i := range id {
		if abs(id[i]-want[i]) > 1e-5 {
			t.Errorf("M * M^-1 element %d = %f, want %f", i, id[i], want[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	_, err := Scale(1, 0, 1).Inverse()
	if !errors.Is(err, ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 4.0/3.0, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Up)

	got := m.TransformVec3(eye)
	if got.Length() > 1e-5 {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
