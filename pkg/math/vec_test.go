package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2OnPlane(t *testing.T) {
	got := Vec2{1, 2}.OnPlane(0.5)
	want := Vec3{1, 0.5, 2}
	if got != want {
		t.Errorf("Vec2.OnPlane() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeOr(t *testing.T) {
	fallback := Vec3{0, 1, 0}
	if got := (Vec3{}).NormalizeOr(fallback); got != fallback {
		t.Errorf("zero vector: got %v, want fallback %v", got, fallback)
	}

	n := Vec3{0, 3, 4}.NormalizeOr(fallback)
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("NormalizeOr().Length() = %v, want ~1", l)
	}
}

func TestVec3Component(t *testing.T) {
	v := Vec3{1, 2, 3}
	for i, want := range []float32{1, 2, 3} {
		if got := v.Component(i); got != want {
			t.Errorf("Component(%d) = %v, want %v", i, got, want)
		}
	}
}
