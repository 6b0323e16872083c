package vecmath

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"scale", a.Scale(-2), Vec3{-2, -4, -6}},
		{"cross", a.Cross(b), Vec3{27, 6, -13}},
		{"cross unit axes", Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}), Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3Dot(t *testing.T) {
	if d := (Vec3{1, 2, 3}).Dot(Vec3{4, -5, 6}); d != 12 {
		t.Errorf("expected dot 12, got %f", d)
	}
	if d := (Vec3{1, 0, 0}).Dot(Vec3{0, 1, 0}); d != 0 {
		t.Errorf("orthogonal vectors should have zero dot, got %f", d)
	}
}

func TestVec3CrossIsOrthogonal(t *testing.T) {
	a := Vec3{0.3, -1.2, 2.5}
	b := Vec3{-4.1, 0.7, 1.9}
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product %v not orthogonal to inputs", c)
	}
}

func TestVec3ValueSemantics(t *testing.T) {
	a := Vec3{1, 1, 1}
	_ = a.Add(Vec3{1, 2, 3})
	_ = a.Scale(10)
	if a != (Vec3{1, 1, 1}) {
		t.Errorf("operations must not mutate the receiver, got %v", a)
	}
	if l := (Vec3{3, 4, 0}).Length(); l != 5 {
		t.Errorf("expected length 5, got %f", l)
	}
}
