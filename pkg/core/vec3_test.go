package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "already unit length",
			vector:   NewVec3(1, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "scaled axis",
			vector:   NewVec3(0, 5, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "diagonal",
			vector:   NewVec3(1, 1, 1),
			expected: NewVec3(1/math.Sqrt(3), 1/math.Sqrt(3), 1/math.Sqrt(3)),
		},
		{
			name:     "zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); math.Abs(got-25) > 1e-9 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
	if got := v.Dot(NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", got)
	}
	if got := v.Dot(v); math.Abs(got-25) > 1e-9 {
		t.Errorf("Expected self dot product 25, got %f", got)
	}
}

func TestDirectionDifference(t *testing.T) {
	tests := []struct {
		name     string
		u, v     Vec3
		expected float64
	}{
		{
			name:     "parallel directions",
			u:        NewVec3(0, 0, 1),
			v:        NewVec3(0, 0, 1),
			expected: 0,
		},
		{
			name:     "parallel but differently scaled",
			u:        NewVec3(0, 0, 3),
			v:        NewVec3(0, 0, 0.5),
			expected: 0,
		},
		{
			name:     "opposed directions",
			u:        NewVec3(1, 0, 0),
			v:        NewVec3(-1, 0, 0),
			expected: 1,
		},
		{
			name:     "perpendicular directions",
			u:        NewVec3(1, 0, 0),
			v:        NewVec3(0, 1, 0),
			expected: math.Sqrt2 / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DirectionDifference(tt.u, tt.v)

			const tolerance = 1e-9
			if math.Abs(result-tt.expected) > tolerance {
				t.Errorf("Expected %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 2))

	// NewRay normalizes the direction, so t is a distance.
	point := ray.At(5)
	expected := NewVec3(1, 2, 8)
	if point.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 3, 4))

	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}
}
