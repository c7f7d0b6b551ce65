package geometry

import (
	"math"
	"testing"

	"github.com/mboyd/shapecast/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name          string
		sphere        Sphere
		rayOrigin     core.Vec3
		rayDirection  core.Vec3
		expectHit     bool
		expectedPoint core.Vec3
	}{
		{
			name:          "direct hit from outside",
			sphere:        NewSphere(core.NewVec3(0, 0, 0), 2, core.NewVec3(1, 0, 0)),
			rayOrigin:     core.NewVec3(0, 0, -10),
			rayDirection:  core.NewVec3(0, 0, 1),
			expectHit:     true,
			expectedPoint: core.NewVec3(0, 0, -2),
		},
		{
			name:          "glancing hit on silhouette",
			sphere:        NewSphere(core.NewVec3(0, 0, 0), 2, core.NewVec3(1, 0, 0)),
			rayOrigin:     core.NewVec3(2, 0, -10),
			rayDirection:  core.NewVec3(0, 0, 1),
			expectHit:     true,
			expectedPoint: core.NewVec3(2, 0, 0),
		},
		{
			name:         "miss to the side",
			sphere:       NewSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(1, 0, 0)),
			rayOrigin:    core.NewVec3(2, 0, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			expectHit:    false,
		},
		{
			name:         "sphere behind the ray",
			sphere:       NewSphere(core.NewVec3(0, 0, -5), 1, core.NewVec3(1, 0, 0)),
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "origin inside sphere is degenerate",
			sphere:       NewSphere(core.NewVec3(0, 0, 0), 5, core.NewVec3(1, 0, 0)),
			rayOrigin:    core.NewVec3(1, 1, 1),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "origin on sphere surface counts as inside",
			sphere:       NewSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(1, 0, 0)),
			rayOrigin:    core.NewVec3(0, 0, -1),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "zero radius sphere is unhittable",
			sphere:       NewSphere(core.NewVec3(0, 0.5, 10), 0, core.NewVec3(1, 0, 0)),
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "negative radius sphere is unhittable",
			sphere:       NewSphere(core.NewVec3(0, 0, 10), -3, core.NewVec3(1, 0, 0)),
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := Intersect(tt.sphere, ray)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (point %v)", tt.expectHit, isHit, hit.Point)
			}
			if !tt.expectHit {
				return
			}

			const tolerance = 1e-9
			if hit.Point.Subtract(tt.expectedPoint).Length() > tolerance {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, hit.Point)
			}
		})
	}
}

func TestSphere_Intersect_EntryDistance(t *testing.T) {
	// For a ray aimed straight at the center, the entry point sits exactly
	// one radius short of the center.
	sphere := NewSphere(core.NewVec3(320, 240, 100), 50, core.NewVec3(1, 0, 0))
	origin := core.NewVec3(320, 240, -1)
	ray := core.NewRay(origin, sphere.Center.Subtract(origin))

	hit, isHit := Intersect(sphere, ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expected := sphere.Center.Subtract(origin).Length() - sphere.Radius
	got := hit.Point.Subtract(origin).Length()
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected entry distance %f, got %f", expected, got)
	}
}

func TestSphere_Contains(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, core.NewVec3(1, 0, 0))

	if !sphere.Contains(core.NewVec3(1, 0, 0)) {
		t.Error("Expected interior point to be contained")
	}
	if !sphere.Contains(core.NewVec3(0, 2, 0)) {
		t.Error("Expected surface point to be contained")
	}
	if sphere.Contains(core.NewVec3(0, 2.001, 0)) {
		t.Error("Expected exterior point not to be contained")
	}
}
