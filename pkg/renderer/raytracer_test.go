package renderer

import (
	"math"
	"testing"

	"github.com/mboyd/shapecast/pkg/core"
	"github.com/mboyd/shapecast/pkg/scene"
)

func TestTraceRay_EmptySceneIsBlack(t *testing.T) {
	rt := NewRaytracer(scene.New(core.NewVec3(0, 0, -1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if color := rt.TraceRay(ray); color != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black, got %v", color)
	}
}

func TestTraceRay_MissIsBlack(t *testing.T) {
	s := scene.New(core.NewVec3(0, 0, -1))
	s.AddSphere(core.NewVec3(100, 100, 50), 10, core.NewVec3(1, 0, 0))
	rt := NewRaytracer(s)

	// Ray pointing away from every shape.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if color := rt.TraceRay(ray); color != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black, got %v", color)
	}
}

func TestTraceRay_NearestHitWins(t *testing.T) {
	// Two full-brightness rects stacked along the ray; the nearer one is blue.
	s := scene.New(core.NewVec3(0, 0, -1))
	s.AddRect(core.NewVec3(0, 0, 50), 10, 10, core.NewVec3(1, 0, 0))
	s.AddRect(core.NewVec3(0, 0, 20), 10, 10, core.NewVec3(0, 0, 1))
	rt := NewRaytracer(s)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	color := rt.TraceRay(ray)

	expected := core.NewVec3(0, 0, 1)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected nearer blue rect to win, got %v", color)
	}
}

func TestTraceRay_TieBrokenByInsertionOrder(t *testing.T) {
	// Two coplanar overlapping rects at the same distance: the one added
	// first must win, since the comparison is strict.
	s := scene.New(core.NewVec3(0, 0, -1))
	s.AddRect(core.NewVec3(0, 0, 30), 10, 10, core.NewVec3(1, 0, 0))
	s.AddRect(core.NewVec3(0, 0, 30), 10, 10, core.NewVec3(0, 1, 0))
	rt := NewRaytracer(s)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	color := rt.TraceRay(ray)

	expected := core.NewVec3(1, 0, 0)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected first rect to win the tie, got %v", color)
	}
}

func TestTraceRay_ShadingScalesColor(t *testing.T) {
	// Light perpendicular to the flat normal: modifier is (1 - sqrt(2)/2)^2.
	s := scene.New(core.NewVec3(1, 0, 0))
	s.AddRect(core.NewVec3(0, 0, 30), 10, 10, core.NewVec3(1, 0, 0))
	rt := NewRaytracer(s)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	color := rt.TraceRay(ray)

	base := 1 - math.Sqrt2/2
	expected := base * base
	if math.Abs(color.X-expected) > 1e-9 {
		t.Errorf("Expected red channel %f, got %f", expected, color.X)
	}
	if color.Y != 0 || color.Z != 0 {
		t.Errorf("Expected green and blue to stay 0, got %v", color)
	}
}
