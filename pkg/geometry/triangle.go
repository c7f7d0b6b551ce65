package geometry

import (
	"math"

	"github.com/mboyd/shapecast/pkg/core"
)

// areaEpsilon absorbs the floating-point noise in the area-sum containment
// test. The area sums of points inside the triangle differ from the whole
// area only by rounding error; exact equality would reject nearly all of them.
const areaEpsilon = 1e-9

// Triangle is a flat triangle embedded in the plane z = PlaneZ, defined by
// three 2D vertices.
type Triangle struct {
	PlaneZ  float64
	A, B, C core.Vec2
	Color   core.Vec3
}

// NewTriangle creates a new triangle
func NewTriangle(planeZ float64, a, b, c core.Vec2, color core.Vec3) Triangle {
	return Triangle{PlaneZ: planeZ, A: a, B: b, C: c, Color: color}
}

// Area returns the triangle's unsigned area
func (t Triangle) Area() float64 {
	return triArea(t.A, t.B, t.C)
}

// Contains tests containment by the area method: P is inside ABC iff the
// three sub-triangles PBC, PAC and PAB tile the whole area.
func (t Triangle) Contains(p core.Vec2) bool {
	sum := triArea(p, t.B, t.C) + triArea(t.A, p, t.C) + triArea(t.A, t.B, p)
	return math.Abs(sum-t.Area()) <= areaEpsilon
}

// intersect crosses the ray with the triangle's z-plane and tests the
// crossing point for containment.
func (t Triangle) intersect(ray core.Ray) (core.Hit, bool) {
	point, ok := pointAtZ(ray, t.PlaneZ)
	if !ok {
		return core.Hit{}, false
	}
	if !t.Contains(core.NewVec2(point.X, point.Y)) {
		return core.Hit{}, false
	}
	return core.Hit{Point: point}, true
}

// triArea returns the unsigned area of the triangle abc via the shoelace formula
func triArea(a, b, c core.Vec2) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}
