package geometry

import (
	"math"

	"github.com/mboyd/shapecast/pkg/core"
)

// Sphere is the only fully 3D primitive
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) Sphere {
	return Sphere{Center: center, Radius: radius, Color: color}
}

// Contains reports whether a point lies inside or on the sphere
func (s Sphere) Contains(point core.Vec3) bool {
	return s.Center.Subtract(point).Length() <= s.Radius
}

// intersect finds the entry point of a ray into the sphere by projecting the
// center onto the ray's line. A ray that starts inside the sphere is treated
// as degenerate and reported as a miss rather than as an entry/exit pair.
func (s Sphere) intersect(ray core.Ray) (core.Hit, bool) {
	if s.Contains(ray.Origin) {
		return core.Hit{}, false
	}

	// Closest point on the ray's line to the sphere center:
	// a + ((P-a)·n)n with a = origin, n = direction, P = center.
	toCenter := s.Center.Subtract(ray.Origin)
	projection := ray.Direction.Dot(toCenter)
	closest := ray.Origin.Add(ray.Direction.Multiply(projection))

	// The closest point lands behind the origin when the sphere is behind
	// the camera; reject those before taking the chord.
	if !aheadOfRay(ray, closest) {
		return core.Hit{}, false
	}

	d := s.Center.Subtract(closest).Length()
	if d > s.Radius {
		return core.Hit{}, false
	}

	// Half-chord length from the closest point back to the entry point.
	x := math.Sqrt(s.Radius*s.Radius - d*d)
	entry := ray.At(projection - x)

	return core.Hit{Point: entry}, true
}
