package geometry

import (
	"math"

	"github.com/mboyd/shapecast/pkg/core"
)

// Shape is a closed union over the four primitive kinds the tracer knows
// about. Dispatch is a type switch per operation rather than methods on an
// open interface: the domain is fixed at four variants, so a sealed union
// is preferred over an extensible hierarchy.
type Shape interface {
	shape()
}

func (Sphere) shape()   {}
func (Rect) shape()     {}
func (Circle) shape()   {}
func (Triangle) shape() {}

// aheadTolerance bounds the direction-difference metric when checking that
// a candidate intersection lies ahead of the ray rather than behind it.
const aheadTolerance = 1e-3

// flatNormal is the surface normal of the 2D shapes, which always face the
// camera looking down +Z.
var flatNormal = core.NewVec3(0, 0, -1)

// Intersect tests a ray against a shape and returns the first intersection
// point along the ray. A miss is a normal outcome, not an error.
func Intersect(s Shape, ray core.Ray) (core.Hit, bool) {
	switch v := s.(type) {
	case Sphere:
		return v.intersect(ray)
	case Rect:
		return v.intersect(ray)
	case Circle:
		return v.intersect(ray)
	case Triangle:
		return v.intersect(ray)
	}
	return core.Hit{}, false
}

// Brightness returns the directional-light modifier in [0,1] for a shape at
// a hit point: 1 when the light direction matches the surface normal, 0 when
// they oppose. Spheres use the true 3D normal at the hit point, the flat
// shapes a fixed camera-facing normal.
func Brightness(s Shape, lightDir, point core.Vec3) float64 {
	var normal core.Vec3
	switch v := s.(type) {
	case Sphere:
		normal = point.Subtract(v.Center).Normalize()
	default:
		normal = flatNormal
	}

	modifier := 1 - core.DirectionDifference(lightDir, normal)
	return modifier * modifier
}

// Position returns a shape's reference position
func Position(s Shape) core.Vec3 {
	switch v := s.(type) {
	case Sphere:
		return v.Center
	case Rect:
		return v.Center
	case Circle:
		return v.Center
	case Triangle:
		centroid := v.A.Add(v.B).Add(v.C).Multiply(1.0 / 3.0)
		return core.NewVec3(centroid.X, centroid.Y, v.PlaneZ)
	}
	return core.Vec3{}
}

// ColorOf returns a shape's base color
func ColorOf(s Shape) core.Vec3 {
	switch v := s.(type) {
	case Sphere:
		return v.Color
	case Rect:
		return v.Color
	case Circle:
		return v.Color
	case Triangle:
		return v.Color
	}
	return core.Vec3{}
}

// pointAtZ solves for the point where a ray crosses the plane z = planeZ.
// A ray travelling parallel to the plane never crosses it.
func pointAtZ(ray core.Ray, planeZ float64) (core.Vec3, bool) {
	if ray.Direction.Z == 0 {
		return core.Vec3{}, false
	}
	t := (planeZ - ray.Origin.Z) / ray.Direction.Z
	return ray.At(t), true
}

// aheadOfRay reports whether a point lies forward along the ray, i.e. the
// direction from the origin to the point matches the ray direction within
// tolerance. Guards against line constructions landing behind the camera.
func aheadOfRay(ray core.Ray, point core.Vec3) bool {
	return core.DirectionDifference(ray.Direction, point.Subtract(ray.Origin)) < aheadTolerance
}

// inBounds tests a point against an axis-aligned width x height box centered
// on center, inclusive on all edges.
func inBounds(center core.Vec3, width, height float64, point core.Vec3) bool {
	return math.Abs(point.X-center.X) <= width/2 &&
		math.Abs(point.Y-center.Y) <= height/2
}
