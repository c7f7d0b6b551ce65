package geometry

import "github.com/mboyd/shapecast/pkg/core"

// Rect is an axis-aligned rectangle embedded in the plane z = Center.Z,
// always facing the camera.
type Rect struct {
	Center core.Vec3
	Width  float64
	Height float64
	Color  core.Vec3
}

// NewRect creates a new rectangle
func NewRect(center core.Vec3, width, height float64, color core.Vec3) Rect {
	return Rect{Center: center, Width: width, Height: height, Color: color}
}

// intersect crosses the ray with the rectangle's z-plane and tests the
// crossing point against the half-extent bounds, inclusive on the edges.
func (r Rect) intersect(ray core.Ray) (core.Hit, bool) {
	point, ok := pointAtZ(ray, r.Center.Z)
	if !ok {
		return core.Hit{}, false
	}
	if !inBounds(r.Center, r.Width, r.Height, point) {
		return core.Hit{}, false
	}
	return core.Hit{Point: point}, true
}
