package geometry

import "github.com/mboyd/shapecast/pkg/core"

// Circle is a flat disc embedded in the plane z = Center.Z
type Circle struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewCircle creates a new circle
func NewCircle(center core.Vec3, radius float64, color core.Vec3) Circle {
	return Circle{Center: center, Radius: radius, Color: color}
}

// intersect first runs the bounding-square test of the enclosing rectangle,
// then accepts only crossing points within the radius of the center.
func (c Circle) intersect(ray core.Ray) (core.Hit, bool) {
	point, ok := pointAtZ(ray, c.Center.Z)
	if !ok {
		return core.Hit{}, false
	}
	if !inBounds(c.Center, 2*c.Radius, 2*c.Radius, point) {
		return core.Hit{}, false
	}

	offset := core.NewVec2(point.X-c.Center.X, point.Y-c.Center.Y)
	if offset.Length() > c.Radius {
		return core.Hit{}, false
	}
	return core.Hit{Point: point}, true
}
