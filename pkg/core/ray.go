package core

// Ray represents a half-line with an origin and a unit direction,
// a sightline from the camera through one pixel.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized here so downstream
// intersection code can rely on a unit direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Hit carries the intersection point of a successful ray-shape test.
// It is only meaningful when the accompanying bool is true.
type Hit struct {
	Point Vec3
}
