package renderer

import (
	"math"

	"github.com/mboyd/shapecast/pkg/core"
	"github.com/mboyd/shapecast/pkg/geometry"
	"github.com/mboyd/shapecast/pkg/scene"
)

// Raytracer resolves one ray against a scene. It holds no state beyond the
// scene reference; tracing is a pure function of (ray, scene).
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a raytracer over a scene
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// TraceRay tests the ray against every shape in scene order, selects the
// hit nearest to the ray origin (first shape wins ties, strict comparison),
// and shades it with the scene light. No hit means black; a miss is never
// an error.
func (rt *Raytracer) TraceRay(ray core.Ray) core.Vec3 {
	var nearest geometry.Shape
	var nearestPoint core.Vec3
	nearestDistance := math.Inf(1)

	for _, shape := range rt.scene.Shapes {
		hit, ok := geometry.Intersect(shape, ray)
		if !ok {
			continue
		}
		distance := hit.Point.Subtract(ray.Origin).Length()
		if distance < nearestDistance {
			nearestDistance = distance
			nearest = shape
			nearestPoint = hit.Point
		}
	}

	if nearest == nil {
		return core.Vec3{}
	}

	modifier := rt.scene.ColorModifier(nearest, nearestPoint)
	return geometry.ColorOf(nearest).Multiply(modifier)
}
