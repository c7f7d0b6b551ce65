// Package scene owns the shape collection and the global light direction.
// A Scene is populated once before rendering and read-only afterwards.
package scene

import (
	"github.com/mboyd/shapecast/pkg/core"
	"github.com/mboyd/shapecast/pkg/geometry"
)

// Scene contains all the elements needed for rendering: an ordered shape
// list and one directional light. Insertion order matters only for breaking
// ties between equally distant hits.
type Scene struct {
	Shapes         []geometry.Shape
	LightDirection core.Vec3
}

// New creates an empty scene lit from the given direction. The direction
// does not need to be normalized; shading normalizes it.
func New(lightDirection core.Vec3) *Scene {
	return &Scene{LightDirection: lightDirection}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Vec3) {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, color))
}

// AddRect appends an axis-aligned rectangle to the scene
func (s *Scene) AddRect(center core.Vec3, width, height float64, color core.Vec3) {
	s.Shapes = append(s.Shapes, geometry.NewRect(center, width, height, color))
}

// AddCircle appends a circle to the scene
func (s *Scene) AddCircle(center core.Vec3, radius float64, color core.Vec3) {
	s.Shapes = append(s.Shapes, geometry.NewCircle(center, radius, color))
}

// AddTriangle appends a triangle in the plane z = planeZ to the scene
func (s *Scene) AddTriangle(planeZ float64, a, b, c core.Vec2, color core.Vec3) {
	s.Shapes = append(s.Shapes, geometry.NewTriangle(planeZ, a, b, c, color))
}

// ColorModifier returns the brightness modifier for a shape at an
// intersection point under the scene's light.
func (s *Scene) ColorModifier(shape geometry.Shape, point core.Vec3) float64 {
	return geometry.Brightness(shape, s.LightDirection, point)
}
