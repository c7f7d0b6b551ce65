package renderer

import (
	"image"

	"github.com/mboyd/shapecast/pkg/core"
)

// DefaultZFar is the forward depth of the camera's lead point. Together
// with the viewport/window ratio it determines the effective field of view.
const DefaultZFar = 20.0

// Camera maps discrete window pixels to world-space rays using a
// window-to-viewport transform. All projection parameters are derived once
// at construction; a Camera has no mutable state.
type Camera struct {
	scale  core.Vec2
	offset core.Vec2
	zFar   float64
}

// NewCamera derives the projection from the window size, the viewport the
// window maps onto, and the forward depth of the lead point.
func NewCamera(window, viewport core.Vec2, zFar float64) *Camera {
	return &Camera{
		scale:  core.NewVec2(viewport.X/window.X, viewport.Y/window.Y),
		offset: core.NewVec2((viewport.X-window.X)/2, (viewport.Y-window.Y)/2),
		zFar:   zFar,
	}
}

// GetRay builds the sightline for one pixel: the origin sits on the camera
// plane at z = -1, the lead point at the viewport-transformed coordinates
// at z = zFar, and the ray points from one to the other.
func (c *Camera) GetRay(pixel image.Point) core.Ray {
	origin := core.NewVec3(float64(pixel.X), float64(pixel.Y), -1)
	lead := core.NewVec3(
		float64(pixel.X)*c.scale.X-c.offset.X,
		float64(pixel.Y)*c.scale.Y-c.offset.Y,
		c.zFar,
	)
	return core.NewRay(origin, lead.Subtract(origin))
}
