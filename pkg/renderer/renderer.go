package renderer

import (
	"fmt"
	"image"

	"github.com/mboyd/shapecast/pkg/core"
	"github.com/mboyd/shapecast/pkg/scene"
	"github.com/mboyd/shapecast/pkg/screen"
)

// Renderer drives one ray per pixel across a framebuffer. The scene is
// read-only during the loop; each pixel is independent of every other.
type Renderer struct {
	camera *Camera
	tracer *Raytracer
	width  int
	height int
}

// New creates a renderer for a scene at the given output size
func New(s *scene.Scene, camera *Camera, width, height int) *Renderer {
	return &Renderer{
		camera: camera,
		tracer: NewRaytracer(s),
		width:  width,
		height: height,
	}
}

// Render initializes the framebuffer, clears it to black and traces one ray
// per pixel. The framebuffer is left un-presented so the caller decides
// when to ShowAndHold.
func (r *Renderer) Render(fb screen.Framebuffer) error {
	if err := fb.Init(image.Pt(r.width, r.height)); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	fb.SetBackground(core.NewVec3(0, 0, 0))

	for x := 0; x < r.width; x++ {
		for y := 0; y < r.height; y++ {
			pixel := image.Pt(x, y)
			ray := r.camera.GetRay(pixel)
			fb.DrawPixel(pixel, r.tracer.TraceRay(ray))
		}
	}
	return nil
}

// RenderImage renders into an offscreen image, for callers that encode the
// frame themselves rather than presenting it.
func (r *Renderer) RenderImage() (*image.RGBA, error) {
	fb := screen.NewImageWriter("", screen.FormatPNG)
	if err := r.Render(fb); err != nil {
		return nil, err
	}
	return fb.Image(), nil
}
