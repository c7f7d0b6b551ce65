// Package screen provides the drawing surfaces the renderer writes into:
// an SDL window and an offscreen image flushed to disk.
package screen

import (
	"image"
	"image/color"

	"github.com/mboyd/shapecast/pkg/core"
)

// Framebuffer is the boundary between the render loop and the display
// system. Init must succeed before any drawing. ShowAndHold presents the
// completed frame, blocks until the frame is done with (dismissed or
// written out), and returns the process exit code.
type Framebuffer interface {
	Init(size image.Point) error
	SetBackground(c core.Vec3)
	DrawPixel(pos image.Point, c core.Vec3)
	ShowAndHold() (int, error)
}

// toRGBA converts a [0,1] float color to 8-bit RGBA. Channels are clamped
// here at the display boundary only; the tracer itself never clamps.
func toRGBA(c core.Vec3) color.RGBA {
	clamped := c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(clamped.X*255 + 0.5),
		G: uint8(clamped.Y*255 + 0.5),
		B: uint8(clamped.Z*255 + 0.5),
		A: 255,
	}
}
