package screen

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/mboyd/shapecast/pkg/core"
)

// Format selects the on-disk encoding of an ImageWriter
type Format string

// Supported output formats
const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatBMP  Format = "bmp"
)

// ParseFormat validates a format name from a flag or request
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPNG, FormatWebP, FormatTGA, FormatBMP:
		return Format(name), nil
	}
	return "", fmt.Errorf("screen: unknown format %q", name)
}

// ImageWriter is a Framebuffer that accumulates pixels in an offscreen
// image and writes it to a file on ShowAndHold.
type ImageWriter struct {
	path   string
	format Format
	img    *image.RGBA
}

// NewImageWriter creates a framebuffer that will write to path in the given
// format when the frame is complete.
func NewImageWriter(path string, format Format) *ImageWriter {
	return &ImageWriter{path: path, format: format}
}

// Init allocates the backing image
func (iw *ImageWriter) Init(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("screen: invalid image size %dx%d", size.X, size.Y)
	}
	iw.img = image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	return nil
}

// SetBackground fills the whole image with one color
func (iw *ImageWriter) SetBackground(c core.Vec3) {
	draw.Draw(iw.img, iw.img.Bounds(), &image.Uniform{C: toRGBA(c)}, image.Point{}, draw.Src)
}

// DrawPixel sets a single pixel; out-of-bounds positions are ignored
func (iw *ImageWriter) DrawPixel(pos image.Point, c core.Vec3) {
	iw.img.SetRGBA(pos.X, pos.Y, toRGBA(c))
}

// Image exposes the backing image, e.g. for in-memory encoding by the
// render service.
func (iw *ImageWriter) Image() *image.RGBA {
	return iw.img
}

// ShowAndHold writes the completed frame to disk and returns exit code 0
func (iw *ImageWriter) ShowAndHold() (int, error) {
	file, err := os.Create(iw.path)
	if err != nil {
		return 1, fmt.Errorf("screen: create %s: %w", iw.path, err)
	}
	defer file.Close()

	if err := Encode(file, iw.img, iw.format); err != nil {
		return 1, err
	}
	return 0, nil
}
