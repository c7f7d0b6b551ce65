package screen

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// ContentType returns the MIME type of an encoded format
func ContentType(format Format) string {
	switch format {
	case FormatWebP:
		return "image/webp"
	case FormatTGA:
		return "image/x-tga"
	case FormatBMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Encode writes an image to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("screen: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("screen: encode %s: %w", format, err)
	}
	return nil
}
