package screen

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/mboyd/shapecast/pkg/core"
)

// Window is a Framebuffer backed by an SDL2 window surface
type Window struct {
	title   string
	window  *sdl.Window
	surface *sdl.Surface
}

// NewWindow creates an uninitialized window framebuffer with the given title
func NewWindow(title string) *Window {
	return &Window{title: title}
}

// Init starts SDL2 and opens the window
func (w *Window) Init(size image.Point) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("screen: init SDL: %w", err)
	}

	window, err := sdl.CreateWindow(w.title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(size.X), int32(size.Y), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("screen: create window: %w", err)
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("screen: get surface: %w", err)
	}

	w.window = window
	w.surface = surface
	return nil
}

// SetBackground fills the whole surface with one color
func (w *Window) SetBackground(c core.Vec3) {
	rgba := toRGBA(c)
	pixel := sdl.MapRGBA(w.surface.Format, rgba.R, rgba.G, rgba.B, rgba.A)
	w.surface.FillRect(nil, pixel)
}

// DrawPixel sets a single pixel. Out-of-bounds positions are ignored by the
// underlying surface.
func (w *Window) DrawPixel(pos image.Point, c core.Vec3) {
	w.surface.Set(pos.X, pos.Y, toRGBA(c))
}

// ShowAndHold presents the frame and blocks until the user closes the
// window or presses Escape. The window is torn down before returning.
func (w *Window) ShowAndHold() (int, error) {
	if err := w.window.UpdateSurface(); err != nil {
		return 1, fmt.Errorf("screen: update surface: %w", err)
	}

	defer func() {
		w.window.Destroy()
		sdl.Quit()
	}()

	for {
		event := sdl.WaitEvent()
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return 0, nil
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return 0, nil
			}
		}
	}
}
