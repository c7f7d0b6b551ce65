package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mboyd/shapecast/pkg/config"
	"github.com/mboyd/shapecast/pkg/core"
	"github.com/mboyd/shapecast/pkg/renderer"
	"github.com/mboyd/shapecast/pkg/scene"
	"github.com/mboyd/shapecast/pkg/screen"
)

func main() {
	sceneName := flag.String("scene", "default", "Preset scene name")
	interactive := flag.Bool("interactive", false, "Build the scene from console prompts instead of a preset")
	display := flag.String("display", "window", "Where to show the frame: 'window' or 'file'")
	output := flag.String("output", "", "Output path for -display file")
	format := flag.String("format", "", "Output format: png, webp, tga or bmp")
	width := flag.Int("width", 0, "Window width in pixels")
	height := flag.Int("height", 0, "Window height in pixels")
	zFar := flag.Float64("zfar", 0, "Forward depth of the camera lead point")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("shapecast - brute-force shape ray caster")
		fmt.Println("Usage: shapecast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.PresetNames() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	err = cfg.Resolve(config.Flags{
		Width:  *width,
		Height: *height,
		ZFar:   *zFar,
		Output: *output,
		Format: *format,
	})
	if err != nil {
		slog.Error("resolve config", "error", err)
		os.Exit(1)
	}

	s, err := buildScene(*sceneName, *interactive)
	if err != nil {
		slog.Error("build scene", "error", err)
		os.Exit(1)
	}

	fb, err := newFramebuffer(*display, cfg)
	if err != nil {
		slog.Error("select display", "error", err)
		os.Exit(1)
	}

	window := core.NewVec2(float64(cfg.WindowWidth), float64(cfg.WindowHeight))
	viewport := core.NewVec2(float64(cfg.ViewportWidth), float64(cfg.ViewportHeight))
	camera := renderer.NewCamera(window, viewport, cfg.ZFar)

	start := time.Now()
	if err := renderer.New(s, camera, cfg.WindowWidth, cfg.WindowHeight).Render(fb); err != nil {
		slog.Error("render", "error", err)
		os.Exit(1)
	}
	slog.Info("render complete",
		"size", fmt.Sprintf("%dx%d", cfg.WindowWidth, cfg.WindowHeight),
		"shapes", len(s.Shapes),
		"duration", time.Since(start))

	code, err := fb.ShowAndHold()
	if err != nil {
		slog.Error("present frame", "error", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// buildScene selects a preset or runs the interactive console builder
func buildScene(name string, interactive bool) (*scene.Scene, error) {
	if interactive {
		return scene.NewBuilder(os.Stdin, os.Stdout).Run()
	}

	preset, ok := scene.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, try -help for the list", name)
	}
	return preset(), nil
}

// newFramebuffer picks the display surface for the rendered frame
func newFramebuffer(display string, cfg *config.Config) (screen.Framebuffer, error) {
	switch display {
	case "window":
		return screen.NewWindow("shapecast"), nil
	case "file":
		format, err := screen.ParseFormat(cfg.Format)
		if err != nil {
			return nil, err
		}
		return screen.NewImageWriter(cfg.Output, format), nil
	}
	return nil, fmt.Errorf("unknown display %q (want window or file)", display)
}

// logLevel parses a config level name, defaulting to info
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
