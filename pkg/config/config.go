// Package config resolves render settings from SHAPECAST_* environment
// variables, with command-line flags taking priority.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/mboyd/shapecast/pkg/screen"
)

// Config holds all configurable render and service settings
type Config struct {
	WindowWidth    int     `envconfig:"WINDOW_WIDTH" default:"640"`
	WindowHeight   int     `envconfig:"WINDOW_HEIGHT" default:"480"`
	ViewportWidth  int     `envconfig:"VIEWPORT_WIDTH" default:"0"` // 0 means same as window
	ViewportHeight int     `envconfig:"VIEWPORT_HEIGHT" default:"0"`
	ZFar           float64 `envconfig:"Z_FAR" default:"20"`
	Output         string  `envconfig:"OUTPUT" default:"render.png"`
	Format         string  `envconfig:"FORMAT" default:"png"`
	Port           int     `envconfig:"PORT" default:"8080"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
}

// Flags mirrors the subset of settings exposed as command-line flags.
// Zero values mean "not set".
type Flags struct {
	Width  int
	Height int
	ZFar   float64
	Output string
	Format string
}

// Load reads the environment configuration
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shapecast", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Resolve applies flag overrides and fills derived defaults
func (c *Config) Resolve(flags Flags) error {
	if flags.Width > 0 {
		c.WindowWidth = flags.Width
	}
	if flags.Height > 0 {
		c.WindowHeight = flags.Height
	}
	if flags.ZFar != 0 {
		c.ZFar = flags.ZFar
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = c.WindowWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = c.WindowHeight
	}

	if _, err := screen.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
