package settings

import (
	"image"
	"image/color"

	"github.com/gogpu/crosshair"
)

// Config is the complete user configuration.
type Config struct {
	Enabled   bool
	FirstTime bool

	// Color is the crosshair color. Only RGB is user-tunable; alpha is
	// always opaque.
	Color     color.NRGBA
	Length    int
	Gap       int
	Thickness int

	Dot     bool
	DotSize int

	Shadow           bool
	ShadowBlurRadius int
	// ShadowColor is always black; only its alpha is stored.
	ShadowColor  color.NRGBA
	ShadowOffset image.Point

	Padding     int
	Supersample float64

	CurrentScreenIndex int

	// DevicePixelRatio comes from the display at runtime and is not persisted.
	DevicePixelRatio float64
}

// Default returns the configuration of a fresh installation.
func Default() Config {
	p := crosshair.DefaultParams()
	return Config{
		Enabled:          true,
		FirstTime:        true,
		Color:            color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Length:           p.Length,
		Gap:              p.Gap,
		Thickness:        p.Thickness,
		Dot:              p.DotEnabled,
		DotSize:          p.DotSize,
		Shadow:           p.ShadowEnabled,
		ShadowBlurRadius: p.ShadowBlurRadius,
		ShadowColor:      color.NRGBA{A: 255},
		ShadowOffset:     p.ShadowOffset,
		Padding:          p.Padding,
		Supersample:      p.SupersampleFactor,
		DevicePixelRatio: p.DevicePixelRatio,
	}
}

// Reset restores the defaults in memory. FirstTime and DevicePixelRatio
// are kept. Nothing is written to a store.
func (c *Config) Reset() {
	firstTime, dpr := c.FirstTime, c.DevicePixelRatio
	*c = Default()
	c.FirstTime = firstTime
	c.DevicePixelRatio = dpr
}

// Clamp forces every field into the range the renderer accepts.
// It is idempotent.
func (c *Config) Clamp() {
	p := c.Params().Clamp()

	c.Length = p.Length
	c.Gap = p.Gap
	c.Thickness = p.Thickness
	c.DotSize = p.DotSize
	c.ShadowBlurRadius = p.ShadowBlurRadius
	c.ShadowOffset = p.ShadowOffset
	c.Padding = p.Padding
	c.Supersample = p.SupersampleFactor
	c.DevicePixelRatio = p.DevicePixelRatio

	c.Color.A = 255
	c.ShadowColor = color.NRGBA{A: c.ShadowColor.A}
	c.CurrentScreenIndex = max(0, c.CurrentScreenIndex)
}

// Params returns the render parameters for this configuration.
func (c Config) Params() crosshair.Params {
	return crosshair.Params{
		Length:            c.Length,
		Gap:               c.Gap,
		Thickness:         c.Thickness,
		Color:             c.Color,
		DotEnabled:        c.Dot,
		DotSize:           c.DotSize,
		ShadowEnabled:     c.Shadow,
		ShadowColor:       c.ShadowColor,
		ShadowBlurRadius:  c.ShadowBlurRadius,
		ShadowOffset:      c.ShadowOffset,
		Padding:           c.Padding,
		DevicePixelRatio:  c.DevicePixelRatio,
		SupersampleFactor: c.Supersample,
	}
}
