package crosshair

import (
	"image"
	"image/color"
	"math"
)

// Ranges applied by Clamp. Every size-like parameter is corrected into its
// range instead of being rejected.
const (
	MinLength, MaxLength             = 1, 50
	MinThickness, MaxThickness       = 1, 50
	MinGap, MaxGap                   = 0, 100
	MinDotSize, MaxDotSize           = 0, 100
	MinPadding, MaxPadding           = 0, 100
	MinShadowBlur, MaxShadowBlur     = 0, 24
	MinShadowOffset, MaxShadowOffset = -24, 24

	MinSupersample, MaxSupersample = 1.0, 8.0
	MinPixelRatio, MaxPixelRatio   = 0.25, 8.0
)

// Params describes one crosshair render. It is a value type: Render never
// mutates it and keeps no reference to it after returning.
type Params struct {
	// Length is the arm length in logical pixels.
	Length int
	// Gap is the distance from the center to the inner end of each arm.
	Gap int
	// Thickness is the stroke width in logical pixels.
	Thickness int
	// Color is the stroke and dot color (straight alpha).
	Color color.NRGBA

	DotEnabled bool
	// DotSize is the diameter of the center dot.
	DotSize int

	ShadowEnabled    bool
	ShadowColor      color.NRGBA
	ShadowBlurRadius int
	// ShadowOffset moves the shadow relative to the shape, in logical pixels.
	ShadowOffset image.Point

	// Padding is the margin kept around the arm tips on every side.
	Padding int

	// DevicePixelRatio is attached to the output and selects its
	// physical resolution.
	DevicePixelRatio float64
	// SupersampleFactor is the internal render-scale multiplier.
	SupersampleFactor float64
}

// DefaultParams returns the parameters of a fresh installation.
func DefaultParams() Params {
	return Params{
		Length:            8,
		Gap:               32,
		Thickness:         2,
		Color:             color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		DotEnabled:        true,
		DotSize:           4,
		ShadowEnabled:     true,
		ShadowColor:       color.NRGBA{A: 255},
		ShadowBlurRadius:  3,
		Padding:           42,
		DevicePixelRatio:  1,
		SupersampleFactor: 1,
	}
}

// Clamp returns a copy of p with every field forced into its safe range.
// Clamp is idempotent: p.Clamp().Clamp() == p.Clamp().
func (p Params) Clamp() Params {
	p.Length = clampInt(p.Length, MinLength, MaxLength)
	p.Gap = clampInt(p.Gap, MinGap, MaxGap)
	p.Thickness = clampInt(p.Thickness, MinThickness, MaxThickness)
	p.DotSize = clampInt(p.DotSize, MinDotSize, MaxDotSize)
	p.Padding = clampInt(p.Padding, MinPadding, MaxPadding)
	p.ShadowBlurRadius = clampInt(p.ShadowBlurRadius, MinShadowBlur, MaxShadowBlur)
	p.ShadowOffset.X = clampInt(p.ShadowOffset.X, MinShadowOffset, MaxShadowOffset)
	p.ShadowOffset.Y = clampInt(p.ShadowOffset.Y, MinShadowOffset, MaxShadowOffset)
	p.SupersampleFactor = clampScale(p.SupersampleFactor, MinSupersample, MaxSupersample, 1)
	p.DevicePixelRatio = clampScale(p.DevicePixelRatio, MinPixelRatio, MaxPixelRatio, 1)
	return p
}

// BaseSize returns the side of the square logical canvas that holds all
// four arm tips plus the padding margin.
func (p Params) BaseSize() int {
	return (p.Length+p.Gap)*2 + p.Padding*2
}

// ShadowPadding returns the logical margin added on every side when the
// shadow is composited, so that the blurred and offset shadow is never
// clipped.
func (p Params) ShadowPadding() int {
	return p.ShadowBlurRadius + max(abs(p.ShadowOffset.X), abs(p.ShadowOffset.Y)) + 2
}

// ClampInt forces v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	return clampInt(v, lo, hi)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// clampScale clamps a scale factor; NaN and non-positive values become def.
func clampScale(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return def
	}
	return math.Max(lo, math.Min(v, hi))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
