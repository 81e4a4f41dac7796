package crosshair

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/crosshair/internal/filter"
	"github.com/gogpu/crosshair/internal/raster"
)

// Render draws the crosshair described by p.
//
// Parameters are clamped first, so Render is total: it never fails and
// never panics on out-of-range input. It keeps no state between calls and
// may be called concurrently.
//
// The shape is rasterized directly at physical resolution times the
// supersample factor, so a device pixel ratio never upscales anything. If
// the shadow is enabled the canvas is grown by ShadowPadding on every side
// and the shadow is composited behind the shape. A supersampled canvas is
// finally reduced to LogicalSize*DevicePixelRatio pixels; without
// supersampling the canvas is returned as drawn.
func Render(p Params) *Image {
	p = p.Clamp()
	ss := p.SupersampleFactor
	scale := ss * p.DevicePixelRatio

	base := p.BaseSize()
	size := workingSize(base, scale)
	path := BuildPath(p, image.Pt(size, size), scale)

	side := size
	if tipsOverflow(path, size) {
		// The alignment shift pushed the right and bottom tips past the
		// canvas; one more pixel centers the arms on an odd canvas.
		side++
	}
	canvas := image.NewRGBA(image.Rect(0, 0, side, side))
	drawShape(canvas, path, p.Color)

	logical := base
	if p.ShadowEnabled {
		pad := p.ShadowPadding()
		canvas = composeShadow(canvas, p, scale, int(math.Ceil(float64(pad)*scale)))
		logical += 2 * pad
	}

	out := canvas
	if ss != 1 {
		out = downsample(canvas, logical, p.DevicePixelRatio)
	}

	Logger().Debug("crosshair: render",
		"base", base,
		"working", canvas.Bounds().Dx(),
		"shadow", p.ShadowEnabled,
		"logical", logical,
		"physical", out.Bounds().Dx())

	return &Image{
		RGBA:             out,
		LogicalSize:      image.Pt(logical, logical),
		DevicePixelRatio: p.DevicePixelRatio,
	}
}

// workingSize returns the scaled canvas side, rounded up to an even
// number so the canvas center falls on a pixel corner.
func workingSize(base int, scale float64) int {
	size := int(math.Ceil(float64(base) * scale))
	if size%2 == 1 {
		size++
	}
	return size
}

// tipsOverflow reports whether any stroked arm reaches past a canvas of
// the given side.
func tipsOverflow(path Path, size int) bool {
	limit := float64(size)
	for _, arm := range path.Arms {
		if arm.From.X > limit || arm.From.Y > limit || arm.To.X > limit || arm.To.Y > limit {
			return true
		}
	}
	return false
}

// drawShape strokes the four arms and fills the dot into dst.
func drawShape(dst *image.RGBA, path Path, col color.NRGBA) {
	segs := make([]raster.Segment, 0, len(path.Arms))
	for _, arm := range path.Arms {
		segs = append(segs, raster.Segment{
			From: raster.Point(arm.From),
			To:   raster.Point(arm.To),
		})
	}

	c := raster.NewCanvas(dst)
	c.StrokeSegments(segs, raster.Stroke{Width: path.Width}, col)

	if path.HasDot {
		c.FillCircle(raster.Point(path.Dot.Center), path.Dot.Radius, col)
	}
}

// composeShadow copies canvas into a transparent buffer grown by pad pixels
// on every side and composites the drop shadow behind it.
func composeShadow(canvas *image.RGBA, p Params, scale float64, pad int) *image.RGBA {
	side := canvas.Bounds().Dx() + 2*pad
	out := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(out, canvas.Bounds().Add(image.Pt(pad, pad)), canvas, image.Point{}, draw.Src)

	shadow := filter.DropShadow{
		Offset: image.Pt(
			int(math.Round(float64(p.ShadowOffset.X)*scale)),
			int(math.Round(float64(p.ShadowOffset.Y)*scale)),
		),
		BlurRadius: float64(p.ShadowBlurRadius) * scale,
		Color:      p.ShadowColor,
	}
	shadow.Apply(out, out)

	Logger().Debug("crosshair: shadow",
		"pad", pad,
		"blur", shadow.BlurRadius,
		"extent", shadow.Extent())

	return out
}

// downsample reduces a supersampled canvas to the physical size of
// logical pixels at the device pixel ratio.
func downsample(src *image.RGBA, logical int, dpr float64) *image.RGBA {
	target := max(1, int(math.Round(float64(logical)*dpr)))
	if src.Bounds().Dx() == target {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
