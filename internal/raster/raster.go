package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the control-point distance for approximating a quarter circle
// with one cubic Bézier curve.
const kappa = 0.5522847498307936

// Point is a position in destination pixel coordinates.
type Point struct {
	X, Y float64
}

// Segment is a single open line.
type Segment struct {
	From, To Point
}

// Stroke describes how segments are outlined.
//
// Segments are always stroked independently with butt caps: the outline
// ends exactly at each endpoint and no line join is ever produced.
type Stroke struct {
	Width float64
}

// Canvas draws into a premultiplied RGBA destination.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas returns a Canvas drawing into dst.
func NewCanvas(dst *image.RGBA) *Canvas {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return &Canvas{dst: dst, z: z}
}

// StrokeSegments outlines every segment with the given stroke and paints
// the union in col. Zero-length segments draw nothing.
func (c *Canvas) StrokeSegments(segs []Segment, st Stroke, col color.Color) {
	if st.Width <= 0 {
		return
	}
	c.reset()
	drawn := false
	for _, s := range segs {
		if c.addSegment(s, st) {
			drawn = true
		}
	}
	if drawn {
		c.flush(col)
	}
}

// FillCircle paints a disc of radius r around center in col.
func (c *Canvas) FillCircle(center Point, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.reset()

	k := r * kappa
	x, y := center.X, center.Y
	c.moveTo(x+r, y)
	c.cubeTo(x+r, y+k, x+k, y+r, x, y+r)
	c.cubeTo(x-k, y+r, x-r, y+k, x-r, y)
	c.cubeTo(x-r, y-k, x-k, y-r, x, y-r)
	c.cubeTo(x+k, y-r, x+r, y-k, x+r, y)
	c.z.ClosePath()

	c.flush(col)
}

// addSegment appends the outline of one stroked segment.
func (c *Canvas) addSegment(s Segment, st Stroke) bool {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return false
	}

	// Normal scaled to half the stroke width.
	half := st.Width / 2
	nx, ny := -dy/length*half, dx/length*half

	c.moveTo(s.From.X+nx, s.From.Y+ny)
	c.lineTo(s.To.X+nx, s.To.Y+ny)
	c.lineTo(s.To.X-nx, s.To.Y-ny)
	c.lineTo(s.From.X-nx, s.From.Y-ny)
	c.z.ClosePath()
	return true
}

func (c *Canvas) reset() {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) flush(col color.Color) {
	c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) moveTo(x, y float64) {
	c.z.MoveTo(float32(x), float32(y))
}

func (c *Canvas) lineTo(x, y float64) {
	c.z.LineTo(float32(x), float32(y))
}

func (c *Canvas) cubeTo(bx, by, cx, cy, dx, dy float64) {
	c.z.CubeTo(float32(bx), float32(by), float32(cx), float32(cy), float32(dx), float32(dy))
}
