package crosshair

import (
	"image"
	"math"
)

// Point is a position in canvas pixel coordinates.
type Point struct {
	X, Y float64
}

// Segment is a single open line from From to To.
type Segment struct {
	From, To Point
}

// Circle is a filled disc.
type Circle struct {
	Center Point
	Radius float64
}

// Arm directions, in the order BuildPath emits them.
const (
	ArmUp = iota
	ArmDown
	ArmLeft
	ArmRight
	numArms
)

// Path is the vector description of a crosshair.
//
// The arms are four independent segments (each its own move-to/line-to),
// never one polyline, so no join is ever drawn between them and the inner
// ends keep flat caps around the gap.
type Path struct {
	Arms [numArms]Segment
	// Width is the stroke width of the arms in canvas pixels.
	Width float64

	// Dot is valid only when HasDot is set.
	Dot    Circle
	HasDot bool
}

// BuildPath converts clamped parameters into a Path for a canvas of the
// given size. Geometry is emitted in the canvas' own pixel units: scale
// multiplies length, gap, thickness and dot size.
//
// When the stroke width in canvas pixels is odd the arm center is shifted
// by half a pixel on both axes. An odd-width stroke centered on a pixel
// corner straddles a pixel boundary and anti-aliases into a soft double
// line; the shift puts its edges back on pixel boundaries. The dot is
// filled, not stroked, and stays on the unshifted center.
func BuildPath(p Params, canvas image.Point, scale float64) Path {
	cx := float64(canvas.X) / 2
	cy := float64(canvas.Y) / 2

	width := float64(p.Thickness) * scale
	ax, ay := cx, cy
	if int(math.Round(width))%2 == 1 {
		ax += 0.5
		ay += 0.5
	}

	g := float64(p.Gap) * scale
	l := float64(p.Length) * scale

	path := Path{
		Width: width,
		Arms: [numArms]Segment{
			ArmUp:    {From: Point{ax, ay - g - l}, To: Point{ax, ay - g}},
			ArmDown:  {From: Point{ax, ay + g}, To: Point{ax, ay + g + l}},
			ArmLeft:  {From: Point{ax - g - l, ay}, To: Point{ax - g, ay}},
			ArmRight: {From: Point{ax + g, ay}, To: Point{ax + g + l, ay}},
		},
	}

	if p.DotEnabled && p.DotSize > 0 {
		path.HasDot = true
		path.Dot = Circle{
			Center: Point{cx, cy},
			Radius: float64(p.DotSize) / 2 * scale,
		}
	}
	return path
}
