package filter

import (
	"image"
	"image/color"
)

// DropShadow casts a blurred, colorized copy of an image's alpha behind it.
type DropShadow struct {
	// Offset moves the shadow relative to the source, in pixels.
	Offset image.Point

	// BlurRadius is the reach of the blur in pixels.
	BlurRadius float64

	// Color is the shadow color; its alpha scales the whole shadow.
	Color color.NRGBA
}

// Extent returns how far the shadow can reach past the source's opaque
// pixels on any side.
func (f DropShadow) Extent() int {
	return KernelExtent(f.BlurRadius) + max(absInt(f.Offset.X), absInt(f.Offset.Y))
}

// Apply composites the shadow of src behind src and writes the result to
// dst. src and dst must have the same bounds; they may be the same image.
//
// The algorithm:
//  1. Extract src alpha, shifted by Offset
//  2. Blur it
//  3. Colorize with Color (premultiplied)
//  4. Composite src over the shadow
func (f DropShadow) Apply(src, dst *image.RGBA) {
	b := src.Bounds()
	if b.Empty() || dst.Bounds() != b {
		return
	}
	width, height := b.Dx(), b.Dy()

	mask := extractAlpha(src, f.Offset)
	mask = BlurAlpha(mask, width, height, f.BlurRadius)

	compositeUnder(src, dst, mask, f.Color)
}

// extractAlpha copies the alpha channel of src into a float buffer in
// [0,1], shifted by offset. Pixels shifted in from outside are zero.
func extractAlpha(src *image.RGBA, offset image.Point) []float32 {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	alpha := make([]float32, width*height)

	for y := 0; y < height; y++ {
		sy := y - offset.Y
		if sy < 0 || sy >= height {
			continue
		}
		for x := 0; x < width; x++ {
			sx := x - offset.X
			if sx < 0 || sx >= width {
				continue
			}
			a := src.Pix[src.PixOffset(b.Min.X+sx, b.Min.Y+sy)+3]
			alpha[y*width+x] = float32(a) / 255
		}
	}
	return alpha
}

// compositeUnder draws src over the colorized shadow mask into dst.
// Opaque src pixels are left unchanged: the shadow never covers the source.
func compositeUnder(src, dst *image.RGBA, mask []float32, c color.NRGBA) {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()

	base := float32(c.A) / 255
	cr, cg, cb := float32(c.R), float32(c.G), float32(c.B)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			j := dst.PixOffset(b.Min.X+x, b.Min.Y+y)

			sa := mask[y*width+x] * base
			inv := 1 - float32(src.Pix[i+3])/255

			dst.Pix[j+0] = clampUint8(float32(src.Pix[i+0]) + cr*sa*inv)
			dst.Pix[j+1] = clampUint8(float32(src.Pix[i+1]) + cg*sa*inv)
			dst.Pix[j+2] = clampUint8(float32(src.Pix[i+2]) + cb*sa*inv)
			dst.Pix[j+3] = clampUint8(float32(src.Pix[i+3]) + 255*sa*inv)
		}
	}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
