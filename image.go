package crosshair

import "image"

// Image is a rendered crosshair.
//
// Pixels are premultiplied RGBA at physical resolution. LogicalSize is the
// size the image should occupy on a display surface and does not depend on
// the supersample factor used to render it; DevicePixelRatio is the
// physical-to-logical ratio the pixels were produced for.
type Image struct {
	*image.RGBA

	LogicalSize      image.Point
	DevicePixelRatio float64
}

// Scale returns the physical pixels per logical pixel actually stored.
func (m *Image) Scale() float64 {
	if m.LogicalSize.X == 0 {
		return 0
	}
	return float64(m.Bounds().Dx()) / float64(m.LogicalSize.X)
}
