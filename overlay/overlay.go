// Package overlay places the crosshair surface on one of several screens.
//
// It does no windowing itself: screens are passed in as rectangles in
// virtual-desktop coordinates and the result is the top-left corner at
// which the host should move its transparent, click-through surface.
package overlay

import (
	"image"

	"github.com/gogpu/crosshair"
)

// SurfaceSize is the fixed logical size of the overlay surface. The
// rendered crosshair is centered inside it.
var SurfaceSize = image.Pt(200, 200)

// Placement is where the surface goes.
type Placement struct {
	// Screen is the index actually used, after clamping.
	Screen int
	// Origin is the top-left corner of the surface.
	Origin image.Point
}

// ClampScreen forces idx into [0, count-1]. It returns 0 when there are
// no screens.
func ClampScreen(idx, count int) int {
	if count <= 0 {
		return 0
	}
	return crosshair.ClampInt(idx, 0, count-1)
}

// Cycle returns the screen after idx, wrapping around to the first.
func Cycle(idx, count int) int {
	if count <= 0 {
		return 0
	}
	return (ClampScreen(idx, count) + 1) % count
}

// Center returns the top-left corner that centers a surface of the given
// size on screen.
func Center(screen image.Rectangle, size image.Point) image.Point {
	return image.Pt(
		screen.Min.X+(screen.Dx()-size.X)/2,
		screen.Min.Y+(screen.Dy()-size.Y)/2,
	)
}

// Place centers a surface of the given size on screens[idx]. An
// out-of-range idx is clamped. ok is false when screens is empty.
func Place(screens []image.Rectangle, idx int, size image.Point) (p Placement, ok bool) {
	if len(screens) == 0 {
		return Placement{}, false
	}
	idx = ClampScreen(idx, len(screens))
	return Placement{Screen: idx, Origin: Center(screens[idx], size)}, true
}
