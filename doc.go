// Package crosshair renders a configurable aiming reticle into a pixel
// image for a transparent always-on-top overlay.
//
// # Overview
//
// A crosshair is four arms around an empty square gap, an optional center
// dot and an optional blurred drop shadow. Render turns a Params value into
// an Image:
//
//	p := crosshair.DefaultParams()
//	p.Color = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
//	p.DevicePixelRatio = 2
//	img := crosshair.Render(p)
//
// Render is a pure function of its input: it clamps the parameters, builds
// the vector geometry (BuildPath), rasterizes it with anti-aliasing at the
// supersample factor, composites the shadow behind the shape when enabled,
// and returns premultiplied pixels tagged with their logical size and
// device pixel ratio. There is no shared state; concurrent calls are safe.
//
// # Sub-packages
//
//   - settings: persisted application configuration and its key/value store
//   - code: compact share code for the user-tunable settings
//   - overlay: placement of the overlay surface across screens
//   - preview: settings-preview sheet rendered with gg
//
// # Logging
//
// crosshair produces no log output by default. Call SetLogger to enable it.
package crosshair
