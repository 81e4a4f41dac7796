// Package preview renders the settings-preview sheet: the crosshair at
// preview scale on a checkerboard, with its share code underneath.
//
// The sheet is composed with gg; the crosshair itself always comes from
// crosshair.Render so the preview shows exactly the overlay pixels.
package preview

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/crosshair"
	"github.com/gogpu/crosshair/code"
	"github.com/gogpu/crosshair/settings"
)

const (
	margin        = 16
	captionHeight = 32
	fontSize      = 14
	cellSize      = 8
)

// Option configures Render.
type Option func(*options)

type options struct {
	scale     float64
	caption   bool
	light     gg.RGBA
	dark      gg.RGBA
	textColor gg.RGBA
}

func defaultOptions() options {
	return options{
		scale:     2,
		caption:   true,
		light:     gg.RGB(0.42, 0.42, 0.45),
		dark:      gg.RGB(0.30, 0.30, 0.33),
		textColor: gg.RGB(0.95, 0.95, 0.95),
	}
}

// WithScale sets the preview scale. It is passed to the renderer as the
// device pixel ratio, so the crosshair is rendered at that resolution
// rather than upscaled. Values are clamped like any pixel ratio.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithCaption enables or disables the share-code caption.
func WithCaption(on bool) Option {
	return func(o *options) {
		o.caption = on
	}
}

// WithBackground sets the two checkerboard colors.
func WithBackground(light, dark gg.RGBA) Option {
	return func(o *options) {
		o.light = light
		o.dark = dark
	}
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// captionFont returns the shared caption font source, parsed once.
func captionFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("preview: load caption font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

// Render returns the preview sheet for cfg.
func Render(cfg settings.Config, opts ...Option) (image.Image, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := cfg.Params()
	p.DevicePixelRatio = o.scale
	img := crosshair.Render(p)

	w := img.Bounds().Dx() + 2*margin
	h := img.Bounds().Dy() + 2*margin
	if o.caption {
		h += captionHeight
	}

	dc := gg.NewContext(w, h)
	defer func() {
		_ = dc.Close()
	}()

	if err := drawChecker(dc, w, h, o.light, o.dark); err != nil {
		return nil, fmt.Errorf("preview: background: %w", err)
	}

	dc.DrawImage(gg.ImageBufFromImage(img), margin, margin)

	if o.caption {
		src, err := captionFont()
		if err != nil {
			return nil, err
		}
		dc.SetFont(src.Face(fontSize))
		dc.SetRGBA(o.textColor.R, o.textColor.G, o.textColor.B, o.textColor.A)
		y := float64(img.Bounds().Dy()+2*margin) + captionHeight/2
		dc.DrawStringAnchored(code.Generate(cfg), float64(w)/2, y, 0.5, 0.5)
	}

	crosshair.Logger().Debug("preview: rendered", "width", w, "height", h, "scale", img.DevicePixelRatio)
	return dc.Image(), nil
}

// drawChecker fills the sheet with a two-color checkerboard so that both
// the crosshair and its shadow stay visible.
func drawChecker(dc *gg.Context, w, h int, light, dark gg.RGBA) error {
	dc.ClearWithColor(light)
	dc.SetRGBA(dark.R, dark.G, dark.B, dark.A)
	for y := 0; y < h; y += cellSize {
		for x := (y / cellSize % 2) * cellSize; x < w; x += 2 * cellSize {
			dc.DrawRectangle(float64(x), float64(y), cellSize, cellSize)
		}
	}
	return dc.Fill()
}
