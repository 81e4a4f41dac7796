package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/gogpu/crosshair"
	"github.com/gogpu/crosshair/code"
	"github.com/gogpu/crosshair/overlay"
	"github.com/gogpu/crosshair/preview"
	"github.com/gogpu/crosshair/settings"
)

const welcomeText = `Welcome to crosshair.

  - draw a crosshair with your own color, length, thickness and gap
  - add a center dot or a soft drop shadow
  - share your settings with "crosshair code export"
  - apply a friend's settings with "crosshair code import CODE"

Run "crosshair config show" to see the current settings.`

// session holds the configuration loaded for a single command.
type session struct {
	store *settings.FileStore
	cfg   settings.Config
}

// openSession loads the configuration named by the global --config flag.
// A corrupt file is reported and replaced by defaults on the next save.
// On the very first run the welcome text is printed to the error stream
// and FirstTime is cleared.
func openSession(ctx *cli.Context) (*session, error) {
	path := ctx.GlobalString("config")
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	store, err := settings.OpenFile(path)
	switch {
	case errors.Is(err, settings.ErrCorrupt):
		logger.Warn("ignoring unreadable configuration", "path", path, "err", err)
		store = settings.NewFileStore(path)
	case err != nil:
		return nil, err
	}

	s := &session{store: store, cfg: settings.Default()}
	settings.Load(store, &s.cfg)
	s.cfg.Clamp()

	if s.cfg.FirstTime {
		fmt.Fprintln(ctx.App.ErrWriter, welcomeText)
		s.cfg.FirstTime = false
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *session) save() error {
	return settings.Save(s.store, &s.cfg)
}

func renderCrosshair(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}

	s.cfg.DevicePixelRatio = ctx.Float64("dpr")
	if ctx.IsSet("supersample") {
		s.cfg.Supersample = ctx.Float64("supersample")
	}

	out := ctx.String("out")
	img := crosshair.Render(s.cfg.Params())
	if err := writePNG(out, img.RGBA); err != nil {
		return err
	}
	logger.Info("rendered crosshair", "out", out, "size", img.Bounds().Size(), "dpr", img.DevicePixelRatio)
	return nil
}

func renderPreview(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}

	img, err := preview.Render(s.cfg,
		preview.WithScale(ctx.Float64("scale")),
		preview.WithCaption(!ctx.Bool("no-caption")),
	)
	if err != nil {
		return err
	}
	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Info("rendered preview", "out", out, "size", img.Bounds().Size())
	return nil
}

func exportCode(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, code.Generate(s.cfg))
	return nil
}

func importCode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("code import: expected exactly one CODE argument", 2)
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	if err := code.Apply(ctx.Args().First(), &s.cfg); err != nil {
		return fmt.Errorf("code import: %w", err)
	}
	if err := s.save(); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, code.Generate(s.cfg))
	return nil
}

func showConfig(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}

	snapshot := settings.NewMemoryStore()
	cfg := s.cfg
	if err := settings.Save(snapshot, &cfg); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Key", "Value"})
	for _, key := range settings.AllKeys {
		v, _ := snapshot.Value(key)
		table.Append([]string{strings.TrimPrefix(key, settings.Namespace), fmt.Sprint(v)})
	}
	table.SetFooter([]string{"file", s.store.Path()})
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func resetConfig(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	s.cfg.Reset()
	if err := s.save(); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, code.Generate(s.cfg))
	return nil
}

func nextScreen(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	n := ctx.Int("screens")
	if n < 1 {
		return cli.NewExitError("screen next: --screens must be at least 1", 2)
	}
	s.cfg.CurrentScreenIndex = overlay.Cycle(s.cfg.CurrentScreenIndex, n)
	if err := s.save(); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, s.cfg.CurrentScreenIndex)
	return nil
}

func placeOverlay(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	screens, err := parseLayout(ctx.String("layout"))
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	p, ok := overlay.Place(screens, s.cfg.CurrentScreenIndex, overlay.SurfaceSize)
	if !ok {
		return cli.NewExitError("screen place: no screens in --layout", 2)
	}
	fmt.Fprintf(ctx.App.Writer, "screen %d origin %d,%d size %dx%d\n",
		p.Screen, p.Origin.X, p.Origin.Y, overlay.SurfaceSize.X, overlay.SurfaceSize.Y)
	return nil
}

// parseLayout parses "WxH+X+Y,WxH+X+Y,..." into screen rectangles.
func parseLayout(layout string) ([]image.Rectangle, error) {
	var screens []image.Rectangle
	for _, field := range strings.Split(layout, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var w, h, x, y int
		if _, err := fmt.Sscanf(field, "%dx%d%d%d", &w, &h, &x, &y); err != nil {
			return nil, fmt.Errorf("screen geometry %q: %w", field, err)
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("screen geometry %q: empty size", field)
		}
		screens = append(screens, image.Rect(x, y, x+w, y+h))
	}
	return screens, nil
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
