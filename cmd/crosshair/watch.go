package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli"

	"github.com/gogpu/crosshair"
	"github.com/gogpu/crosshair/settings"
)

func watchConfig(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	dpr := ctx.Float64("dpr")
	render := func() error {
		cfg := s.cfg
		cfg.DevicePixelRatio = dpr
		img := crosshair.Render(cfg.Params())
		if err := writePNG(out, img.RGBA); err != nil {
			return err
		}
		logger.Info("rendered crosshair", "out", out, "size", img.Bounds().Size())
		return nil
	}
	if err := render(); err != nil {
		return err
	}

	path := s.store.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	// Watch the directory: saves replace the file by rename.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(ctx.App.Writer, "watching %s, press Ctrl+C to stop\n", path)
	return watchLoop(sigCtx, w, path, func() error {
		if err := s.store.Reload(); err != nil {
			return err
		}
		settings.Load(s.store, &s.cfg)
		s.cfg.Clamp()
		return render()
	})
}

// watchLoop calls onChange every time path is written or replaced, until
// ctx is done or the watcher is closed. Errors from onChange are logged
// and do not stop the loop.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, onChange func() error) error {
	path = filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("configuration changed", "op", ev.Op.String())
			if err := onChange(); err != nil {
				logger.Warn("reload failed", "path", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
