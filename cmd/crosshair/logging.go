package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/urfave/cli"

	"github.com/gogpu/crosshair"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func setupLogging(ctx *cli.Context) {
	level := slog.LevelWarn
	if ctx.GlobalBool("v") {
		level = slog.LevelInfo
	}
	if ctx.GlobalBool("vv") {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	crosshair.SetLogger(logger)
	gg.SetLogger(logger)
}
