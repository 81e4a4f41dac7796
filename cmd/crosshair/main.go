// Command crosshair renders, previews, and manages the crosshair overlay
// configuration.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "crosshair:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "crosshair"
	app.Usage = "render and configure a screen crosshair overlay"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "configuration file (default: user config dir)",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		setupLogging(ctx)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the configured crosshair to a PNG file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "crosshair.png",
					Usage: "output image",
				},
				cli.Float64Flag{
					Name:  "dpr",
					Value: 1,
					Usage: "device pixel ratio of the target display",
				},
				cli.Float64Flag{
					Name:  "supersample",
					Usage: "override the configured supersample factor",
				},
			},
			Action: renderCrosshair,
		},
		{
			Name:  "preview",
			Usage: "render the settings preview sheet",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "preview.png",
					Usage: "output image",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 2,
					Usage: "preview scale",
				},
				cli.BoolFlag{
					Name:  "no-caption",
					Usage: "omit the settings code caption",
				},
			},
			Action: renderPreview,
		},
		{
			Name:  "code",
			Usage: "share settings as a code",
			Subcommands: []cli.Command{
				{
					Name:   "export",
					Usage:  "print the settings code",
					Action: exportCode,
				},
				{
					Name:      "import",
					Usage:     "apply a settings code and save it",
					ArgsUsage: "CODE",
					Action:    importCode,
				},
			},
		},
		{
			Name:  "config",
			Usage: "inspect or reset the stored configuration",
			Subcommands: []cli.Command{
				{
					Name:   "show",
					Usage:  "print every stored setting",
					Action: showConfig,
				},
				{
					Name:   "reset",
					Usage:  "restore and save the defaults",
					Action: resetConfig,
				},
			},
		},
		{
			Name:  "screen",
			Usage: "select the screen the overlay is centered on",
			Subcommands: []cli.Command{
				{
					Name:  "next",
					Usage: "move the overlay to the next screen",
					Flags: []cli.Flag{
						cli.IntFlag{
							Name:  "screens",
							Value: 1,
							Usage: "number of connected screens",
						},
					},
					Action: nextScreen,
				},
				{
					Name:  "place",
					Usage: "print where the overlay window goes",
					Description: `
Screens are given as a comma separated list of WxH+X+Y geometries in
virtual desktop coordinates, e.g. 1920x1080+0+0,2560x1440+1920+0.`,
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "layout",
							Usage: "screen geometries",
						},
					},
					Action: placeOverlay,
				},
			},
		},
		{
			Name:  "watch",
			Usage: "re-render whenever the configuration file changes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "crosshair.png",
					Usage: "output image",
				},
				cli.Float64Flag{
					Name:  "dpr",
					Value: 1,
					Usage: "device pixel ratio of the target display",
				},
			},
			Action: watchConfig,
		},
	}
	return app
}
