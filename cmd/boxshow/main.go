package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/smasonuk/gosiebox/box"
	"github.com/smasonuk/gosiebox/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "boxshow",
		Usage:   "Interactive packaging box showcase",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "JSON config file"},
			&cli.StringFlag{Name: "variant", Usage: "Show a single box variant"},
			&cli.Float64Flag{Name: "sensitivity", Usage: "Open amount per unit of wheel deltaY (negative opens on scroll up)"},
			&cli.StringFlag{Name: "integrator", Usage: "Spring integrator: euler|analytic"},
			&cli.IntFlag{Name: "width", Usage: "Window width"},
			&cli.IntFlag{Name: "height", Usage: "Window height"},
		},
		Action: runShow,
		Commands: []*cli.Command{
			variantsCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	cfg.Resolve(config.Flags{
		Variant:     c.String("variant"),
		Sensitivity: c.Float64("sensitivity"),
		Integrator:  c.String("integrator"),
		Width:       c.Int("width"),
		Height:      c.Int("height"),
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("boxshow: config %q, variants %v, sensitivity %v", c.String("config"), cfg.Variants, cfg.Sensitivity)
	return cfg, nil
}

func runShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	game, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	log.Println("Starting game loop...")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("boxshow: %w", err)
	}
	log.Println("Game loop finished.")
	return nil
}

// variantsCmd lists the boxes that can be put on the shelf.
func variantsCmd() *cli.Command {
	return &cli.Command{
		Name:  "variants",
		Usage: "List box variants",
		Action: func(c *cli.Context) error {
			for _, v := range box.Variants() {
				fmt.Fprintln(c.App.Writer, v)
			}
			return nil
		},
	}
}

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
