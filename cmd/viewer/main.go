// viewer is an interactive desktop window onto the Mandelbrot set.
//
// Drag with the left mouse button to pan, use the wheel to zoom at the
// cursor, +/- to change the escape bound, 1-7 to jump to a landmark,
// P to export a PNG, H to toggle the overlay, F11 for fullscreen and Esc
// to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	mandel "github.com/marben/mandeltiles"
)

type config struct {
	width, height int
	maxIter       uint
	region        string
	tileSize      int
	workers       int
	exportWidth   int
	exportHeight  int
	supersample   int
	verbose       bool
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "window width")
	flag.IntVar(&cfg.height, "height", 600, "window height")
	flag.UintVar(&cfg.maxIter, "iter", 5000, "escape bound")
	flag.StringVar(&cfg.region, "region", mandel.FullSet.Name, "initial region: "+strings.Join(mandel.RegionNames(), ", "))
	flag.IntVar(&cfg.tileSize, "tile", mandel.DefaultTileSize, "tile edge length in pixels")
	flag.IntVar(&cfg.workers, "workers", 0, "tiles resolved in parallel (0 = GOMAXPROCS)")
	flag.IntVar(&cfg.exportWidth, "export-width", 3840, "PNG export width")
	flag.IntVar(&cfg.exportHeight, "export-height", 2160, "PNG export height")
	flag.IntVar(&cfg.supersample, "ss", 2, "PNG export supersampling factor")
	flag.BoolVar(&cfg.verbose, "v", false, "log per-render statistics")
	flag.Parse()

	if cfg.verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r, ok := mandel.RegionByName(cfg.region)
	if !ok {
		return fmt.Errorf("region %q: %w", cfg.region, mandel.ErrInvalidArgument)
	}

	g := newGame(cfg, r.Viewport(cfg.width, cfg.height, uint32(cfg.maxIter)))
	ebiten.SetWindowTitle("Mandelbrot")
	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
