package main

import (
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "github.com/marben/mandeltiles"
	"github.com/marben/mandeltiles/export"
)

// iterStep is how much +/- change the escape bound.
const iterStep = 100

// game is the platform layer: it turns input into viewport mutations and
// uploads the engine's framebuffer once per dirty frame.
type game struct {
	cfg      config
	viewport mandel.Viewport
	engine   *mandel.Engine
	fb       *mandel.Framebuffer
	rgba     []byte
	img      *ebiten.Image

	dirty   bool
	hud     bool
	drag    *image.Point
	stats   mandel.Stats
	message string
}

func newGame(cfg config, v mandel.Viewport) *game {
	return &game{
		cfg:      cfg,
		viewport: v,
		engine: mandel.NewEngine(
			mandel.WithTileSize(cfg.tileSize),
			mandel.WithWorkers(cfg.workers),
		),
		fb:    mandel.NewFramebuffer(v.Width, v.Height),
		dirty: true,
		hud:   true,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	x, y := ebiten.CursorPosition()
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.viewport.ZoomAt(wheelNotches(wy), x, y)
		g.dirty = true
		g.drag = nil
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.drag != nil && (g.drag.X != x || g.drag.Y != y) {
			g.viewport.Pan(int64(g.drag.X-x), int64(g.drag.Y-y))
			g.dirty = true
		}
		g.drag = &image.Point{X: x, Y: y}
	} else {
		g.drag = nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.viewport.AdjustMaxIter(iterStep)
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.viewport.AdjustMaxIter(-iterStep)
		g.dirty = true
	}

	for i, r := range mandel.Regions {
		if i < 9 && inpututil.IsKeyJustPressed(ebiten.KeyDigit1+ebiten.Key(i)) {
			g.viewport = r.Viewport(g.viewport.Width, g.viewport.Height, g.viewport.MaxIter)
			g.dirty = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.exportPNG()
	}
	return nil
}

// exportPNG writes the current view at export resolution. It blocks the
// window until the file is written.
func (g *game) exportPNG() {
	path := fmt.Sprintf("mandel-%s.png", time.Now().Format("20060102-150405"))
	err := export.File(path, g.viewport, g.cfg.exportWidth, g.cfg.exportHeight, g.cfg.supersample,
		mandel.WithTileSize(g.cfg.tileSize), mandel.WithWorkers(g.cfg.workers))
	if err != nil {
		log.Printf("export: %v", err)
		g.message = "export failed: " + err.Error()
		return
	}
	log.Printf("exported %q", path)
	g.message = "saved " + path
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.stats = g.engine.RenderInto(g.fb, g.viewport)
		g.rgba = g.fb.AppendRGBA(g.rgba[:0])
		if g.img == nil || g.img.Bounds().Dx() != g.fb.Width || g.img.Bounds().Dy() != g.fb.Height {
			if g.img != nil {
				g.img.Deallocate()
			}
			g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
		}
		g.img.WritePixels(g.rgba)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)

	if g.hud {
		ebitenutil.DebugPrint(screen, g.overlay())
	}
}

func (g *game) overlay() string {
	v := g.viewport
	center := v.PixelToPlane(v.Width/2, v.Height/2)
	s := fmt.Sprintf("center %.12g %+.12gi\nzoom %d  iter %d\ntiles %d  cached %d  evals %d  %s\nFPS %.0f",
		center.Real, center.Imag, v.Zoom, v.MaxIter,
		g.stats.Tiles, g.stats.Hits, g.stats.Evaluations, g.stats.Elapsed.Round(time.Millisecond),
		ebiten.ActualFPS())
	if g.message != "" {
		s += "\n" + g.message
	}
	return s
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.viewport.Width, g.viewport.Height
	}
	if outsideWidth != g.viewport.Width || outsideHeight != g.viewport.Height {
		g.viewport.Resize(outsideWidth, outsideHeight)
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

// wheelNotches rounds a wheel offset away from zero so that small trackpad
// deltas still zoom by one step.
func wheelNotches(wy float64) int {
	if wy > 0 {
		return int(math.Ceil(wy))
	}
	return int(math.Floor(wy))
}
