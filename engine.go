package mandel

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTileSize is the edge length of a tile in pixels.
const DefaultTileSize = 32

// Stats describes one render.
type Stats struct {
	Tiles       int
	Hits        int
	Misses      int
	Uniform     int
	Evaluations int
	Elapsed     time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTileSize sets the tile edge length. Non-positive values are ignored.
func WithTileSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.tileSize = size
		}
	}
}

// WithWorkers limits the number of tiles resolved concurrently.
// Non-positive values mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithOnTile registers a hook called for every resolved tile, after the
// parallel phase, in tile order.
func WithOnTile(fn func(t Tile, cached bool)) Option {
	return func(e *Engine) { e.onTile = fn }
}

// Engine renders viewports tile by tile, reusing tiles from previous frames.
//
// An Engine owns its cache and is not safe for concurrent Render calls.
type Engine struct {
	tileSize int
	workers  int
	onTile   func(Tile, bool)

	cache   *TileCache
	zoom    uint64
	maxIter uint32
}

// NewEngine returns an engine with an empty cache.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tileSize: DefaultTileSize,
		workers:  runtime.GOMAXPROCS(0),
		cache:    NewTileCache(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TileSize returns the tile edge length.
func (e *Engine) TileSize() int { return e.tileSize }

// CachedTiles returns the number of tiles currently memoized.
func (e *Engine) CachedTiles() int { return e.cache.Len() }

// Render renders v into a new framebuffer.
func (e *Engine) Render(v Viewport) (*Framebuffer, Stats) {
	fb := NewFramebuffer(v.Width, v.Height)
	return fb, e.RenderInto(fb, v)
}

// RenderInto renders v into fb, resizing fb to the viewport if needed.
// Every pixel of fb is overwritten.
func (e *Engine) RenderInto(fb *Framebuffer, v Viewport) Stats {
	start := time.Now()
	fb.Resize(v.Width, v.Height)
	e.invalidate(v)

	tiles := e.coverage(v)
	results := make([]TileResult, len(tiles))
	cached := make([]bool, len(tiles))

	// Only cache reads happen here; writes wait for the join below.
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, t := range tiles {
		g.Go(func() error {
			if r, ok := e.cache.Get(t); ok {
				results[i], cached[i] = r, true
				return nil
			}
			results[i] = t.Resolve()
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	stats := Stats{Tiles: len(tiles)}
	for i, t := range tiles {
		r := results[i]
		if cached[i] {
			stats.Hits++
		} else {
			stats.Misses++
			stats.Evaluations += r.Evaluations
		}
		if r.Uniform() {
			stats.Uniform++
		}
		e.cache.Put(t, r)
		if e.onTile != nil {
			e.onTile(t, cached[i])
		}
	}

	topX, topY := v.TopLeft()
	for _, r := range results {
		scatter(fb, r, topX, topY)
	}

	stats.Elapsed = time.Since(start)
	Logger().Debug("mandel: render",
		"width", v.Width, "height", v.Height,
		"zoom", v.Zoom, "maxIter", v.MaxIter,
		"tiles", stats.Tiles, "hits", stats.Hits, "misses", stats.Misses,
		"uniform", stats.Uniform, "evaluations", stats.Evaluations,
		"cached", e.cache.Len(), "elapsed", stats.Elapsed)
	return stats
}

// invalidate drops the cache when zoom or the iteration bound moved since the
// previous render.
func (e *Engine) invalidate(v Viewport) {
	if v.Zoom == e.zoom && v.MaxIter == e.maxIter {
		return
	}
	if e.cache.Len() > 0 {
		Logger().Debug("mandel: tile cache invalidated",
			"dropped", e.cache.Len(),
			"oldZoom", e.zoom, "zoom", v.Zoom,
			"oldMaxIter", e.maxIter, "maxIter", v.MaxIter)
	}
	e.cache.Clear()
	e.zoom, e.maxIter = v.Zoom, v.MaxIter
}

// coverage lists the tiles covering the visible rectangle. The start is
// aligned toward zero and then moved back one tile, so the list always
// reaches past the leading edge for negative coordinates too.
func (e *Engine) coverage(v Viewport) []Tile {
	size := int64(e.tileSize)
	topX, topY := v.TopLeft()
	startX := topX - topX%size - size
	startY := topY - topY%size - size
	endX := topX + int64(v.Width)
	endY := topY + int64(v.Height)

	var tiles []Tile
	for x := startX; x < endX; x += size {
		for y := startY; y < endY; y += size {
			tiles = append(tiles, Tile{X: x, Y: y, Zoom: v.Zoom, Size: e.tileSize, MaxIter: v.MaxIter})
		}
	}
	return tiles
}

// scatter copies the part of r that falls inside the framebuffer.
func scatter(fb *Framebuffer, r TileResult, topX, topY int64) {
	w, h := int64(fb.Width), int64(fb.Height)
	for p := range r.Pixels() {
		x, y := p.X-topX, p.Y-topY
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		fb.Set(int(x), int(y), p.Color)
	}
}
