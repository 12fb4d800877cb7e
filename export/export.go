// Package export renders a viewport at an arbitrary resolution and encodes it
// as PNG. Every export uses its own engine, so the tile cache of an
// interactive view is never touched.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	mandel "github.com/marben/mandeltiles"
)

// MaxSupersample bounds the supersampling factor.
const MaxSupersample = 4

// Render renders the plane region shown by v at width×height, framed by
// Viewport.Scaled: the whole region fits, with extra margin along one axis
// when the aspect ratio differs. With supersample > 1 the frame is rendered
// that many times larger and scaled down with a Catmull-Rom filter.
func Render(v mandel.Viewport, width, height, supersample int, opts ...mandel.Option) (image.Image, mandel.Stats, error) {
	if width <= 0 || height <= 0 {
		return nil, mandel.Stats{}, fmt.Errorf("export size %dx%d: %w", width, height, mandel.ErrInvalidArgument)
	}
	if supersample < 1 || supersample > MaxSupersample {
		return nil, mandel.Stats{}, fmt.Errorf("supersample %d: %w", supersample, mandel.ErrInvalidArgument)
	}

	engine := mandel.NewEngine(opts...)
	fb, stats := engine.Render(v.Scaled(width*supersample, height*supersample))
	if supersample == 1 {
		return fb, stats, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), fb.RGBA(), fb.Bounds(), draw.Src, nil)
	return dst, stats, nil
}

// PNG renders v (see Render) and writes it to w.
func PNG(w io.Writer, v mandel.Viewport, width, height, supersample int, opts ...mandel.Option) error {
	img, stats, err := Render(v, width, height, supersample, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	mandel.Logger().Info("export: frame encoded",
		"width", width, "height", height, "supersample", supersample,
		"tiles", stats.Tiles, "evaluations", stats.Evaluations, "elapsed", stats.Elapsed)
	return nil
}

// File renders v into a PNG file at path.
func File(path string, v mandel.Viewport, width, height, supersample int, opts ...mandel.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	if err := PNG(f, v, width, height, supersample, opts...); err != nil {
		return err
	}
	mandel.Logger().Info("export: file written", "path", path)
	return nil
}
